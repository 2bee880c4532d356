package main

import "testing"

func TestValidateAcceptsGeneratedMoves(t *testing.T) {
	for _, variant := range []string{"american", "brazilian", "international", "canadian"} {
		rules := mustRules(t, variant)
		board := rules.CreateInitialBoard()
		for _, color := range []PieceColor{ColorRed, ColorBlack} {
			for _, move := range rules.FindValidMoves(board, color) {
				if !rules.ValidateMove(board, move, color) {
					t.Fatalf("%s: generated move rejected: %v", variant, move)
				}
			}
		}
	}
}

func TestValidateRejectsQuietWhenCaptureExists(t *testing.T) {
	rules := mustRules(t, "american")
	board := NewBoard(8)
	board.Set(4, 3, RedMan)
	board.Set(3, 4, BlackMan)

	quiet := Move{From: Position{Row: 4, Col: 3}, To: Position{Row: 3, Col: 2}}
	if rules.ValidateMove(board, quiet, ColorRed) {
		t.Fatalf("quiet move accepted while a mandatory capture exists")
	}
	capture := Move{
		From:     Position{Row: 4, Col: 3},
		To:       Position{Row: 2, Col: 5},
		Captures: []Position{{Row: 3, Col: 4}},
	}
	if !rules.ValidateMove(board, capture, ColorRed) {
		t.Fatalf("legal capture rejected")
	}
}

func TestValidateRejectsWrongPiece(t *testing.T) {
	rules := mustRules(t, "american")
	board := NewBoard(8)
	board.Set(4, 3, RedMan)

	move := Move{From: Position{Row: 4, Col: 3}, To: Position{Row: 3, Col: 4}}
	if rules.ValidateMove(board, move, ColorBlack) {
		t.Fatalf("move of an opposing piece accepted")
	}
	empty := Move{From: Position{Row: 5, Col: 2}, To: Position{Row: 4, Col: 1}}
	if rules.ValidateMove(board, empty, ColorRed) {
		t.Fatalf("move from empty square accepted")
	}
}

func TestValidateRejectsLightSquareAndOccupied(t *testing.T) {
	rules := mustRules(t, "american")
	board := NewBoard(8)
	board.Set(4, 3, RedMan)
	board.Set(3, 2, RedMan)

	light := Move{From: Position{Row: 4, Col: 3}, To: Position{Row: 3, Col: 3}}
	if rules.ValidateMove(board, light, ColorRed) {
		t.Fatalf("destination on light square accepted")
	}
	occupied := Move{From: Position{Row: 4, Col: 3}, To: Position{Row: 3, Col: 2}}
	if rules.ValidateMove(board, occupied, ColorRed) {
		t.Fatalf("occupied destination accepted")
	}
}

func TestValidateRejectsBackwardManMove(t *testing.T) {
	rules := mustRules(t, "american")
	board := NewBoard(8)
	board.Set(4, 3, RedMan)

	backward := Move{From: Position{Row: 4, Col: 3}, To: Position{Row: 5, Col: 4}}
	if rules.ValidateMove(board, backward, ColorRed) {
		t.Fatalf("backward man move accepted under forward-only rules")
	}
}

func TestValidateFlyingKingPath(t *testing.T) {
	rules := mustRules(t, "brazilian")
	board := NewBoard(8)
	board.Set(7, 0, RedKing)
	board.Set(5, 2, RedMan)

	blocked := Move{From: Position{Row: 7, Col: 0}, To: Position{Row: 3, Col: 4}}
	if rules.ValidateMove(board, blocked, ColorRed) {
		t.Fatalf("flying king move through an occupied square accepted")
	}
	open := Move{From: Position{Row: 7, Col: 0}, To: Position{Row: 6, Col: 1}}
	if !rules.ValidateMove(board, open, ColorRed) {
		t.Fatalf("one-step king move rejected")
	}
}

func TestValidateRejectsUndersizedCapture(t *testing.T) {
	rules := mustRules(t, "brazilian")
	board := NewBoard(8)
	board.Set(5, 2, RedMan)
	board.Set(4, 3, BlackMan)
	board.Set(2, 3, BlackMan)

	short := Move{
		From:     Position{Row: 5, Col: 2},
		To:       Position{Row: 3, Col: 4},
		Captures: []Position{{Row: 4, Col: 3}},
	}
	if rules.ValidateMove(board, short, ColorRed) {
		t.Fatalf("partial chain accepted while a longer chain exists under maximum capture")
	}
}
