package main

import "testing"

func TestMakeMoveAppliesCapture(t *testing.T) {
	rules := mustRules(t, "american")
	board := NewBoard(8)
	board.Set(5, 2, RedMan)
	board.Set(4, 3, BlackMan)

	move := Move{
		From:     Position{Row: 5, Col: 2},
		To:       Position{Row: 3, Col: 4},
		Captures: []Position{{Row: 4, Col: 3}},
	}
	next := rules.MakeMove(board, move)

	if next.At(5, 2) != PieceNone || next.At(4, 3) != PieceNone {
		t.Fatalf("source or captured square not cleared:\n%s", next)
	}
	if next.At(3, 4) != RedMan {
		t.Fatalf("destination holds %v, want red man", next.At(3, 4))
	}
	if next.CountPieces(ColorBlack) != 0 {
		t.Fatalf("captured piece still counted")
	}
	// The input board must be untouched.
	if board.At(5, 2) != RedMan || board.At(4, 3) != BlackMan {
		t.Fatalf("MakeMove mutated its input:\n%s", board)
	}
}

func TestMakeMovePromotesOnFinalRow(t *testing.T) {
	rules := mustRules(t, "american")
	board := NewBoard(8)
	board.Set(1, 2, RedMan)

	next := rules.MakeMove(board, Move{From: Position{Row: 1, Col: 2}, To: Position{Row: 0, Col: 3}})
	if next.At(0, 3) != RedKing {
		t.Fatalf("expected promotion to king, got %v", next.At(0, 3))
	}

	board = NewBoard(8)
	board.Set(6, 1, BlackMan)
	next = rules.MakeMove(board, Move{From: Position{Row: 6, Col: 1}, To: Position{Row: 7, Col: 2}})
	if next.At(7, 2) != BlackKing {
		t.Fatalf("expected black promotion, got %v", next.At(7, 2))
	}
}

func TestMakeMoveDoesNotPromoteMidBoard(t *testing.T) {
	rules := mustRules(t, "american")
	board := NewBoard(8)
	board.Set(4, 3, RedMan)

	next := rules.MakeMove(board, Move{From: Position{Row: 4, Col: 3}, To: Position{Row: 3, Col: 4}})
	if next.At(3, 4) != RedMan {
		t.Fatalf("man promoted away from the promotion row: %v", next.At(3, 4))
	}
}

func TestMakeMoveEmptySourceIsNoOp(t *testing.T) {
	rules := mustRules(t, "american")
	board := NewBoard(8)
	board.Set(5, 2, RedMan)

	next := rules.MakeMove(board, Move{From: Position{Row: 3, Col: 4}, To: Position{Row: 2, Col: 5}})
	if next.String() != board.String() {
		t.Fatalf("empty-source move changed the board:\n%s", next)
	}
}

func TestShouldPromote(t *testing.T) {
	rules := mustRules(t, "american")
	if !rules.ShouldPromote(Position{Row: 0, Col: 3}, RedMan) {
		t.Fatalf("red man on row 0 must promote")
	}
	if rules.ShouldPromote(Position{Row: 0, Col: 3}, RedKing) {
		t.Fatalf("kings do not promote again")
	}
	if rules.ShouldPromote(Position{Row: 0, Col: 3}, BlackMan) {
		t.Fatalf("black promotes on the far row, not row 0")
	}
}
