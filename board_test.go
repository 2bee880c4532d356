package main

import "testing"

func TestInitialBoardAmerican(t *testing.T) {
	rules, err := NewGameRules("american")
	if err != nil {
		t.Fatalf("load american: %v", err)
	}
	board := rules.CreateInitialBoard()

	if got := board.CountPieces(ColorRed); got != 12 {
		t.Fatalf("red pieces = %d, want 12", got)
	}
	if got := board.CountPieces(ColorBlack); got != 12 {
		t.Fatalf("black pieces = %d, want 12", got)
	}
	for row := 3; row <= 4; row++ {
		for col := 0; col < board.Size(); col++ {
			if board.At(row, col) != PieceNone {
				t.Fatalf("middle row %d,%d not empty", row, col)
			}
		}
	}
	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			if board.At(row, col) != PieceNone && !isDarkSquare(row, col) {
				t.Fatalf("piece on light square %d,%d", row, col)
			}
		}
	}
	if board.At(0, 1) != BlackMan {
		t.Fatalf("expected black man at 0,1, got %v", board.At(0, 1))
	}
	if board.At(7, 0) != RedMan {
		t.Fatalf("expected red man at 7,0, got %v", board.At(7, 0))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	board := NewBoard(8)
	board.Set(5, 2, RedMan)
	clone := board.Clone()
	clone.Set(5, 2, PieceNone)
	if board.At(5, 2) != RedMan {
		t.Fatalf("mutating clone changed the original")
	}
}

func TestSerializeIncludesSideToMove(t *testing.T) {
	board := NewBoard(8)
	board.Set(5, 2, RedMan)
	if board.serialize(ColorRed) == board.serialize(ColorBlack) {
		t.Fatalf("expected serialization to differ by side to move")
	}
}

func TestSetIgnoresOutOfRange(t *testing.T) {
	board := NewBoard(8)
	board.Set(-1, 3, RedMan)
	board.Set(8, 0, RedMan)
	if board.CountPieces(ColorRed) != 0 {
		t.Fatalf("out-of-range set must be a no-op")
	}
}
