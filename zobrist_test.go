package main

import "testing"

func TestHashIsDeterministic(t *testing.T) {
	board := NewBoard(8)
	board.Set(5, 2, RedMan)
	board.Set(2, 3, BlackKing)

	if ComputeHash(board, ColorRed) != ComputeHash(board, ColorRed) {
		t.Fatalf("hash of the same position must be stable")
	}
	if ComputeHash(board, ColorRed) != ComputeHash(board.Clone(), ColorRed) {
		t.Fatalf("hash must not depend on board identity")
	}
}

func TestHashDiffersBySideToMove(t *testing.T) {
	board := NewBoard(8)
	board.Set(5, 2, RedMan)
	if ComputeHash(board, ColorRed) == ComputeHash(board, ColorBlack) {
		t.Fatalf("expected hash to differ for different side to move")
	}
}

func TestHashDiffersByPlacementAndKind(t *testing.T) {
	a := NewBoard(8)
	a.Set(5, 2, RedMan)
	b := NewBoard(8)
	b.Set(5, 4, RedMan)
	if ComputeHash(a, ColorRed) == ComputeHash(b, ColorRed) {
		t.Fatalf("expected hash to differ by square")
	}

	c := NewBoard(8)
	c.Set(5, 2, RedKing)
	if ComputeHash(a, ColorRed) == ComputeHash(c, ColorRed) {
		t.Fatalf("expected hash to differ between man and king")
	}
}

func TestZobristTablesSharedPerSize(t *testing.T) {
	if GetZobrist(8) != GetZobrist(8) {
		t.Fatalf("expected one table per board size")
	}
	if GetZobrist(8) == GetZobrist(10) {
		t.Fatalf("expected distinct tables per board size")
	}
}
