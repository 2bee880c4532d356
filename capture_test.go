package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMultiJumpChain(t *testing.T) {
	rules := mustRules(t, "american")
	board := NewBoard(8)
	board.Set(5, 2, RedMan)
	board.Set(4, 3, BlackMan)
	board.Set(2, 3, BlackMan)

	moves := rules.CaptureMoves(board, Position{Row: 5, Col: 2})
	if len(moves) != 1 {
		t.Fatalf("got %d capture sequences, want 1: %v", len(moves), moves)
	}
	want := Move{
		From:     Position{Row: 5, Col: 2},
		To:       Position{Row: 1, Col: 2},
		Captures: []Position{{Row: 4, Col: 3}, {Row: 2, Col: 3}},
		Path:     []Position{{Row: 5, Col: 2}, {Row: 3, Col: 4}, {Row: 1, Col: 2}},
	}
	if diff := cmp.Diff(want, moves[0]); diff != "" {
		t.Fatalf("chain mismatch (-want +got):\n%s", diff)
	}
}

func TestFlyingKingLandingChoices(t *testing.T) {
	rules := mustRules(t, "brazilian")
	board := NewBoard(8)
	board.Set(7, 0, RedKing)
	board.Set(4, 3, BlackMan)

	moves := rules.CaptureMoves(board, Position{Row: 7, Col: 0})
	if len(moves) != 4 {
		t.Fatalf("got %d landing choices, want 4: %v", len(moves), moves)
	}
	landings := map[Position]bool{}
	for _, move := range moves {
		if len(move.Captures) != 1 || !move.Captures[0].Equals(Position{Row: 4, Col: 3}) {
			t.Fatalf("unexpected captures in %v", move)
		}
		landings[move.To] = true
	}
	for _, want := range []Position{{3, 4}, {2, 5}, {1, 6}, {0, 7}} {
		if !landings[want] {
			t.Fatalf("missing landing square %v; got %v", want, landings)
		}
	}
}

func TestFlyingKingBlockedByAdjacentPair(t *testing.T) {
	rules := mustRules(t, "brazilian")
	board := NewBoard(8)
	board.Set(7, 0, RedKing)
	board.Set(4, 3, BlackMan)
	board.Set(3, 4, BlackMan)

	moves := rules.CaptureMoves(board, Position{Row: 7, Col: 0})
	if len(moves) != 0 {
		t.Fatalf("two adjacent pieces must block the jump, got %v", moves)
	}
}

func TestFlyingKingDoesNotJumpOwnPiece(t *testing.T) {
	rules := mustRules(t, "brazilian")
	board := NewBoard(8)
	board.Set(7, 0, RedKing)
	board.Set(4, 3, RedMan)

	moves := rules.CaptureMoves(board, Position{Row: 7, Col: 0})
	if len(moves) != 0 {
		t.Fatalf("own piece is not capturable, got %v", moves)
	}
}

// Landing on the promotion row mid-chain ends the capture under American
// rules but not under Brazilian rules, where the man passes through
// without promoting.
func TestPromotionRowEndsChainPerVariant(t *testing.T) {
	board := NewBoard(8)
	board.Set(2, 1, RedMan)
	board.Set(1, 2, BlackMan)
	board.Set(1, 4, BlackMan)

	american := mustRules(t, "american")
	moves := american.CaptureMoves(board, Position{Row: 2, Col: 1})
	if len(moves) != 1 || len(moves[0].Captures) != 1 {
		t.Fatalf("american chain = %v, want single capture ending on row 0", moves)
	}
	if moves[0].To.Row != 0 {
		t.Fatalf("american capture ended on %v, want promotion row", moves[0].To)
	}

	brazilian := mustRules(t, "brazilian")
	moves = brazilian.CaptureMoves(board, Position{Row: 2, Col: 1})
	if len(moves) != 1 || len(moves[0].Captures) != 2 {
		t.Fatalf("brazilian chain = %v, want double capture through row 0", moves)
	}
	if !moves[0].To.Equals(Position{Row: 2, Col: 5}) {
		t.Fatalf("brazilian chain ended on %v, want 2,5", moves[0].To)
	}
}

func TestChainDoesNotRecaptureSamePiece(t *testing.T) {
	rules := mustRules(t, "brazilian")
	board := NewBoard(8)
	board.Set(7, 2, RedKing)
	board.Set(6, 3, BlackMan)

	moves := rules.CaptureMoves(board, Position{Row: 7, Col: 2})
	for _, move := range moves {
		seen := map[Position]bool{}
		for _, captured := range move.Captures {
			if seen[captured] {
				t.Fatalf("piece %v captured twice in %v", captured, move)
			}
			seen[captured] = true
		}
	}
}
