package main

import (
	"sync"
	"testing"
)

func TestTTStoreProbeRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1<<8, 2)
	best := Move{From: Position{Row: 5, Col: 2}, To: Position{Row: 4, Col: 3}}
	tt.Store(42, 6, 120.0, TTExact, best)

	entry, ok := tt.Probe(42)
	if !ok {
		t.Fatalf("stored entry not found")
	}
	if entry.Depth != 6 || entry.Score != 120 || entry.Flag != TTExact {
		t.Fatalf("entry = %+v", entry)
	}
	if !entry.BestMove.Equals(best) {
		t.Fatalf("best move = %v, want %v", entry.BestMove, best)
	}
	if _, ok := tt.Probe(43); ok {
		t.Fatalf("probe of absent key succeeded")
	}
}

func TestTTShallowerStoreDoesNotReplace(t *testing.T) {
	tt := NewTranspositionTable(1<<8, 2)
	tt.Store(7, 5, 100.0, TTExact, Move{})
	tt.Store(7, 3, -50.0, TTExact, Move{})

	entry, ok := tt.Probe(7)
	if !ok || entry.Depth != 5 || entry.Score != 100 {
		t.Fatalf("shallower store replaced a deeper entry: %+v", entry)
	}

	tt.Store(7, 8, 200.0, TTExact, Move{})
	entry, ok = tt.Probe(7)
	if !ok || entry.Depth != 8 || entry.Score != 200 {
		t.Fatalf("deeper store did not replace: %+v", entry)
	}
}

func TestTTExactUpgradesBoundAtSameDepth(t *testing.T) {
	tt := NewTranspositionTable(1<<8, 2)
	tt.Store(9, 4, 10.0, TTLower, Move{})
	tt.Store(9, 4, 15.0, TTExact, Move{})

	entry, ok := tt.Probe(9)
	if !ok || entry.Flag != TTExact || entry.Score != 15 {
		t.Fatalf("exact bound did not upgrade: %+v", entry)
	}
}

func TestTTDeleteByKey(t *testing.T) {
	tt := NewTranspositionTable(1<<8, 2)
	tt.Store(11, 4, 1.0, TTExact, Move{})
	if !tt.DeleteByKey(11) {
		t.Fatalf("delete of present key failed")
	}
	if _, ok := tt.Probe(11); ok {
		t.Fatalf("deleted key still probeable")
	}
	if tt.DeleteByKey(11) {
		t.Fatalf("delete of absent key reported success")
	}
}

func TestTTConcurrentProbeStore(t *testing.T) {
	tt := NewTranspositionTable(1<<12, 2)
	var wg sync.WaitGroup

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := splitmix64{state: seed}
			for i := 0; i < 4000; i++ {
				key := rng.next()
				depth := (i % 8) + 1
				move := Move{From: Position{Row: i % 8, Col: (i / 8) % 8}}
				tt.Store(key, depth, float64(i), TTExact, move)
				tt.Probe(key)
				tt.Probe(key ^ 0x9e3779b97f4a7c15)
			}
		}(uint64(g + 1))
	}

	wg.Wait()
	if tt.Count() == 0 {
		t.Fatalf("expected TT to contain entries after concurrent traffic")
	}
}

func TestTTGenerationWrapStaysNonZero(t *testing.T) {
	tt := NewTranspositionTable(16, 1)
	tt.gen.Store(^uint32(0))
	tt.NextGeneration()
	if got := tt.Generation(); got == 0 {
		t.Fatalf("generation must never be zero")
	}
}

func TestTTClear(t *testing.T) {
	tt := NewTranspositionTable(1<<8, 2)
	tt.Store(1, 2, 3.0, TTExact, Move{})
	tt.Clear()
	if tt.Count() != 0 {
		t.Fatalf("count = %d after clear", tt.Count())
	}
}
