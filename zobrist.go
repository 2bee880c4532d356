package main

import "sync"

// ZobristTable holds one random key per (square, piece kind) plus a
// side-to-move key. Tables are built lazily per board size and shared.
type ZobristTable struct {
	size  int
	cells []uint64
	side  uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[int]*ZobristTable
}

var zobristTables = &zobristStore{tables: make(map[int]*ZobristTable)}

const pieceKinds = 4 // red man, red king, black man, black king

func GetZobrist(size int) *ZobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[size]; ok {
		return table
	}
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(size)}
	table := &ZobristTable{size: size, cells: make([]uint64, size*size*pieceKinds)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	zobristTables.tables[size] = table
	return table
}

func (z *ZobristTable) pieceKey(row, col int, piece Piece) uint64 {
	idx := (row*z.size+col)*pieceKinds + int(piece-RedMan)
	return z.cells[idx]
}

// ComputeHash hashes the full board plus side to move; it keys the
// transposition table.
func ComputeHash(board Board, toMove PieceColor) uint64 {
	z := GetZobrist(board.Size())
	var hash uint64
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			piece := board.At(row, col)
			if piece == PieceNone {
				continue
			}
			hash ^= z.pieceKey(row, col, piece)
		}
	}
	if toMove == ColorBlack {
		hash ^= z.side
	}
	return hash
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
