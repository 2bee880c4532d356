package main

import (
	"fmt"
	"strings"
)

type PieceColor int

const (
	ColorRed PieceColor = iota
	ColorBlack
)

func (c PieceColor) String() string {
	if c == ColorRed {
		return "Red"
	}
	return "Black"
}

func otherColor(color PieceColor) PieceColor {
	if color == ColorRed {
		return ColorBlack
	}
	return ColorRed
}

// forwardDir is the row delta of "forward" for a color: red starts on the
// high rows and promotes at row 0, black the opposite.
func forwardDir(color PieceColor) int {
	if color == ColorRed {
		return -1
	}
	return 1
}

// Piece packs color and kind into one cell value; 0 is an empty square.
type Piece int8

const (
	PieceNone Piece = iota
	RedMan
	RedKing
	BlackMan
	BlackKing
)

func makePiece(color PieceColor, king bool) Piece {
	if color == ColorRed {
		if king {
			return RedKing
		}
		return RedMan
	}
	if king {
		return BlackKing
	}
	return BlackMan
}

func (p Piece) Color() PieceColor {
	if p == RedMan || p == RedKing {
		return ColorRed
	}
	return ColorBlack
}

func (p Piece) IsKing() bool {
	return p == RedKing || p == BlackKing
}

func (p Piece) crowned() Piece {
	switch p {
	case RedMan:
		return RedKing
	case BlackMan:
		return BlackKing
	}
	return p
}

func (p Piece) String() string {
	switch p {
	case RedMan:
		return "r"
	case RedKing:
		return "R"
	case BlackMan:
		return "b"
	case BlackKing:
		return "B"
	}
	return "."
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Equals(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// Board is a square grid of cells. Engine operations never mutate a board
// they were handed; they clone and return the copy.
type Board struct {
	size  int
	cells []Piece
}

func NewBoard(size int) Board {
	return Board{size: size, cells: make([]Piece, size*size)}
}

func (b Board) Size() int {
	return b.size
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func isDarkSquare(row, col int) bool {
	return (row+col)%2 == 1
}

func (b Board) At(row, col int) Piece {
	if !b.InBounds(row, col) {
		return PieceNone
	}
	return b.cells[row*b.size+col]
}

func (b Board) AtPos(pos Position) Piece {
	return b.At(pos.Row, pos.Col)
}

// Set ignores out-of-range coordinates so speculative probes near the edge
// stay branch-free in the capture recursion.
func (b *Board) Set(row, col int, piece Piece) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[row*b.size+col] = piece
}

func (b *Board) Remove(row, col int) {
	b.Set(row, col, PieceNone)
}

func (b Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.At(row, col) == PieceNone
}

func (b Board) Clone() Board {
	clone := Board{size: b.size, cells: make([]Piece, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) CountPieces(color PieceColor) int {
	count := 0
	for _, cell := range b.cells {
		if cell != PieceNone && cell.Color() == color {
			count++
		}
	}
	return count
}

func (b Board) CountKings(color PieceColor) int {
	count := 0
	for _, cell := range b.cells {
		if cell.IsKing() && cell.Color() == color {
			count++
		}
	}
	return count
}

func (b Board) CountMen(color PieceColor) int {
	return b.CountPieces(color) - b.CountKings(color)
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			sb.WriteString(b.At(row, col).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// serialize encodes the full board plus side to move, so identical boards
// with different turns count as distinct repetition keys.
func (b Board) serialize(toMove PieceColor) string {
	var sb strings.Builder
	sb.Grow(len(b.cells) + 2)
	for _, cell := range b.cells {
		sb.WriteString(cell.String())
	}
	sb.WriteByte(':')
	if toMove == ColorRed {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

func boardFromGrid(grid [][]int) (Board, error) {
	size := len(grid)
	b := NewBoard(size)
	for row, line := range grid {
		if len(line) != size {
			return Board{}, fmt.Errorf("row %d has %d cells, want %d", row, len(line), size)
		}
		for col, value := range line {
			if value < int(PieceNone) || value > int(BlackKing) {
				return Board{}, fmt.Errorf("cell (%d,%d) has unknown value %d", row, col, value)
			}
			b.Set(row, col, Piece(value))
		}
	}
	return b, nil
}

func (b Board) toGrid() [][]int {
	grid := make([][]int, b.size)
	for row := 0; row < b.size; row++ {
		line := make([]int, b.size)
		for col := 0; col < b.size; col++ {
			line[col] = int(b.At(row, col))
		}
		grid[row] = line
	}
	return grid
}
