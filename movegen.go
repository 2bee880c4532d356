package main

import "fmt"

// Move describes a relocation with optional capture chain. Path carries
// every landing square of a multi-jump, endpoints included; Captures holds
// the jumped enemy squares in jump order.
type Move struct {
	From     Position   `json:"from"`
	To       Position   `json:"to"`
	Captures []Position `json:"captures,omitempty"`
	Path     []Position `json:"path,omitempty"`
}

func (m Move) IsCapture() bool {
	return len(m.Captures) > 0
}

func (m Move) String() string {
	if m.IsCapture() {
		return fmt.Sprintf("%dx%d,%dx%d (%d captured)", m.From.Row, m.From.Col, m.To.Row, m.To.Col, len(m.Captures))
	}
	return fmt.Sprintf("%dx%d-%dx%d", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

func (m Move) Equals(other Move) bool {
	if !m.From.Equals(other.From) || !m.To.Equals(other.To) {
		return false
	}
	if len(m.Captures) != len(other.Captures) {
		return false
	}
	for i := range m.Captures {
		if !m.Captures[i].Equals(other.Captures[i]) {
			return false
		}
	}
	return true
}

type direction struct {
	dRow int
	dCol int
}

var allDiagonals = [4]direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

func forwardDiagonals(color PieceColor) []direction {
	d := forwardDir(color)
	return []direction{{d, -1}, {d, 1}}
}

func backwardDiagonals(color PieceColor) []direction {
	d := -forwardDir(color)
	return []direction{{d, -1}, {d, 1}}
}

// getValidDirections derives the movement directions for a piece. Kings
// always move on all four diagonals; regular pieces follow the configured
// base direction plus the backward-move override.
func getValidDirections(piece Piece, config VariantConfig) []direction {
	if piece.IsKing() {
		return allDiagonals[:]
	}
	color := piece.Color()
	switch config.Movement.Regular.Direction {
	case DirAll:
		return allDiagonals[:]
	case DirBackward:
		dirs := backwardDiagonals(color)
		if config.Movement.Regular.CanMoveBackward {
			dirs = append(dirs, forwardDiagonals(color)...)
		}
		return dirs
	default:
		dirs := forwardDiagonals(color)
		if config.Movement.Regular.CanMoveBackward {
			dirs = append(dirs, backwardDiagonals(color)...)
		}
		return dirs
	}
}

// captureDirections restricts which diagonals are even considered for
// jumps; backward-capture legality is enforced here, not by filtering
// generated moves after the fact.
func captureDirections(piece Piece, config VariantConfig) []direction {
	color := piece.Color()
	if piece.IsKing() {
		if config.Capture.CaptureDirection.King == DirForward && !config.Movement.King.CanCaptureBackward {
			return forwardDiagonals(color)
		}
		return allDiagonals[:]
	}
	if config.Capture.CaptureDirection.Regular == DirAll || config.Movement.Regular.CanCaptureBackward {
		return allDiagonals[:]
	}
	return forwardDiagonals(color)
}

// simpleMoves lists non-capture destinations for the piece at from: one
// diagonal step for ordinary pieces, any unobstructed distance for flying
// kings.
func simpleMoves(board Board, from Position, piece Piece, config VariantConfig) []Move {
	var moves []Move
	flying := piece.IsKing() && config.Movement.King.CanFly
	for _, dir := range getValidDirections(piece, config) {
		row, col := from.Row+dir.dRow, from.Col+dir.dCol
		for board.IsEmpty(row, col) {
			moves = append(moves, Move{From: from, To: Position{Row: row, Col: col}})
			if !flying {
				break
			}
			row += dir.dRow
			col += dir.dCol
		}
	}
	return moves
}

// findValidMoves returns every legal move for color. If captures exist and
// the variant makes them mandatory, only captures are returned, further
// narrowed by maximum-capture and king-priority when configured.
func findValidMoves(board Board, color PieceColor, config VariantConfig) []Move {
	captures := findCaptureMoves(board, color, config)
	if len(captures) > 0 && config.Capture.Mandatory {
		return captures
	}

	var moves []Move
	moves = append(moves, captures...)
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			piece := board.At(row, col)
			if piece == PieceNone || piece.Color() != color {
				continue
			}
			moves = append(moves, simpleMoves(board, Position{Row: row, Col: col}, piece, config)...)
		}
	}
	return moves
}

// findCaptureMoves collects capture sequences for every piece of color and
// applies the configured restriction filters.
func findCaptureMoves(board Board, color PieceColor, config VariantConfig) []Move {
	var captures []Move
	size := board.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			piece := board.At(row, col)
			if piece == PieceNone || piece.Color() != color {
				continue
			}
			captures = append(captures, getCaptureMoves(board, Position{Row: row, Col: col}, piece, config)...)
		}
	}
	if len(captures) == 0 {
		return nil
	}
	if config.Capture.RequireMaximum {
		captures = filterMaximumCaptures(captures)
	}
	if config.Capture.KingPriority {
		captures = filterKingPriority(board, captures)
	}
	return captures
}

func maxCaptureLength(moves []Move) int {
	max := 0
	for _, move := range moves {
		if len(move.Captures) > max {
			max = len(move.Captures)
		}
	}
	return max
}

func filterMaximumCaptures(moves []Move) []Move {
	max := maxCaptureLength(moves)
	filtered := moves[:0]
	for _, move := range moves {
		if len(move.Captures) == max {
			filtered = append(filtered, move)
		}
	}
	return filtered
}

// filterKingPriority keeps only king-originated sequences when at least one
// king owns a sequence of the maximal remaining length.
func filterKingPriority(board Board, moves []Move) []Move {
	max := maxCaptureLength(moves)
	kingHasMax := false
	for _, move := range moves {
		if len(move.Captures) == max && board.AtPos(move.From).IsKing() {
			kingHasMax = true
			break
		}
	}
	if !kingHasMax {
		return moves
	}
	filtered := moves[:0]
	for _, move := range moves {
		if board.AtPos(move.From).IsKing() {
			filtered = append(filtered, move)
		}
	}
	return filtered
}

// isMaximumCaptureMove reports whether move matches the longest capture
// available to its side on board. Used by the validator for externally
// proposed moves.
func isMaximumCaptureMove(board Board, move Move, config VariantConfig) bool {
	piece := board.AtPos(move.From)
	if piece == PieceNone {
		return false
	}
	all := findCaptureMoves(board, piece.Color(), config)
	return len(move.Captures) >= maxCaptureLength(all)
}
