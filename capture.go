package main

// getCaptureMoves expands every capture sequence available to the piece at
// from, multi-jump chains included. Each recursion level probes a
// hypothetical board with the source and the jumped piece removed and the
// piece placed on the landing square, so branches never see each other's
// state. All maximal branches are returned, not just one.
func getCaptureMoves(board Board, from Position, piece Piece, config VariantConfig) []Move {
	return captureSequences(board, from, from, piece, config, nil, nil)
}

func captureSequences(board Board, origin, from Position, piece Piece, config VariantConfig, captured []Position, path []Position) []Move {
	var moves []Move
	flying := piece.IsKing() && config.Movement.King.CanFly
	for _, dir := range captureDirections(piece, config) {
		if flying {
			moves = append(moves, flyingCaptures(board, origin, from, piece, config, dir, captured, path)...)
			continue
		}
		enemy := Position{Row: from.Row + dir.dRow, Col: from.Col + dir.dCol}
		landing := Position{Row: from.Row + 2*dir.dRow, Col: from.Col + 2*dir.dCol}
		if !canJump(board, piece, enemy, landing) {
			continue
		}
		moves = append(moves, continueChain(board, origin, from, enemy, landing, piece, config, captured, path)...)
	}
	return moves
}

// flyingCaptures scans outward along dir: empties are skipped until the
// first occupied square, which must hold a single enemy piece; every empty
// square beyond it is its own landing choice, each recursing independently.
// A second piece of either color blocks the scan.
func flyingCaptures(board Board, origin, from Position, piece Piece, config VariantConfig, dir direction, captured []Position, path []Position) []Move {
	var moves []Move
	row, col := from.Row+dir.dRow, from.Col+dir.dCol
	for board.IsEmpty(row, col) {
		row += dir.dRow
		col += dir.dCol
	}
	if !board.InBounds(row, col) {
		return nil
	}
	target := board.At(row, col)
	if target == PieceNone || target.Color() == piece.Color() {
		return nil
	}
	enemy := Position{Row: row, Col: col}
	if alreadyCaptured(captured, enemy) {
		return nil
	}
	row += dir.dRow
	col += dir.dCol
	for board.IsEmpty(row, col) {
		landing := Position{Row: row, Col: col}
		moves = append(moves, continueChain(board, origin, from, enemy, landing, piece, config, captured, path)...)
		row += dir.dRow
		col += dir.dCol
	}
	return moves
}

func canJump(board Board, piece Piece, enemy, landing Position) bool {
	target := board.AtPos(enemy)
	if target == PieceNone || target.Color() == piece.Color() {
		return false
	}
	return board.IsEmpty(landing.Row, landing.Col)
}

// continueChain records one jump and recurses from the landing square. The
// chain stops when the variant disables chain captures, when a regular
// piece lands on its promotion row under stops_capture_chain, or when no
// further jump exists.
func continueChain(board Board, origin, from, enemy, landing Position, piece Piece, config VariantConfig, captured []Position, path []Position) []Move {
	nextCaptured := append(append([]Position(nil), captured...), enemy)
	nextPath := append(append([]Position(nil), path...), landing)

	move := Move{
		From:     origin,
		To:       landing,
		Captures: nextCaptured,
		Path:     append([]Position{origin}, nextPath...),
	}

	if !config.Capture.ChainCaptures {
		return []Move{move}
	}
	if !piece.IsKing() && config.Capture.Promotion.StopsCaptureChain && landing.Row == config.promotionRow(piece.Color()) {
		return []Move{move}
	}

	next := board.Clone()
	next.Remove(from.Row, from.Col)
	next.Remove(enemy.Row, enemy.Col)
	next.Set(landing.Row, landing.Col, piece)

	continuations := captureSequences(next, origin, landing, piece, config, nextCaptured, nextPath)
	if len(continuations) == 0 {
		return []Move{move}
	}
	return continuations
}

func alreadyCaptured(captured []Position, pos Position) bool {
	for _, c := range captured {
		if c.Equals(pos) {
			return true
		}
	}
	return false
}
