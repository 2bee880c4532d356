package main

// makeMove returns a new board reflecting move: the piece relocated, every
// captured square cleared, and a regular piece crowned when it finishes on
// its promotion row. The input board is never touched. An empty source
// square yields the board unchanged; callers validate moves beforehand.
func makeMove(board Board, move Move, config VariantConfig) Board {
	piece := board.AtPos(move.From)
	if piece == PieceNone {
		return board
	}
	next := board.Clone()
	next.Remove(move.From.Row, move.From.Col)
	for _, captured := range move.Captures {
		next.Remove(captured.Row, captured.Col)
	}
	if !piece.IsKing() && move.To.Row == config.promotionRow(piece.Color()) {
		piece = piece.crowned()
	}
	next.Set(move.To.Row, move.To.Col, piece)
	return next
}
