package main

import "fmt"

// Draw reason tags surfaced to API consumers.
const (
	DrawReasonRepetition           = "repetition"
	DrawReasonFortyMoveRule        = "forty_move_rule"
	DrawReasonTwentyFiveMoveRule   = "twenty_five_move_rule"
	DrawReasonInsufficientMaterial = "insufficient_material"
	DrawReasonStalemate            = "stalemate"
)

// DrawState tracks the counters behind the draw rules. It is a value type:
// Update returns a fresh state and never mutates the receiver, mirroring
// the copy-on-write discipline of the board.
type DrawState struct {
	MovesSinceCapture   int
	MovesSincePromotion int
	BoardPositions      []string
	PositionCounts      map[string]int
}

func NewDrawState() DrawState {
	return DrawState{PositionCounts: make(map[string]int)}
}

// Update folds one applied ply into the counters. wasCapture/wasPromotion
// describe the move that produced board; toMove is the side about to play.
func (d DrawState) Update(board Board, toMove PieceColor, wasCapture, wasPromotion bool) DrawState {
	key := board.serialize(toMove)
	next := DrawState{
		MovesSinceCapture:   d.MovesSinceCapture + 1,
		MovesSincePromotion: d.MovesSincePromotion + 1,
		BoardPositions:      append(append([]string(nil), d.BoardPositions...), key),
		PositionCounts:      make(map[string]int, len(d.PositionCounts)+1),
	}
	for k, count := range d.PositionCounts {
		next.PositionCounts[k] = count
	}
	if wasCapture {
		next.MovesSinceCapture = 0
	}
	if wasPromotion {
		next.MovesSincePromotion = 0
	}
	next.PositionCounts[key]++
	return next
}

// GameOutcome reports a decided game: either a winner or a draw with a
// tagged reason and a human-readable explanation.
type GameOutcome struct {
	Winner      PieceColor
	HasWinner   bool
	Draw        bool
	Reason      string
	Explanation string
}

func winOutcome(winner PieceColor, reason, explanation string) *GameOutcome {
	return &GameOutcome{Winner: winner, HasWinner: true, Reason: reason, Explanation: explanation}
}

func drawOutcome(reason, explanation string) *GameOutcome {
	return &GameOutcome{Draw: true, Reason: reason, Explanation: explanation}
}

// checkWinner decides the game for the given position with toMove to play.
// Elimination and no-moves take precedence over every draw rule; draw rules
// run in fixed order: repetition, forty-move, twenty-five-move,
// insufficient material. Returns nil while the game is still live.
func checkWinner(board Board, toMove PieceColor, config VariantConfig, drawState *DrawState) *GameOutcome {
	redPieces := board.CountPieces(ColorRed)
	blackPieces := board.CountPieces(ColorBlack)
	if redPieces == 0 {
		return winOutcome(ColorBlack, "elimination", "Red has no pieces left")
	}
	if blackPieces == 0 {
		return winOutcome(ColorRed, "elimination", "Black has no pieces left")
	}
	if len(findValidMoves(board, toMove, config)) == 0 {
		if config.Draws.StaleMate {
			return drawOutcome(DrawReasonStalemate, fmt.Sprintf("%s has no legal moves", toMove))
		}
		return winOutcome(otherColor(toMove), "no_moves", fmt.Sprintf("%s has no legal moves", toMove))
	}

	if drawState == nil {
		return nil
	}
	if limit := config.Draws.RepetitionLimit; limit >= 1 {
		key := board.serialize(toMove)
		if drawState.PositionCounts[key] >= limit {
			return drawOutcome(DrawReasonRepetition, fmt.Sprintf("position repeated %d times", limit))
		}
	}
	// Move-count rules are tracked in plies: 40 moves by each side is 80
	// plies, 25 moves is 50.
	if config.Draws.FortyMoveRule && drawState.MovesSinceCapture >= 80 && drawState.MovesSincePromotion >= 80 {
		return drawOutcome(DrawReasonFortyMoveRule, "40 moves without a capture or promotion")
	}
	if config.Draws.TwentyFiveMoveRule && kingsOnly(board) && drawState.MovesSinceCapture >= 50 {
		return drawOutcome(DrawReasonTwentyFiveMoveRule, "25 moves in a king-only endgame without a capture")
	}
	if config.Draws.InsufficientMaterial && insufficientMaterial(board) {
		return drawOutcome(DrawReasonInsufficientMaterial, "neither side can force a win")
	}
	return nil
}

func kingsOnly(board Board) bool {
	return board.CountMen(ColorRed) == 0 && board.CountMen(ColorBlack) == 0
}

// insufficientMaterial recognizes pure-king endings only; any regular piece
// on the board disqualifies the check. 3v1 kings count only on boards of
// size 10 and up, where the long diagonal gives the lone king room to run.
func insufficientMaterial(board Board) bool {
	if !kingsOnly(board) {
		return false
	}
	red := board.CountKings(ColorRed)
	black := board.CountKings(ColorBlack)
	low, high := red, black
	if low > high {
		low, high = high, low
	}
	if low != 1 {
		return false
	}
	switch high {
	case 1, 2:
		return true
	case 3:
		return board.Size() >= 10
	}
	return false
}
