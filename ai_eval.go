package main

// Decided games score in (winScore, wonGameScore): the terminal value is
// wonGameScore minus the ply it was reached at, so a nearer win outranks
// a distant one. Heuristic scores stay well below winScore.
const (
	winScore     = 10000.0
	wonGameScore = 2 * winScore
)

func DefaultWeights() Weights {
	return Weights{
		Material:    100.0,
		KingValue:   150.0, // a king is worth 1.5 men
		Advancement: 2.0,
		BackRow:     8.0,
		Center:      4.0,
		Mobility:    3.0,
		Protection:  5.0,
		Tempo:       2.0,
	}
}

// Difficulty presets. Easy skips search entirely; the others trade depth
// for latency.
type DifficultyPreset struct {
	Name         string
	Depth        int
	TimeBudgetMs int
	RandomMoves  bool
	Weights      Weights
}

func difficultyPresets() map[string]DifficultyPreset {
	base := DefaultWeights()
	shallow := base
	shallow.Mobility = 0
	shallow.Protection = 0
	return map[string]DifficultyPreset{
		"easy":   {Name: "easy", Depth: 0, TimeBudgetMs: 0, RandomMoves: true, Weights: shallow},
		"medium": {Name: "medium", Depth: 4, TimeBudgetMs: 500, Weights: shallow},
		"hard":   {Name: "hard", Depth: 8, TimeBudgetMs: 2000, Weights: base},
		"expert": {Name: "expert", Depth: 12, TimeBudgetMs: 5000, Weights: base},
	}
}

func resolvePreset(config Config) DifficultyPreset {
	presets := difficultyPresets()
	preset, ok := presets[config.AiDifficulty]
	if !ok {
		preset = presets["hard"]
	}
	if config.AiMaxDepth > 0 {
		preset.Depth = config.AiMaxDepth
	}
	if config.AiTimeBudgetMs > 0 {
		preset.TimeBudgetMs = config.AiTimeBudgetMs
	}
	if config.Weights != (Weights{}) {
		preset.Weights = config.Weights
	}
	return preset
}

// EvaluateBoard scores the position from perspective's point of view.
// Positive favors perspective. Decided games are handled by search, not
// here; this is the quiet-position heuristic only.
func EvaluateBoard(board Board, perspective PieceColor, rules *GameRules, weights Weights) float64 {
	return sideScore(board, perspective, rules, weights) - sideScore(board, otherColor(perspective), rules, weights)
}

func sideScore(board Board, color PieceColor, rules *GameRules, weights Weights) float64 {
	size := board.Size()
	promotion := rules.Config().promotionRow(color)
	backRow := size - 1 - promotion // own crownhead, where defenders sit
	centerLow := size/2 - 1
	centerHigh := size / 2

	score := 0.0
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			piece := board.At(row, col)
			if piece == PieceNone || piece.Color() != color {
				continue
			}
			if piece.IsKing() {
				score += weights.KingValue
			} else {
				score += weights.Material
				// Advancement counts rows traveled toward promotion.
				traveled := abs(row - backRow)
				score += weights.Advancement * float64(traveled)
				if row == backRow {
					score += weights.BackRow
				}
			}
			if row >= centerLow && row <= centerHigh && col >= centerLow && col <= centerHigh {
				score += weights.Center
			}
			if isProtected(board, row, col, color) {
				score += weights.Protection
			}
		}
	}
	if weights.Mobility != 0 {
		score += weights.Mobility * float64(len(rules.FindValidMoves(board, color)))
	}
	return score
}

// isProtected reports whether the square behind the piece (relative to
// its own direction of play) is covered by a friendly piece or the edge.
func isProtected(board Board, row, col int, color PieceColor) bool {
	behind := row - forwardDir(color)
	if behind < 0 || behind >= board.Size() {
		return true
	}
	for _, dCol := range []int{-1, 1} {
		c := col + dCol
		if !board.InBounds(behind, c) {
			continue
		}
		neighbor := board.At(behind, c)
		if neighbor != PieceNone && neighbor.Color() == color {
			return true
		}
	}
	return false
}
