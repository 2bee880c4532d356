package main

import (
	"sort"
	"time"
)

type SearchSettings struct {
	Depth        int
	TimeBudgetMs int
	Weights      Weights
	Cache        *TranspositionTable
	Stats        *SearchStats
	ShouldStop   func() bool
}

type minimaxContext struct {
	rules       *GameRules
	settings    SearchSettings
	perspective PieceColor
	start       time.Time
	deadline    time.Time
	hasDeadline bool
}

type SearchStats struct {
	Nodes           int64
	TTProbes        int64
	TTHits          int64
	TTStores        int64
	TTReplacements  int64
	Cutoffs         int64
	TTCutoffs       int64
	Start           time.Time
	DepthDurations  []time.Duration
	CompletedDepths int
}

// MoveScore pairs a root move with its searched score, from the
// perspective of the side making the move.
type MoveScore struct {
	Move  Move
	Score float64
	Depth int
}

func timedOut(ctx minimaxContext) bool {
	if ctx.settings.ShouldStop != nil && ctx.settings.ShouldStop() {
		return true
	}
	return ctx.hasDeadline && time.Now().After(ctx.deadline)
}

// SearchBestMoves runs iterative deepening over the root moves and
// returns them sorted best-first, scored at the deepest depth that
// completed inside the time budget. The incomplete depth's partial
// results are discarded. An empty slice means no legal move exists.
func SearchBestMoves(rules *GameRules, board Board, toMove PieceColor, settings SearchSettings) []MoveScore {
	rootMoves := rules.FindValidMoves(board, toMove)
	if len(rootMoves) == 0 {
		return nil
	}
	if settings.Depth < 1 {
		settings.Depth = 1
	}
	ctx := minimaxContext{
		rules:       rules,
		settings:    settings,
		perspective: toMove,
		start:       time.Now(),
	}
	if settings.TimeBudgetMs > 0 {
		ctx.deadline = ctx.start.Add(time.Duration(settings.TimeBudgetMs) * time.Millisecond)
		ctx.hasDeadline = true
	}
	if settings.Cache != nil {
		settings.Cache.NextGeneration()
	}

	ordered := orderMoves(rootMoves, Move{})
	var best []MoveScore
	for depth := 1; depth <= settings.Depth; depth++ {
		depthStart := time.Now()
		scores, completed := searchRoot(ctx, board, toMove, ordered, depth)
		if !completed {
			break
		}
		best = scores
		if settings.Stats != nil {
			settings.Stats.CompletedDepths = depth
			settings.Stats.DepthDurations = append(settings.Stats.DepthDurations, time.Since(depthStart))
		}
		// Feed this depth's ordering into the next.
		ordered = ordered[:0]
		for _, ms := range scores {
			ordered = append(ordered, ms.Move)
		}
		// A proven win or loss cannot improve with more depth.
		if len(best) > 0 && (best[0].Score >= winScore || best[0].Score <= -winScore) {
			break
		}
	}
	return best
}

func searchRoot(ctx minimaxContext, board Board, toMove PieceColor, moves []Move, depth int) ([]MoveScore, bool) {
	scores := make([]MoveScore, 0, len(moves))
	alpha := -2 * winScore * float64(depth+2)
	beta := -alpha
	for _, move := range moves {
		if timedOut(ctx) {
			return nil, false
		}
		next := ctx.rules.MakeMove(board, move)
		score := -minimax(ctx, next, otherColor(toMove), depth-1, 1, -beta, -alpha)
		if timedOut(ctx) {
			return nil, false
		}
		scores = append(scores, MoveScore{Move: move, Score: score, Depth: depth})
		if score > alpha {
			alpha = score
		}
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores, true
}

// minimax is negamax with alpha-beta; the score is always from toMove's
// perspective. Wins found closer to the root score higher than distant
// ones, so the engine takes the shortest kill and stalls a lost game.
func minimax(ctx minimaxContext, board Board, toMove PieceColor, depth, depthFromRoot int, alpha, beta float64) float64 {
	if ctx.settings.Stats != nil {
		ctx.settings.Stats.Nodes++
	}
	if timedOut(ctx) {
		return 0
	}

	outcome := ctx.rules.CheckWinner(board, toMove, nil)
	if outcome != nil {
		if outcome.Draw {
			return 0
		}
		if outcome.Winner == toMove {
			return wonGameScore - float64(depthFromRoot)
		}
		return float64(depthFromRoot) - wonGameScore
	}
	if depth <= 0 {
		score := EvaluateBoard(board, toMove, ctx.rules, ctx.settings.Weights)
		return score + ctx.settings.Weights.Tempo
	}

	var hash uint64
	var ttMove Move
	cache := ctx.settings.Cache
	if cache != nil {
		hash = ComputeHash(board, toMove)
		if ctx.settings.Stats != nil {
			ctx.settings.Stats.TTProbes++
		}
		if entry, ok := cache.Probe(hash); ok {
			if ctx.settings.Stats != nil {
				ctx.settings.Stats.TTHits++
			}
			ttMove = entry.BestMove
			if entry.Depth >= depth {
				score := ttScoreFromProbe(entry.ScoreFloat(), depthFromRoot)
				switch entry.Flag {
				case TTExact:
					if ctx.settings.Stats != nil {
						ctx.settings.Stats.TTCutoffs++
					}
					return score
				case TTLower:
					if score > alpha {
						alpha = score
					}
				case TTUpper:
					if score < beta {
						beta = score
					}
				}
				if alpha >= beta {
					if ctx.settings.Stats != nil {
						ctx.settings.Stats.TTCutoffs++
					}
					return score
				}
			}
		}
	}

	moves := ctx.rules.FindValidMoves(board, toMove)
	// CheckWinner above already handled the no-moves case.
	moves = orderMoves(moves, ttMove)

	alphaOrig := alpha
	best := -2 * winScore * float64(depth+2)
	var bestMove Move
	for _, move := range moves {
		next := ctx.rules.MakeMove(board, move)
		score := -minimax(ctx, next, otherColor(toMove), depth-1, depthFromRoot+1, -beta, -alpha)
		if timedOut(ctx) {
			return 0
		}
		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if ctx.settings.Stats != nil {
				ctx.settings.Stats.Cutoffs++
			}
			break
		}
	}

	if cache != nil {
		flag := TTExact
		if best <= alphaOrig {
			flag = TTUpper
		} else if best >= beta {
			flag = TTLower
		}
		replaced, overwrote := cache.Store(hash, depth, ttScoreForStore(best, depthFromRoot), flag, bestMove)
		if ctx.settings.Stats != nil {
			ctx.settings.Stats.TTStores++
			if replaced || overwrote {
				ctx.settings.Stats.TTReplacements++
			}
		}
	}
	return best
}

// Decided scores are relative to the root during search but relative to
// the node inside the table, so an entry written deep in one line reads
// correctly from any other distance to the root.
func ttScoreForStore(score float64, ply int) float64 {
	if score >= winScore {
		return score + float64(ply)
	}
	if score <= -winScore {
		return score - float64(ply)
	}
	return score
}

func ttScoreFromProbe(score float64, ply int) float64 {
	if score >= winScore {
		return score - float64(ply)
	}
	if score <= -winScore {
		return score + float64(ply)
	}
	return score
}

// orderMoves puts the TT move first, then captures by descending capture
// count, then quiet moves. Stable so iterative-deepening order survives.
func orderMoves(moves []Move, ttMove Move) []Move {
	sort.SliceStable(moves, func(i, j int) bool {
		return moveOrderKey(moves[i], ttMove) > moveOrderKey(moves[j], ttMove)
	})
	return moves
}

func moveOrderKey(move Move, ttMove Move) int {
	if len(ttMove.Path) > 0 || ttMove.From != ttMove.To {
		if move.Equals(ttMove) {
			return 1 << 20
		}
	}
	return len(move.Captures)
}
