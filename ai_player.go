package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type sharedCache struct {
	mu      sync.Mutex
	tt      *TranspositionTable
	size    int
	buckets int
}

var searchCache = &sharedCache{}

// SharedSearchCache returns the process-wide transposition table,
// rebuilding it when the configured sizing changed.
func SharedSearchCache() *TranspositionTable {
	config := GetConfig()
	searchCache.mu.Lock()
	defer searchCache.mu.Unlock()
	if searchCache.tt == nil || searchCache.size != config.AiTtSize || searchCache.buckets != config.AiTtBuckets {
		searchCache.tt = NewTranspositionTable(uint64(config.AiTtSize), config.AiTtBuckets)
		searchCache.size = config.AiTtSize
		searchCache.buckets = config.AiTtBuckets
	}
	return searchCache.tt
}

type AIPlayer struct {
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	stopSignal atomic.Bool
	readyMove  Move
	hasMove    bool
	difficulty string
	rng        *rand.Rand
}

func NewAIPlayer() *AIPlayer {
	return &AIPlayer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// SetDifficultyOverride pins this player to a difficulty, ignoring the
// global config's preset.
func (a *AIPlayer) SetDifficultyOverride(difficulty string) {
	a.difficulty = difficulty
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) ChooseMove(state GameState, rules *GameRules) (Move, bool) {
	return a.GetBestMove(rules, state.Board, state.ToMove)
}

// GetBestMove picks the side's move under the configured difficulty.
// Easy plays a capture-preferring random move without searching; the
// other presets run the full iterative-deepening search. The bool is
// false only when the side has no legal move.
func (a *AIPlayer) GetBestMove(rules *GameRules, board Board, toMove PieceColor) (Move, bool) {
	config := GetConfig()
	if a.difficulty != "" {
		config.AiDifficulty = a.difficulty
	}
	preset := resolvePreset(config)
	if preset.RandomMoves {
		return a.randomMove(rules, board, toMove)
	}
	stats := &SearchStats{Start: time.Now()}
	settings := SearchSettings{
		Depth:        preset.Depth,
		TimeBudgetMs: preset.TimeBudgetMs,
		Weights:      preset.Weights,
		Cache:        SharedSearchCache(),
		Stats:        stats,
		ShouldStop:   func() bool { return a.stopSignal.Load() },
	}
	scores := SearchBestMoves(rules, board, toMove, settings)
	if config.AiLogSearchStats {
		a.logSearchStats("choose", stats, settings)
	}
	if len(scores) == 0 {
		// The budget expired before depth 1 finished; any legal move
		// beats forfeiting.
		return a.randomMove(rules, board, toMove)
	}
	return scores[0].Move, true
}

func (a *AIPlayer) randomMove(rules *GameRules, board Board, toMove PieceColor) (Move, bool) {
	moves := rules.FindValidMoves(board, toMove)
	if len(moves) == 0 {
		return Move{}, false
	}
	captures := make([]Move, 0, len(moves))
	for _, move := range moves {
		if move.IsCapture() {
			captures = append(captures, move)
		}
	}
	if len(captures) > 0 {
		moves = captures
	}
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	return moves[a.rng.Intn(len(moves))], true
}

// StartThinking searches in the background; poll HasMoveReady and call
// TakeMove from the game loop.
func (a *AIPlayer) StartThinking(state GameState, rules *GameRules) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)
	a.stopSignal.Store(false)

	board := state.Board.Clone()
	toMove := state.ToMove
	done := make(chan struct{})
	a.workerDone = done
	go func() {
		defer close(done)
		move, ok := a.GetBestMove(rules, board, toMove)
		if a.stopSignal.Load() {
			a.thinking.Store(false)
			return
		}
		a.moveMutex.Lock()
		a.readyMove = move
		a.hasMove = ok
		a.moveMutex.Unlock()
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() (Move, bool) {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove, a.hasMove
}

func (a *AIPlayer) Stop() {
	a.stopSignal.Store(true)
	if a.workerDone != nil {
		<-a.workerDone
		a.workerDone = nil
	}
	a.stopSignal.Store(false)
}

func (a *AIPlayer) CacheSize() int {
	return SharedSearchCache().Count()
}

// AnalyzePosition scores the position for the side to move on a
// [-100, 100] scale. Decided positions pin to the extremes.
func (a *AIPlayer) AnalyzePosition(rules *GameRules, board Board, toMove PieceColor) float64 {
	config := GetConfig()
	preset := resolvePreset(config)
	outcome := rules.CheckWinner(board, toMove, nil)
	if outcome != nil {
		if outcome.Draw {
			return 0
		}
		if outcome.Winner == toMove {
			return 100
		}
		return -100
	}
	settings := SearchSettings{
		Depth:        preset.Depth,
		TimeBudgetMs: preset.TimeBudgetMs,
		Weights:      preset.Weights,
		Cache:        SharedSearchCache(),
	}
	scores := SearchBestMoves(rules, board, toMove, settings)
	if len(scores) == 0 {
		return -100
	}
	return clampAnalysis(scores[0].Score)
}

// clampAnalysis maps a raw search score onto [-100, 100]. Forced wins
// and losses saturate; heuristic scores scale so a full man of
// advantage reads as a few points.
func clampAnalysis(score float64) float64 {
	if score >= winScore {
		return 100
	}
	if score <= -winScore {
		return -100
	}
	scaled := score / 25.0
	if scaled > 99 {
		return 99
	}
	if scaled < -99 {
		return -99
	}
	return scaled
}

// GetTopMoves returns up to limit root moves, best first, each with its
// searched score.
func (a *AIPlayer) GetTopMoves(rules *GameRules, board Board, toMove PieceColor, limit int) []MoveScore {
	if limit < 1 {
		limit = 1
	}
	config := GetConfig()
	preset := resolvePreset(config)
	settings := SearchSettings{
		Depth:        preset.Depth,
		TimeBudgetMs: preset.TimeBudgetMs,
		Weights:      preset.Weights,
		Cache:        SharedSearchCache(),
	}
	scores := SearchBestMoves(rules, board, toMove, settings)
	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}

// CompareMoves scores two candidate moves from the same position and
// reports the first's advantage over the second, positive meaning the
// first is better for the side to move.
func (a *AIPlayer) CompareMoves(rules *GameRules, board Board, toMove PieceColor, first, second Move) (float64, error) {
	if !rules.ValidateMove(board, first, toMove) {
		return 0, fmt.Errorf("first move %s is not legal", first)
	}
	if !rules.ValidateMove(board, second, toMove) {
		return 0, fmt.Errorf("second move %s is not legal", second)
	}
	scores := a.GetTopMoves(rules, board, toMove, len(rules.FindValidMoves(board, toMove)))
	var firstScore, secondScore float64
	var foundFirst, foundSecond bool
	for _, ms := range scores {
		if ms.Move.Equals(first) {
			firstScore = ms.Score
			foundFirst = true
		}
		if ms.Move.Equals(second) {
			secondScore = ms.Score
			foundSecond = true
		}
	}
	if !foundFirst || !foundSecond {
		return 0, fmt.Errorf("search did not score both moves")
	}
	return firstScore - secondScore, nil
}

// Opening book and endgame database hooks. Neither table ships yet;
// both report a miss so search always runs.

func (a *AIPlayer) ProbeOpeningBook(board Board, toMove PieceColor) (Move, bool) {
	return Move{}, false
}

func (a *AIPlayer) ProbeEndgameDatabase(board Board, toMove PieceColor) (float64, bool) {
	return 0, false
}

func (a *AIPlayer) logSearchStats(tag string, stats *SearchStats, settings SearchSettings) {
	if stats == nil {
		return
	}
	elapsed := time.Duration(0)
	if !stats.Start.IsZero() {
		elapsed = time.Since(stats.Start)
	}
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	ttHitRate := 0.0
	if stats.TTProbes > 0 {
		ttHitRate = float64(stats.TTHits) * 100.0 / float64(stats.TTProbes)
	}
	parts := make([]string, 0, len(stats.DepthDurations))
	for _, d := range stats.DepthDurations {
		parts = append(parts, fmt.Sprintf("%dms", d.Milliseconds()))
	}
	log.Printf("[ai:%s] t=%dms depth=%d completed=%d nodes=%d nps=%.0f tt_size=%d tt_probe=%d tt_hit=%d tt_hit_rate=%.1f%% tt_store=%d tt_replace=%d cutoffs=%d tt_cutoff=%d depth_times=[%s]",
		tag,
		elapsed.Milliseconds(),
		settings.Depth,
		stats.CompletedDepths,
		stats.Nodes,
		nps,
		a.CacheSize(),
		stats.TTProbes,
		stats.TTHits,
		ttHitRate,
		stats.TTStores,
		stats.TTReplacements,
		stats.Cutoffs,
		stats.TTCutoffs,
		strings.Join(parts, ","),
	)
}
