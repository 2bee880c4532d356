package main

import (
	"log"
	"time"
)

type Game struct {
	settings    GameSettings
	rules       *GameRules
	state       GameState
	history     MoveHistory
	redPlayer   IPlayer
	blackPlayer IPlayer
	turnStart   time.Time
}

func NewGame(settings GameSettings) (Game, error) {
	g := Game{}
	if err := g.Reset(settings); err != nil {
		return Game{}, err
	}
	return g, nil
}

func (g *Game) Reset(settings GameSettings) error {
	rules, err := NewGameRules(settings.Variant)
	if err != nil {
		return err
	}
	g.stopAIPlayers()
	g.settings = settings
	g.rules = rules
	g.state.Reset(settings, rules)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
	g.logMatchup()
	return nil
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Rules() *GameRules {
	return g.rules
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove validates and applies one move for the side to move,
// updates the draw counters and decides the game if it ended. The
// returned string explains a rejection.
func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	if !g.rules.ValidateMove(g.state.Board, move, g.state.ToMove) {
		g.state.LastMessage = "Illegal move: " + move.String()
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	mover := g.state.ToMove

	movedPiece := g.state.Board.AtPos(move.From)
	next := g.rules.MakeMove(g.state.Board, move)
	promoted := !movedPiece.IsKing() && next.AtPos(move.To).IsKing()

	opponent := otherColor(mover)
	g.state.Board = next
	g.state.ToMove = opponent
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.DrawState = g.state.DrawState.Update(next, opponent, move.IsCapture(), promoted)

	g.history.Push(HistoryEntry{
		Move:          move,
		Player:        mover,
		CapturedCount: len(move.Captures),
		Promoted:      promoted,
		ElapsedMs:     elapsedMs,
		IsAi:          isAiMove,
	})
	g.logMovePlayed(move, mover, elapsedMs, isAiMove)

	if outcome := g.rules.CheckWinner(next, opponent, &g.state.DrawState); outcome != nil {
		g.finish(outcome)
		return true, ""
	}
	g.turnStart = time.Now()
	return true, ""
}

func (g *Game) finish(outcome *GameOutcome) {
	g.state.EndReason = outcome.Reason
	if outcome.Draw {
		g.state.Status = StatusDraw
		log.Printf("[backend] game drawn: %s", outcome.Explanation)
		return
	}
	if outcome.Winner == ColorRed {
		g.state.Status = StatusRedWon
	} else {
		g.state.Status = StatusBlackWon
	}
	log.Printf("[backend] %s wins: %s", outcome.Winner, outcome.Explanation)
}

// Tick advances the game by at most one move: a pending human move is
// applied, an idle AI starts thinking, a finished AI search is taken.
// Returns true when a move was applied.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		return false
	}
	ai, ok := player.(*AIPlayer)
	if ok {
		if ai.HasMoveReady() {
			move, hasMove := ai.TakeMove()
			if !hasMove {
				// No legal move for the AI; the rules call this
				// position decided, refresh the status.
				if outcome := g.rules.CheckWinner(g.state.Board, g.state.ToMove, &g.state.DrawState); outcome != nil {
					g.finish(outcome)
				}
				return false
			}
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		if !ai.IsThinking() {
			ai.StartThinking(g.state.Clone(), g.rules)
		}
		return false
	}
	move, hasMove := player.ChooseMove(g.state.Clone(), g.rules)
	if !hasMove {
		return false
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	return ok && ai.IsThinking()
}

func (g *Game) ValidMoves() []Move {
	if g.state.Status != StatusRunning {
		return nil
	}
	return g.rules.FindValidMoves(g.state.Board, g.state.ToMove)
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PieceColor) IPlayer {
	if color == ColorRed {
		return g.redPlayer
	}
	return g.blackPlayer
}

func (g *Game) createPlayers() {
	if g.settings.RedType == PlayerHuman {
		g.redPlayer = NewHumanPlayer()
	} else {
		ai := NewAIPlayer()
		ai.SetDifficultyOverride(g.settings.Difficulty)
		g.redPlayer = ai
	}
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		ai := NewAIPlayer()
		ai.SetDifficultyOverride(g.settings.Difficulty)
		g.blackPlayer = ai
	}
}

func (g *Game) stopAIPlayers() {
	if ai, ok := g.redPlayer.(*AIPlayer); ok {
		ai.Stop()
	}
	if ai, ok := g.blackPlayer.(*AIPlayer); ok {
		ai.Stop()
	}
}

func (g *Game) logMatchup() {
	label := func(t PlayerType) string {
		if t == PlayerAI {
			return "AI"
		}
		return "Human"
	}
	log.Printf("[backend] %s: Red (%s) vs Black (%s)", g.settings.Variant, label(g.settings.RedType), label(g.settings.BlackType))
}

func (g *Game) logMovePlayed(move Move, mover PieceColor, elapsedMs float64, isAiMove bool) {
	tag := "human"
	if isAiMove {
		tag = "ai"
	}
	log.Printf("[backend] %s (%s) played %s in %.0fms", mover, tag, move, elapsedMs)
}
