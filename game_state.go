package main

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusRedWon
	StatusBlackWon
	StatusDraw
)

func (s GameStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusRunning:
		return "running"
	case StatusRedWon:
		return "red_won"
	case StatusBlackWon:
		return "black_won"
	case StatusDraw:
		return "draw"
	}
	return "unknown"
}

type GameState struct {
	Board       Board
	ToMove      PieceColor
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	DrawState   DrawState
	EndReason   string
	LastMessage string
}

func DefaultGameState(settings GameSettings, rules *GameRules) GameState {
	state := GameState{}
	state.Reset(settings, rules)
	return state
}

func (s *GameState) Reset(settings GameSettings, rules *GameRules) {
	s.Board = rules.CreateInitialBoard()
	if settings.RedStarts {
		s.ToMove = ColorRed
	} else {
		s.ToMove = ColorBlack
	}
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = Move{}
	s.DrawState = NewDrawState()
	s.EndReason = ""
	s.LastMessage = ""
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	return clone
}
