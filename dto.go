package main

import (
	"encoding/json"
	"net/http"
)

type StatusResponse struct {
	GameID          string            `json:"game_id"`
	Settings        GameSettingsDTO   `json:"settings"`
	Board           [][]int           `json:"board"`
	BoardSize       int               `json:"board_size"`
	NextPlayer      string            `json:"next_player"`
	Status          string            `json:"status"`
	EndReason       string            `json:"end_reason"`
	History         []historyEntryDTO `json:"history"`
	AiThinking      bool              `json:"ai_thinking"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	Variant    string `json:"variant"`
	Mode       string `json:"mode"`
	HumanSide  string `json:"human_side"`
	RedStarts  *bool  `json:"red_starts,omitempty"`
	Difficulty string `json:"difficulty"`
}

type historyEntryDTO struct {
	Move          Move    `json:"move"`
	Player        string  `json:"player"`
	CapturedCount int     `json:"captured_count"`
	Promoted      bool    `json:"promoted"`
	ElapsedMs     float64 `json:"elapsed_ms"`
	IsAi          bool    `json:"is_ai"`
}

type movesResponse struct {
	Moves []Move `json:"moves"`
}

type analysisResponse struct {
	Score    float64        `json:"score"`
	TopMoves []moveScoreDTO `json:"top_moves"`
}

type moveScoreDTO struct {
	Move  Move    `json:"move"`
	Score float64 `json:"score"`
	Depth int     `json:"depth"`
}

type variantListResponse struct {
	Variants []string `json:"variants"`
}

type ttCacheStatusResponse struct {
	Count    int     `json:"count"`
	Capacity int     `json:"capacity"`
	Usage    float64 `json:"usage"`
	Full     bool    `json:"full"`
}

func colorToString(color PieceColor) string {
	if color == ColorRed {
		return "red"
	}
	return "black"
}

func colorFromString(raw string) (PieceColor, bool) {
	switch raw {
	case "red":
		return ColorRed, true
	case "black":
		return ColorBlack, true
	}
	return ColorRed, false
}

// boardToSlice flattens the board into row-major ints for JSON: 0 empty,
// 1 red man, 2 red king, 3 black man, 4 black king.
func boardToSlice(board Board) [][]int {
	return board.toGrid()
}

// analyzeRequest is a standalone position to evaluate, outside any game
// session. The board uses the same cell encoding as boardToSlice.
type analyzeRequest struct {
	Variant string  `json:"variant"`
	Board   [][]int `json:"board"`
	ToMove  string  `json:"to_move"`
	Limit   int     `json:"limit"`
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	if dto.Variant != "" {
		settings.Variant = dto.Variant
	}
	if dto.Difficulty != "" {
		settings.Difficulty = dto.Difficulty
	}
	if dto.RedStarts != nil {
		settings.RedStarts = *dto.RedStarts
	}
	switch dto.Mode {
	case "ai_vs_ai":
		settings.RedType = PlayerAI
		settings.BlackType = PlayerAI
	case "human_vs_human":
		settings.RedType = PlayerHuman
		settings.BlackType = PlayerHuman
	case "ai_vs_human":
		if dto.HumanSide == "black" {
			settings.RedType = PlayerAI
			settings.BlackType = PlayerHuman
		} else {
			settings.RedType = PlayerHuman
			settings.BlackType = PlayerAI
		}
	}
	return settings
}

func settingsToDTO(settings GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	humanSide := ""
	switch {
	case settings.RedType == PlayerAI && settings.BlackType == PlayerAI:
		mode = "ai_vs_ai"
	case settings.RedType == PlayerHuman && settings.BlackType == PlayerHuman:
		mode = "human_vs_human"
	case settings.RedType == PlayerHuman:
		humanSide = "red"
	default:
		humanSide = "black"
	}
	redStarts := settings.RedStarts
	return GameSettingsDTO{
		Variant:    settings.Variant,
		Mode:       mode,
		HumanSide:  humanSide,
		RedStarts:  &redStarts,
		Difficulty: settings.Difficulty,
	}
}

func historyEntryToDTO(entry HistoryEntry) historyEntryDTO {
	return historyEntryDTO{
		Move:          entry.Move,
		Player:        colorToString(entry.Player),
		CapturedCount: entry.CapturedCount,
		Promoted:      entry.Promoted,
		ElapsedMs:     entry.ElapsedMs,
		IsAi:          entry.IsAi,
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	result := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryToDTO(entry))
	}
	return result
}

func sessionStatus(session *GameSession) StatusResponse {
	controller := session.Controller
	state := controller.State()
	return StatusResponse{
		GameID:          session.ID,
		Settings:        settingsToDTO(controller.Settings()),
		Board:           boardToSlice(state.Board),
		BoardSize:       state.Board.Size(),
		NextPlayer:      colorToString(state.ToMove),
		Status:          state.Status.String(),
		EndReason:       state.EndReason,
		History:         historyToDTO(controller.History()),
		AiThinking:      controller.AiThinking(),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
