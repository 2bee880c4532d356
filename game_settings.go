package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	Variant    string     `json:"variant"`
	RedType    PlayerType `json:"-"`
	BlackType  PlayerType `json:"-"`
	RedStarts  bool       `json:"red_starts"`
	Difficulty string     `json:"difficulty"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		Variant:    GetConfig().DefaultVariant,
		RedType:    PlayerHuman,
		BlackType:  PlayerAI,
		RedStarts:  true,
		Difficulty: GetConfig().AiDifficulty,
	}
}
