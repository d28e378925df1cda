package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	RedType   PlayerType `json:"-"`
	BlueType  PlayerType `json:"-"`
	RedStarts bool       `json:"red_starts"`
	JumpLimit int        `json:"jump_limit"`
	Blocks    []string   `json:"blocks"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		RedType:   PlayerHuman,
		BlueType:  PlayerAI,
		RedStarts: true,
		JumpLimit: 25,
	}
}
