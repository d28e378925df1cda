package main

type PlayerColor int

type GameStatus int

const (
	PlayerRed PlayerColor = iota
	PlayerBlue
)

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusRedWon
	StatusBlueWon
	StatusDraw
)

type GameState struct {
	Board            Board
	ToMove           PlayerColor
	Status           GameStatus
	ConsecutiveJumps int
	HasLastMove      bool
	LastMove         Move
	LastMessage      string
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard()
	if settings.RedStarts {
		s.ToMove = PlayerRed
	} else {
		s.ToMove = PlayerBlue
	}
	s.Status = StatusNotStarted
	s.ConsecutiveJumps = 0
	s.HasLastMove = false
	s.LastMove = Move{}
	s.LastMessage = ""
	for _, block := range settings.Blocks {
		if len(block) == 2 {
			_ = s.Board.SetBlock(block[0], block[1])
		}
	}
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	return clone
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerRed {
		return PlayerBlue
	}
	return PlayerRed
}

func (p PlayerColor) String() string {
	if p == PlayerRed {
		return "Red"
	}
	return "Blue"
}

func (s GameState) Decided() bool {
	switch s.Status {
	case StatusRedWon, StatusBlueWon, StatusDraw:
		return true
	}
	return false
}
