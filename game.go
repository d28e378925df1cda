package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Game struct {
	settings   GameSettings
	rules      Rules
	state      GameState
	history    MoveHistory
	redPlayer  IPlayer
	bluePlayer IPlayer
	id         string
	turnStart  time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.id = uuid.NewString()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
		logger.Infow("game started",
			"game_id", g.id,
			"red", playerTypeLabel(g.settings.RedType),
			"blue", playerTypeLabel(g.settings.BlueType),
			"rules", g.rules.String(),
		)
	}
}

func (g *Game) GameID() string {
	return g.id
}

func (g *Game) State() GameState {
	return g.state.Clone()
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

// PlaceBlocks blocks the listed squares (plus reflections) before the first
// move; starting corners stay playable.
func (g *Game) PlaceBlocks(squares []string) error {
	if g.state.Status != StatusNotStarted {
		return fmt.Errorf("blocks can only be placed before the game starts")
	}
	for _, sq := range squares {
		if len(sq) != 2 {
			return fmt.Errorf("malformed square %q", sq)
		}
		if err := g.state.Board.SetBlock(sq[0], sq[1]); err != nil {
			return err
		}
		g.settings.Blocks = append(g.settings.Blocks, sq)
	}
	return nil
}

func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	ok, reason := g.rules.IsLegalDefault(g.state, move)
	if !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""
	mover := g.state.ToMove
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())

	converted := g.rules.ApplyMove(&g.state, move)
	entry := HistoryEntry{
		Move:      move,
		Player:    mover,
		Converted: converted,
		ElapsedMs: elapsedMs,
		IsAi:      isAiMove,
		Depth:     move.Depth,
	}
	g.history.Push(entry)
	logger.Infow("move played",
		"game_id", g.id,
		"player", mover.String(),
		"move", move.String(),
		"converted", len(converted),
		"elapsed_ms", elapsedMs,
		"ai", isAiMove,
	)
	if g.state.Decided() {
		logger.Infow("game over",
			"game_id", g.id,
			"status", statusLabel(g.state.Status),
			"red_pieces", g.state.Board.RedPieces(),
			"blue_pieces", g.state.Board.BluePieces(),
		)
	}
	g.turnStart = time.Now()
	return true, ""
}

// Tick advances the game one step: it passes for a stuck side, applies a
// pending human move, or collects/starts AI work. Returns true when a move
// was applied.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	if !g.rules.CanMove(g.state, g.state.ToMove) {
		// The no-move check lives here, never inside the search.
		applied, _ := g.TryApplyMove(PassMove())
		return applied
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
			move := ai.TakeMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		if !ai.IsThinking() {
			ai.StartThinking(g.state.Clone(), g.rules)
		}
		return false
	}
	move := player.ChooseMove(g.state.Clone(), g.rules)
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

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerRed {
		return g.redPlayer
	}
	return g.bluePlayer
}

func (g *Game) createPlayers() {
	if g.settings.RedType == PlayerHuman {
		g.redPlayer = NewHumanPlayer()
	} else {
		g.redPlayer = NewAIPlayer()
	}
	if g.settings.BlueType == PlayerHuman {
		g.bluePlayer = NewHumanPlayer()
	} else {
		g.bluePlayer = NewAIPlayer()
	}
}

func playerTypeLabel(t PlayerType) string {
	if t == PlayerAI {
		return "AI"
	}
	return "Human"
}

func statusLabel(status GameStatus) string {
	switch status {
	case StatusRunning:
		return "running"
	case StatusRedWon:
		return "red_won"
	case StatusBlueWon:
		return "blue_won"
	case StatusDraw:
		return "draw"
	default:
		return "not_started"
	}
}
