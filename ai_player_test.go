package main

import (
	"testing"
	"time"
)

func TestChooseMoveReturnsLegalMoveFromOpening(t *testing.T) {
	prev := GetConfig()
	cfg := prev
	cfg.AiDepth = 2
	configStore.Update(cfg)
	defer configStore.Update(prev)

	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning

	ai := NewAIPlayer()
	move := ai.ChooseMove(state, rules)
	if move.Pass {
		t.Fatalf("opening position has moves; AI must not pass")
	}
	if ok, reason := rules.IsLegal(state, move, state.ToMove); !ok {
		t.Fatalf("AI produced illegal move %s: %s", move, reason)
	}
	if move.Depth != 2 {
		t.Fatalf("expected reported depth 2, got %d", move.Depth)
	}
}

func TestChooseMovePassesWithoutSearchingWhenStuck(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := emptyBoardState(settings)
	state.Board.Set('a', '1', CellRed)
	for _, sq := range [][2]byte{
		{'b', '1'}, {'c', '1'},
		{'a', '2'}, {'b', '2'}, {'c', '2'},
		{'a', '3'}, {'b', '3'}, {'c', '3'},
	} {
		state.Board.Set(sq[0], sq[1], CellBlue)
	}
	state.ToMove = PlayerRed

	ai := NewAIPlayer()
	move := ai.ChooseMove(state, rules)
	if !move.Pass {
		t.Fatalf("stuck side must pass, got %s", move)
	}
}

func TestChooseMoveIsDeterministic(t *testing.T) {
	prev := GetConfig()
	cfg := prev
	cfg.AiDepth = 2
	configStore.Update(cfg)
	defer configStore.Update(prev)

	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning

	ai := NewAIPlayer()
	first := ai.ChooseMove(state.Clone(), rules)
	second := ai.ChooseMove(state.Clone(), rules)
	if !first.Equals(second) {
		t.Fatalf("identical positions must yield identical moves: %s vs %s", first, second)
	}
}

func TestStartThinkingDeliversMove(t *testing.T) {
	prev := GetConfig()
	cfg := prev
	cfg.AiDepth = 2
	configStore.Update(cfg)
	defer configStore.Update(prev)

	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning

	ai := NewAIPlayer()
	ai.StartThinking(state, rules)
	deadline := time.Now().Add(5 * time.Second)
	for !ai.HasMoveReady() {
		if time.Now().After(deadline) {
			t.Fatalf("AI did not produce a move in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
	move := ai.TakeMove()
	if ok, reason := rules.IsLegal(state, move, state.ToMove); !ok {
		t.Fatalf("background search produced illegal move %s: %s", move, reason)
	}
	if ai.HasMoveReady() {
		t.Fatalf("TakeMove must clear the ready flag")
	}
}
