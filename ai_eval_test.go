package main

import "testing"

func TestStaticScoreTerminalMagnitudes(t *testing.T) {
	settings := DefaultGameSettings()
	for depth := 0; depth <= 4; depth++ {
		magnitude := winningValue + depth
		state := DefaultGameState(settings)
		state.Status = StatusRedWon
		if got := staticScore(state, magnitude); got != magnitude {
			t.Fatalf("red win at depth %d: expected %d, got %d", depth, magnitude, got)
		}
		state.Status = StatusBlueWon
		if got := staticScore(state, magnitude); got != -magnitude {
			t.Fatalf("blue win at depth %d: expected %d, got %d", depth, -magnitude, got)
		}
		state.Status = StatusDraw
		if got := staticScore(state, magnitude); got != 0 {
			t.Fatalf("draw at depth %d: expected 0, got %d", depth, got)
		}
	}
}

func TestStaticScoreMaterialDifference(t *testing.T) {
	settings := DefaultGameSettings()
	state := emptyBoardState(settings)
	state.Board.Set('a', '1', CellRed)
	state.Board.Set('b', '1', CellRed)
	state.Board.Set('c', '1', CellRed)
	state.Board.Set('g', '7', CellBlue)
	if got := staticScore(state, winningValue); got != 2 {
		t.Fatalf("expected material score 2, got %d", got)
	}
	state.ToMove = PlayerBlue
	if got := staticScore(state, winningValue); got != 2 {
		t.Fatalf("material score is side-independent, got %d", got)
	}
}
