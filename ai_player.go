package main

import (
	"sync"
	"sync/atomic"
	"time"
)

type AIPlayer struct {
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	readyMove  Move
}

func NewAIPlayer() *AIPlayer {
	return &AIPlayer{}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

// ChooseMove runs a full fixed-depth search and returns the selected move.
// When the side to move has nothing to play it returns the pass without
// entering the search.
func (a *AIPlayer) ChooseMove(state GameState, rules Rules) Move {
	config := GetConfig()
	if !rules.CanMove(state, state.ToMove) {
		return PassMove()
	}
	stats := &SearchStats{Start: time.Now()}
	search := &aiSearch{rules: rules, stats: stats}
	sense := 1
	if state.ToMove == PlayerBlue {
		sense = -1
	}
	score := search.minMax(state.Clone(), config.AiDepth, true, sense, -scoreInfinity, scoreInfinity)
	move := search.bestMove
	if !search.haveBest {
		move = PassMove()
	}
	move.Depth = config.AiDepth
	if config.AiLogSearchStats {
		logSearchStats(stats, config.AiDepth, move, score)
	}
	return move
}

// StartThinking computes the move on a worker goroutine so the game loop
// stays responsive; the search itself is synchronous.
func (a *AIPlayer) StartThinking(state GameState, rules Rules) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)

	stateCopy := state.Clone()
	done := make(chan struct{})
	a.workerDone = done
	go func() {
		defer close(done)
		move := a.ChooseMove(stateCopy, rules)
		a.moveMutex.Lock()
		a.readyMove = move
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

func (a *AIPlayer) TakeMove() Move {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove
}

func logSearchStats(stats *SearchStats, depth int, move Move, score int) {
	elapsed := time.Duration(0)
	if !stats.Start.IsZero() {
		elapsed = time.Since(stats.Start)
	}
	nps := 0.0
	if elapsed > 0 {
		nps = float64(stats.Nodes) / elapsed.Seconds()
	}
	logger.Infow("search finished",
		"move", move.String(),
		"score", score,
		"depth", depth,
		"nodes", stats.Nodes,
		"cutoffs", stats.Cutoffs,
		"nps", nps,
		"elapsed_ms", elapsed.Milliseconds(),
	)
}
