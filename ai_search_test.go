package main

import "testing"

// plainMinimax is the reference search: identical value definition but no
// pruning. The alpha-beta engine must always agree with it on the value.
func plainMinimax(rules Rules, state GameState, depth, sense int) int {
	if depth == 0 || state.Decided() {
		return staticScore(state, winningValue+depth)
	}
	best := -scoreInfinity
	if sense == -1 {
		best = scoreInfinity
	}
	for _, move := range possibleMoves(state) {
		if ok, _ := rules.IsLegal(state, move, state.ToMove); !ok {
			continue
		}
		next := state.Clone()
		rules.ApplyMove(&next, move)
		eval := plainMinimax(rules, next, depth-1, -sense)
		if sense == 1 && eval > best {
			best = eval
		}
		if sense == -1 && eval < best {
			best = eval
		}
	}
	return best
}

func loneRedState(settings GameSettings) GameState {
	state := emptyBoardState(settings)
	state.Board.Set('d', '4', CellRed)
	state.ToMove = PlayerRed
	return state
}

func midgameState(settings GameSettings) GameState {
	state := emptyBoardState(settings)
	state.Board.Set('a', '1', CellRed)
	state.Board.Set('b', '2', CellRed)
	state.Board.Set('f', '6', CellBlue)
	state.Board.Set('g', '7', CellBlue)
	state.ToMove = PlayerRed
	return state
}

func TestPossibleMovesPassIsFirst(t *testing.T) {
	settings := DefaultGameSettings()
	for _, state := range []GameState{
		DefaultGameState(settings),
		loneRedState(settings),
		midgameState(settings),
	} {
		moves := possibleMoves(state)
		if len(moves) == 0 || !moves[0].Pass {
			t.Fatalf("candidate list must start with pass, got %v", moves)
		}
	}
}

func TestPossibleMovesNeighborhoodOrder(t *testing.T) {
	settings := DefaultGameSettings()
	state := loneRedState(settings)
	moves := possibleMoves(state)
	// Pass, then the 5x5 neighborhood of d4 row-major, skipping d4 itself.
	if len(moves) != 1+24 {
		t.Fatalf("expected pass plus 24 targets, got %d", len(moves))
	}
	expectedPrefix := []string{"-", "d4-b2", "d4-c2", "d4-d2", "d4-e2", "d4-f2", "d4-b3"}
	for i, want := range expectedPrefix {
		if got := moves[i].String(); got != want {
			t.Fatalf("candidate %d: expected %s, got %s", i, want, got)
		}
	}
	if got := moves[len(moves)-1].String(); got != "d4-f6" {
		t.Fatalf("expected last candidate d4-f6, got %s", got)
	}
}

func TestPossibleMovesSkipsBlockedTargets(t *testing.T) {
	settings := DefaultGameSettings()
	state := loneRedState(settings)
	if err := state.Board.SetBlock('d', '2'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, move := range possibleMoves(state) {
		if !move.Pass && move.String() == "d4-d2" {
			t.Fatalf("blocked square must never be a target")
		}
	}
}

func TestColLetterPanicsOutsidePlayableRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for padding column index")
		}
	}()
	colLetter(1)
}

func TestSearchDepthZeroReturnsStaticScore(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := midgameState(settings)
	search := &aiSearch{rules: rules}
	score := search.minMax(state, 0, true, 1, -scoreInfinity, scoreInfinity)
	if score != staticScore(state, winningValue) {
		t.Fatalf("depth 0 must return the static score, got %d", score)
	}
	if search.haveBest {
		t.Fatalf("depth 0 must not record a move")
	}
}

func TestSearchOnDecidedTieStopsImmediately(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := midgameState(settings)
	state.Status = StatusDraw
	stats := &SearchStats{}
	search := &aiSearch{rules: rules, stats: stats}
	for depth := 0; depth <= 3; depth++ {
		stats.Nodes = 0
		score := search.minMax(state.Clone(), depth, true, 1, -scoreInfinity, scoreInfinity)
		if score != 0 {
			t.Fatalf("tie at depth %d must score 0, got %d", depth, score)
		}
		if search.haveBest {
			t.Fatalf("tie must not record a move")
		}
		if stats.Nodes != 1 {
			t.Fatalf("tie must not expand children, visited %d nodes", stats.Nodes)
		}
	}
}

func TestPruningNeverChangesRootValue(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	cases := []struct {
		state GameState
		depth int
		sense int
	}{
		{loneRedState(settings), 2, 1},
		{midgameState(settings), 2, 1},
		{midgameState(settings), 3, 1},
	}
	blueToMove := midgameState(settings)
	blueToMove.ToMove = PlayerBlue
	cases = append(cases, struct {
		state GameState
		depth int
		sense int
	}{blueToMove, 2, -1})

	for i, tc := range cases {
		stats := &SearchStats{}
		search := &aiSearch{rules: rules, stats: stats}
		pruned := search.minMax(tc.state.Clone(), tc.depth, true, tc.sense, -scoreInfinity, scoreInfinity)
		plain := plainMinimax(rules, tc.state.Clone(), tc.depth, tc.sense)
		if pruned != plain {
			t.Fatalf("case %d: pruned score %d differs from plain minimax %d", i, pruned, plain)
		}
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := midgameState(settings)

	first := &aiSearch{rules: rules}
	firstScore := first.minMax(state.Clone(), 3, true, 1, -scoreInfinity, scoreInfinity)
	second := &aiSearch{rules: rules}
	secondScore := second.minMax(state.Clone(), 3, true, 1, -scoreInfinity, scoreInfinity)
	if firstScore != secondScore {
		t.Fatalf("scores differ across runs: %d vs %d", firstScore, secondScore)
	}
	if !first.bestMove.Equals(second.bestMove) {
		t.Fatalf("moves differ across runs: %s vs %s", first.bestMove, second.bestMove)
	}
}

func TestDepthOneLoneRedChoosesEarliestClone(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := loneRedState(settings)

	search := &aiSearch{rules: rules}
	score := search.minMax(state.Clone(), 1, true, 1, -scoreInfinity, scoreInfinity)
	if !search.haveBest {
		t.Fatalf("expected a recorded move")
	}
	move := search.bestMove
	if !move.IsClone() {
		t.Fatalf("a clone strictly beats any jump here, got %s", move)
	}
	// All clones score the same; first-found-wins tie-breaking keeps the
	// earliest one in generator order.
	if move.String() != "d4-c3" {
		t.Fatalf("expected earliest clone d4-c3, got %s", move)
	}
	if score != 2 {
		t.Fatalf("expected material score 2 after cloning, got %d", score)
	}
}

func TestStuckSideSearchRecordsPass(t *testing.T) {
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

	search := &aiSearch{rules: rules}
	search.minMax(state.Clone(), 2, true, 1, -scoreInfinity, scoreInfinity)
	if !search.haveBest || !search.bestMove.Pass {
		t.Fatalf("stuck side must record pass, got %v", search.bestMove)
	}
}

func TestPruningCutsNodesOnWiderSearches(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := midgameState(settings)

	prunedStats := &SearchStats{}
	search := &aiSearch{rules: rules, stats: prunedStats}
	search.minMax(state.Clone(), 3, true, 1, -scoreInfinity, scoreInfinity)
	if prunedStats.Cutoffs == 0 {
		t.Fatalf("expected at least one cutoff at depth 3")
	}
}
