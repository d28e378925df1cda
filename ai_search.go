package main

import (
	"fmt"
	"math"
	"time"
)

// winningValue is the base magnitude of a decided position; the search adds
// the remaining depth so wins found sooner outrank equal wins found later.
const (
	winningValue  = math.MaxInt32 - 20
	scoreInfinity = math.MaxInt32
)

type SearchStats struct {
	Start   time.Time
	Nodes   int
	Cutoffs int
}

type aiSearch struct {
	rules    Rules
	stats    *SearchStats
	bestMove Move
	haveBest bool
}

// colLetter converts an extended-grid column index to its playable column
// letter. Only columns 2..8 exist on the playable grid; anything else is an
// internal invariant failure.
func colLetter(mod int) byte {
	if mod < 2 || mod > 8 {
		panic(fmt.Sprintf("column index %d outside playable grid", mod))
	}
	return byte('a' + mod - 2)
}

func rowDigit(sq int) byte {
	return byte('0' + sq/extendedSide - 1)
}

// possibleMoves lists candidate moves for the side to move: the pass first,
// then for every owned piece in increasing index order every empty square of
// its 5x5 neighborhood in row-major order. Candidates are only screened for
// an empty target; the caller filters with Rules.IsLegal before applying.
// Blocked padding cells are never empty, so off-grid targets drop out here.
func possibleMoves(state GameState) []Move {
	moves := []Move{PassMove()}
	own := CellFromPlayer(state.ToMove)
	for sq := 0; sq < extendedSize; sq++ {
		if state.Board.At(sq) != own {
			continue
		}
		for i := sq - extendedSide*2; i <= sq+extendedSide*2; i += extendedSide {
			for j := i - 2; j <= i+2; j++ {
				if state.Board.At(j) == CellEmpty {
					moves = append(moves, Move{
						C0: colLetter(sq % extendedSide),
						R0: rowDigit(sq),
						C1: colLetter(j % extendedSide),
						R1: rowDigit(j),
					})
				}
			}
		}
	}
	return moves
}

// minMax searches to depth and returns the position value, recording the
// best root move iff saveMove. sense is +1 at maximizing (red) nodes and -1
// at minimizing (blue) nodes; both senses thread the same alpha/beta pair
// through, narrowing it only when a strictly better score is found. Ties
// keep the earliest candidate in generator order.
func (s *aiSearch) minMax(state GameState, depth int, saveMove bool, sense int, alpha, beta int) int {
	if s.stats != nil {
		s.stats.Nodes++
	}
	if depth == 0 || state.Decided() {
		return staticScore(state, winningValue+depth)
	}
	best := PassMove()
	haveBest := false
	var bestScore int
	candidates := possibleMoves(state)
	if sense == 1 {
		bestScore = -scoreInfinity
		for _, move := range candidates {
			if ok, _ := s.rules.IsLegal(state, move, state.ToMove); !ok {
				continue
			}
			next := state.Clone()
			s.rules.ApplyMove(&next, move)
			eval := s.minMax(next, depth-1, false, -1, alpha, beta)
			if eval > bestScore {
				best = move
				haveBest = true
				bestScore = eval
				if eval > alpha {
					alpha = eval
				}
			}
			if beta <= alpha {
				if s.stats != nil {
					s.stats.Cutoffs++
				}
				break
			}
		}
	} else {
		bestScore = scoreInfinity
		for _, move := range candidates {
			if ok, _ := s.rules.IsLegal(state, move, state.ToMove); !ok {
				continue
			}
			next := state.Clone()
			s.rules.ApplyMove(&next, move)
			eval := s.minMax(next, depth-1, false, 1, alpha, beta)
			if eval < bestScore {
				best = move
				haveBest = true
				bestScore = eval
				if eval < beta {
					beta = eval
				}
			}
			if beta <= alpha {
				if s.stats != nil {
					s.stats.Cutoffs++
				}
				break
			}
		}
	}
	if saveMove {
		s.bestMove = best
		s.haveBest = haveBest
	}
	return bestScore
}
