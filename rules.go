package main

import "fmt"

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

func (r Rules) IsLegal(state GameState, move Move, player PlayerColor) (bool, string) {
	if move.Pass {
		if r.CanMove(state, player) {
			return false, "pass with moves available"
		}
		return true, ""
	}
	if state.Board.AtColRow(move.C0, move.R0) != CellFromPlayer(player) {
		return false, "source is not your piece"
	}
	if state.Board.AtColRow(move.C1, move.R1) != CellEmpty {
		return false, "destination not empty"
	}
	if !move.IsClone() && !move.IsJump() {
		return false, "destination out of reach"
	}
	return true, ""
}

func (r Rules) IsLegalDefault(state GameState, move Move) (bool, string) {
	return r.IsLegal(state, move, state.ToMove)
}

// CanMove reports whether player has any clone or jump available.
func (r Rules) CanMove(state GameState, player PlayerColor) bool {
	own := CellFromPlayer(player)
	for sq := 0; sq < extendedSize; sq++ {
		if state.Board.At(sq) != own {
			continue
		}
		for dr := -2; dr <= 2; dr++ {
			for dc := -2; dc <= 2; dc++ {
				if state.Board.At(sq+dr*extendedSide+dc) == CellEmpty {
					return true
				}
			}
		}
	}
	return false
}

// ApplyMove mutates state with an already-validated move for the side to
// move: places the piece, converts adjacent enemy pieces, maintains the
// consecutive-jump counter, flips the turn and decides the game. It returns
// the squares converted to the mover's color.
func (r Rules) ApplyMove(state *GameState, move Move) []string {
	mover := state.ToMove
	converted := []string(nil)
	if !move.Pass {
		own := CellFromPlayer(mover)
		enemy := CellFromPlayer(otherPlayer(mover))
		dest := move.ToIndex()
		state.Board.setIndex(dest, own)
		if move.IsJump() {
			state.Board.setIndex(move.FromIndex(), CellEmpty)
			state.ConsecutiveJumps++
		} else {
			state.ConsecutiveJumps = 0
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				sq := dest + dr*extendedSide + dc
				if state.Board.At(sq) == enemy {
					state.Board.setIndex(sq, own)
					converted = append(converted, squareName(sq))
				}
			}
		}
	}
	state.LastMove = move
	state.HasLastMove = true
	state.ToMove = otherPlayer(mover)
	r.decideStatus(state)
	return converted
}

// decideStatus marks the game over when neither side can move (board full
// or pieces gone) or when the jump limit is reached. The winner is the side
// with more pieces. A side without pieces simply passes until the board
// locks up, as in the original rules.
func (r Rules) decideStatus(state *GameState) {
	stuck := !r.CanMove(*state, PlayerRed) && !r.CanMove(*state, PlayerBlue)
	if !stuck && state.ConsecutiveJumps < r.settings.JumpLimit {
		return
	}
	red := state.Board.RedPieces()
	blue := state.Board.BluePieces()
	switch {
	case red > blue:
		state.Status = StatusRedWon
	case blue > red:
		state.Status = StatusBlueWon
	default:
		state.Status = StatusDraw
	}
}

func (r Rules) JumpLimit() int {
	return r.settings.JumpLimit
}

func squareName(sq int) string {
	return string([]byte{colLetter(sq % extendedSide), rowDigit(sq)})
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{jump_limit=%d}", r.settings.JumpLimit)
}
