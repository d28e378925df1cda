package main

// staticScore values a position from red's perspective. Decided positions
// are worth the full winning magnitude (positive for red, negative for
// blue, zero for a tie); anything else is the raw piece-count difference.
func staticScore(state GameState, winningValue int) int {
	switch state.Status {
	case StatusRedWon:
		return winningValue
	case StatusBlueWon:
		return -winningValue
	case StatusDraw:
		return 0
	}
	return state.Board.RedPieces() - state.Board.BluePieces()
}
