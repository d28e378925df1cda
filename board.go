package main

import "fmt"

type Cell int

const (
	CellEmpty Cell = iota
	CellRed
	CellBlue
	CellBlocked
)

// The playable 7x7 grid sits inside an 11x11 extended grid with two rings of
// blocked padding cells, so every 5x5 jump neighborhood stays in bounds.
const (
	boardSide    = 7
	extendedSide = boardSide + 4
	extendedSize = extendedSide * extendedSide
)

type Board struct {
	cells []Cell
}

func NewBoard() Board {
	b := Board{}
	b.Reset()
	return b
}

func (b *Board) Reset() {
	b.cells = make([]Cell, extendedSize)
	for i := range b.cells {
		b.cells[i] = CellBlocked
	}
	for r := byte('1'); r <= '7'; r++ {
		for c := byte('a'); c <= 'g'; c++ {
			b.cells[index(c, r)] = CellEmpty
		}
	}
	b.Set('a', '1', CellRed)
	b.Set('g', '7', CellRed)
	b.Set('a', '7', CellBlue)
	b.Set('g', '1', CellBlue)
}

// index maps playable coordinates to the extended linear index.
func index(col, row byte) int {
	return int(col-'a'+2) + int(row-'1'+2)*extendedSide
}

func (b Board) At(sq int) Cell {
	return b.cells[sq]
}

func (b Board) AtColRow(col, row byte) Cell {
	return b.cells[index(col, row)]
}

func (b *Board) Set(col, row byte, value Cell) {
	b.cells[index(col, row)] = value
}

func (b *Board) setIndex(sq int, value Cell) {
	b.cells[sq] = value
}

func inPlayableRange(col, row byte) bool {
	return col >= 'a' && col <= 'g' && row >= '1' && row <= '7'
}

func (b Board) PieceCount(cell Cell) int {
	count := 0
	for _, c := range b.cells {
		if c == cell {
			count++
		}
	}
	return count
}

func (b Board) RedPieces() int {
	return b.PieceCount(CellRed)
}

func (b Board) BluePieces() int {
	return b.PieceCount(CellBlue)
}

func (b Board) Clone() Board {
	clone := Board{}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

// SetBlock blocks a square together with its reflections across both axes,
// keeping block layouts symmetric as in over-the-board Ataxx.
func (b *Board) SetBlock(col, row byte) error {
	if !inPlayableRange(col, row) {
		return fmt.Errorf("square %c%c out of range", col, row)
	}
	mirrorCol := byte('a' + 'g' - col)
	mirrorRow := byte('1' + '7' - row)
	squares := [4][2]byte{
		{col, row},
		{mirrorCol, row},
		{col, mirrorRow},
		{mirrorCol, mirrorRow},
	}
	for _, sq := range squares {
		if b.AtColRow(sq[0], sq[1]) == CellRed || b.AtColRow(sq[0], sq[1]) == CellBlue {
			return fmt.Errorf("square %c%c is occupied", sq[0], sq[1])
		}
	}
	for _, sq := range squares {
		b.Set(sq[0], sq[1], CellBlocked)
	}
	return nil
}

func (c Cell) String() string {
	switch c {
	case CellRed:
		return "Red"
	case CellBlue:
		return "Blue"
	case CellBlocked:
		return "Blocked"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerRed {
		return CellRed
	}
	return CellBlue
}
