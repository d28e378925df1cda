package main

import (
	"encoding/json"
	"fmt"
)

// Move is either the distinguished pass or a source->destination pair in
// column-letter/row-digit notation ('a'..'g', '1'..'7').
type Move struct {
	C0, R0 byte
	C1, R1 byte
	Pass   bool
	Depth  int
}

func PassMove() Move {
	return Move{Pass: true}
}

func NewMove(c0, r0, c1, r1 byte) (Move, error) {
	if !inPlayableRange(c0, r0) || !inPlayableRange(c1, r1) {
		return Move{}, fmt.Errorf("move %c%c-%c%c out of range", c0, r0, c1, r1)
	}
	return Move{C0: c0, R0: r0, C1: c1, R1: r1}, nil
}

func ParseMove(text string) (Move, error) {
	if text == "-" || text == "pass" {
		return PassMove(), nil
	}
	if len(text) == 5 && text[2] == '-' {
		return NewMove(text[0], text[1], text[3], text[4])
	}
	if len(text) == 4 {
		return NewMove(text[0], text[1], text[2], text[3])
	}
	return Move{}, fmt.Errorf("malformed move %q", text)
}

func (m Move) FromIndex() int {
	return index(m.C0, m.R0)
}

func (m Move) ToIndex() int {
	return index(m.C1, m.R1)
}

func (m Move) colDistance() int {
	d := int(m.C1) - int(m.C0)
	if d < 0 {
		d = -d
	}
	return d
}

func (m Move) rowDistance() int {
	d := int(m.R1) - int(m.R0)
	if d < 0 {
		d = -d
	}
	return d
}

// IsClone reports a move to an adjacent square; the source piece stays.
func (m Move) IsClone() bool {
	if m.Pass {
		return false
	}
	dc, dr := m.colDistance(), m.rowDistance()
	return dc <= 1 && dr <= 1 && (dc != 0 || dr != 0)
}

// IsJump reports a move at king-step distance two; the source piece moves.
func (m Move) IsJump() bool {
	if m.Pass {
		return false
	}
	dc, dr := m.colDistance(), m.rowDistance()
	return (dc == 2 || dr == 2) && dc <= 2 && dr <= 2
}

func (m Move) Equals(other Move) bool {
	if m.Pass || other.Pass {
		return m.Pass == other.Pass
	}
	return m.C0 == other.C0 && m.R0 == other.R0 && m.C1 == other.C1 && m.R1 == other.R1
}

func (m Move) String() string {
	if m.Pass {
		return "-"
	}
	return fmt.Sprintf("%c%c-%c%c", m.C0, m.R0, m.C1, m.R1)
}

type moveDTO struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Pass  bool   `json:"pass,omitempty"`
	Depth int    `json:"depth,omitempty"`
}

func (m Move) MarshalJSON() ([]byte, error) {
	dto := moveDTO{Pass: m.Pass, Depth: m.Depth}
	if !m.Pass {
		dto.From = string([]byte{m.C0, m.R0})
		dto.To = string([]byte{m.C1, m.R1})
	}
	return json.Marshal(dto)
}
