package board

import "fmt"

// Cell holds the content of one grid position: empty, or a digit 1-9.
// The zero value is the empty cell. Cells are immutable; mutation goes
// through Board.Set, which replaces the cell wholesale.
type Cell struct {
	digit uint8
}

// CellOf translates a raw 0-9 input value into a Cell. 0 is the empty
// sentinel on the input side only; stored cells never hold it as a
// digit. Values above 9 are a programming error.
func CellOf(v uint8) Cell {
	if v > 9 {
		panic(fmt.Sprintf("board: digit %d out of range 0-9", v))
	}
	return Cell{digit: v}
}

// Digit returns the cell's digit and whether one is present.
func (c Cell) Digit() (uint8, bool) {
	return c.digit, c.digit != 0
}

// IsEmpty reports whether the cell holds no digit.
func (c Cell) IsEmpty() bool {
	return c.digit == 0
}

// String renders the digit, or the placeholder glyph for an empty cell.
func (c Cell) String() string {
	if c.digit == 0 {
		return "·"
	}
	return string('0' + rune(c.digit))
}
