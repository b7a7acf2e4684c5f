// Package board implements the 9x9 Sudoku grid: cell mutation,
// structural validity checking, and a backtracking solver.
package board

const (
	// Size is the grid dimension.
	Size = 9
	// CellCount is the number of cells on the board.
	CellCount = Size * Size
)

// Coord identifies a cell on the board.
type Coord struct {
	Row int
	Col int
}

// Board is a 9x9 matrix of cells with value semantics: assignment
// copies, and two boards with equal cells are interchangeable.
// The zero value is the empty board.
type Board [Size][Size]Cell

// Set writes value at (row, col): 0 clears the cell, 1-9 sets that
// digit, anything above 9 panics. Keeping coordinates in range is the
// caller's job.
func (b *Board) Set(row, col int, value uint8) {
	b[row][col] = CellOf(value)
}

// SetAt is Set addressed by a linear position 0-80, row-major.
func (b *Board) SetAt(pos int, value uint8) {
	b.Set(pos/Size, pos%Size, value)
}

// Cell returns the cell at (row, col).
func (b Board) Cell(row, col int) Cell {
	return b[row][col]
}

// At returns the cell at the linear position 0-80.
func (b Board) At(pos int) Cell {
	return b[pos/Size][pos%Size]
}

// Row returns a snapshot of row r.
func (b Board) Row(r int) [Size]Cell {
	return b[r]
}

// Column returns a snapshot of column c, gathered by striding across
// rows.
func (b Board) Column(c int) [Size]Cell {
	var col [Size]Cell
	for r := 0; r < Size; r++ {
		col[r] = b[r][c]
	}
	return col
}

// Box returns a snapshot of the 3x3 box with origin (br, bc), both
// multiples of 3, in row-major order.
func (b Board) Box(br, bc int) [Size]Cell {
	var box [Size]Cell
	i := 0
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			box[i] = b[br+dr][bc+dc]
			i++
		}
	}
	return box
}

// unique reports whether no digit occurs twice in the group.
func unique(group [Size]Cell) bool {
	var seen uint
	for _, c := range group {
		d, ok := c.Digit()
		if !ok {
			continue
		}
		bit := uint(1) << d
		if seen&bit != 0 {
			return false
		}
		seen |= bit
	}
	return true
}

// IsValid reports whether no row, column, or box contains a duplicate
// digit. Empty cells never conflict, so a partially filled grid can be
// valid; this is consistency, not completeness.
func (b Board) IsValid() bool {
	for i := 0; i < Size; i++ {
		if !unique(b.Row(i)) || !unique(b.Column(i)) {
			return false
		}
	}
	for br := 0; br < Size; br += 3 {
		for bc := 0; bc < Size; bc += 3 {
			if !unique(b.Box(br, bc)) {
				return false
			}
		}
	}
	return true
}

// Empties returns the number of empty cells.
func (b Board) Empties() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c].IsEmpty() {
				n++
			}
		}
	}
	return n
}
