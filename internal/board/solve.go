package board

// firstEmpty returns the linear position of the first empty cell in
// row-major order. The traversal order is part of the solver contract:
// it keeps the returned solution deterministic.
func (b Board) firstEmpty() (int, bool) {
	for pos := 0; pos < CellCount; pos++ {
		if b.At(pos).IsEmpty() {
			return pos, true
		}
	}
	return 0, false
}

// fits reports whether digit v can be placed at (row, col) without
// repeating in the cell's row, column, or box.
func (b Board) fits(row, col int, v uint8) bool {
	for i := 0; i < Size; i++ {
		if d, ok := b[row][i].Digit(); ok && d == v {
			return false
		}
		if d, ok := b[i][col].Digit(); ok && d == v {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if d, ok := b[br+dr][bc+dc].Digit(); ok && d == v {
				return false
			}
		}
	}
	return true
}

// Solve searches for a completion of the board: an assignment of digits
// to every empty cell that keeps the grid valid. It returns the
// completed board and true, or the zero board and false when no
// completion exists, which includes a board that is invalid to begin
// with. The receiver is never mutated; each branch of the search runs
// on its own copy, so a failed trial leaves no trace.
func (b Board) Solve() (Board, bool) {
	if !b.IsValid() {
		return Board{}, false
	}
	return b.complete()
}

// complete assumes a valid board and recurses on the first empty cell,
// trying digits 1 through 9 in ascending order. The first candidate
// whose branch completes wins.
func (b Board) complete() (Board, bool) {
	pos, ok := b.firstEmpty()
	if !ok {
		return b, true
	}
	row, col := pos/Size, pos%Size
	for v := uint8(1); v <= 9; v++ {
		if !b.fits(row, col, v) {
			continue
		}
		next := b
		next[row][col] = CellOf(v)
		if solved, done := next.complete(); done {
			return solved, true
		}
	}
	return Board{}, false
}

// Solvable reports whether Solve would find a completion, without
// returning it.
func (b Board) Solvable() bool {
	_, ok := b.Solve()
	return ok
}
