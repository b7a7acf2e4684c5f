// Package solver provides a context-aware backtracking solver for
// callers that need cancellation and search statistics. The pure
// board.Solve covers everything else.
package solver

import (
	"context"
	"errors"
	"time"

	"sudoku/internal/board"
	"sudoku/internal/ports"
)

// ErrNoSolution is returned when the starting grid is already
// inconsistent or the search space is exhausted.
var ErrNoSolution = errors.New("no solution")

// Backtracking is a straightforward recursive solver.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// Solve runs the same search as board.Solve (first empty cell in
// row-major order, candidate digits ascending) but checks the context
// at every node so a caller can abandon it.
func (s *Backtracking) Solve(ctx context.Context, b board.Board) (board.Board, ports.Stats, error) {
	start := time.Now()
	if !b.IsValid() {
		return board.Board{}, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}

	grid := toGrid(b)
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if fits(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return board.Board{}, st, err
		}
		return board.Board{}, st, ErrNoSolution
	}
	return fromGrid(grid), ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fits reports whether v can be placed at (r, c) without repeating in
// its row, column, or box.
func fits(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func toGrid(b board.Board) (g [9][9]uint8) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if d, ok := b.Cell(r, c).Digit(); ok {
				g[r][c] = d
			}
		}
	}
	return g
}

func fromGrid(g [9][9]uint8) (b board.Board) {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			b.Set(r, c, g[r][c])
		}
	}
	return b
}
