package ports

import (
	"context"
	"time"

	"sudoku/internal/board"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver produces a completed board, or an error when no completion
// exists or the context is canceled first.
type Solver interface {
	Solve(ctx context.Context, b board.Board) (board.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box) and reports
// the coordinates of conflicting cells.
type Validator interface {
	Validate(b board.Board) (ok bool, conflicts []board.Coord)
}
