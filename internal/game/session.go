// Package game holds the interaction state of one Sudoku session,
// independent of any terminal: the working board, the locked givens,
// the cursor, and the active color palette.
package game

import (
	"fmt"

	"sudoku/internal/board"
	"sudoku/internal/ports"
)

// PaletteCount is the number of color themes the UI cycles through.
const PaletteCount = 4

// Session is the state machine behind the UI. One method per user
// intent; the presentation layer only reads and forwards.
type Session struct {
	validator ports.Validator

	brd       board.Board
	givens    [board.Size][board.Size]bool
	row, col  int
	palette   int
	status    string
	conflicts []board.Coord
}

// New starts a session on an empty board.
func New(v ports.Validator) *Session {
	return &Session{validator: v}
}

// NewFromPuzzle starts a session on a parsed puzzle; its non-empty
// cells become locked givens.
func NewFromPuzzle(v ports.Validator, b board.Board) *Session {
	s := &Session{validator: v, brd: b}
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			s.givens[r][c] = !b.Cell(r, c).IsEmpty()
		}
	}
	return s
}

// Board returns a copy of the working board.
func (s *Session) Board() board.Board { return s.brd }

// Cursor returns the selected cell.
func (s *Session) Cursor() (row, col int) { return s.row, s.col }

// IsGiven reports whether (row, col) is a locked puzzle given.
func (s *Session) IsGiven(row, col int) bool { return s.givens[row][col] }

// Cursor movement wraps at the grid edges.

func (s *Session) MoveUp()    { s.row = (s.row + board.Size - 1) % board.Size }
func (s *Session) MoveDown()  { s.row = (s.row + 1) % board.Size }
func (s *Session) MoveLeft()  { s.col = (s.col + board.Size - 1) % board.Size }
func (s *Session) MoveRight() { s.col = (s.col + 1) % board.Size }

// Enter writes digit at the cursor; 0 clears. Givens are immutable.
func (s *Session) Enter(digit uint8) {
	if s.givens[s.row][s.col] {
		s.status = "that cell is a given"
		return
	}
	s.brd.Set(s.row, s.col, digit)
	s.conflicts = nil
	s.status = ""
	if s.Solved() {
		s.status = "solved!"
	}
}

// ClearCell empties the cell at the cursor.
func (s *Session) ClearCell() { s.Enter(0) }

// Check validates the board and remembers conflicts for highlighting.
func (s *Session) Check() (bool, []board.Coord) {
	ok, conf := s.validator.Validate(s.brd)
	s.conflicts = conf
	switch {
	case !ok:
		s.status = fmt.Sprintf("invalid: %d conflicts", len(conf))
	case s.brd.Empties() == 0:
		s.status = "solved!"
	default:
		s.status = fmt.Sprintf("valid so far, %d cells left", s.brd.Empties())
	}
	return ok, conf
}

// Conflicts returns the cells flagged by the last Check.
func (s *Session) Conflicts() []board.Coord { return s.conflicts }

// Solved reports whether the board is complete and valid.
func (s *Session) Solved() bool {
	if s.brd.Empties() != 0 {
		return false
	}
	ok, _ := s.validator.Validate(s.brd)
	return ok
}

// Reset clears every cell that is not a locked given.
func (s *Session) Reset() {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if !s.givens[r][c] {
				s.brd.Set(r, c, 0)
			}
		}
	}
	s.conflicts = nil
	s.status = ""
}

// ApplySolution replaces the working board with a solved one.
func (s *Session) ApplySolution(sol board.Board) {
	s.brd = sol
	s.conflicts = nil
	s.status = "solved!"
}

// CyclePalette moves to the next (+1) or previous (-1) color theme.
func (s *Session) CyclePalette(delta int) {
	s.palette = (s.palette + delta%PaletteCount + PaletteCount) % PaletteCount
}

// Palette returns the active color theme index.
func (s *Session) Palette() int { return s.palette }

// SetStatus lets the UI layer post transient messages ("solving…").
func (s *Session) SetStatus(msg string) { s.status = msg }

// Status returns the current status line.
func (s *Session) Status() string { return s.status }
