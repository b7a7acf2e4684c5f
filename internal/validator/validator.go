package validator

import "sudoku/internal/board"

// Fast checks rows, columns, and boxes with one bitmask pass each.
type Fast struct{}

func New() *Fast { return &Fast{} }

// Validate reports structural validity together with the coordinates of
// every cell that repeats a digit already seen in its row, column, or
// box, so a UI can highlight them. Empty cells never conflict.
func (v *Fast) Validate(b board.Board) (bool, []board.Coord) {
	conf := make([]board.Coord, 0, 8)
	// rows
	for r := 0; r < board.Size; r++ {
		m := 0
		for c := 0; c < board.Size; c++ {
			val, ok := b.Cell(r, c).Digit()
			if !ok {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, board.Coord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < board.Size; c++ {
		m := 0
		for r := 0; r < board.Size; r++ {
			val, ok := b.Cell(r, c).Digit()
			if !ok {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, board.Coord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val, ok := b.Cell(r, c).Digit()
					if !ok {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, board.Coord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf
}
