package board

import (
	"fmt"
	"strings"
)

// Parse builds a board from an 81-character grid in row-major order.
// '.' and '0' mean empty, '1'-'9' set a digit; whitespace is skipped so
// grids can span multiple lines. Anything else is an error.
func Parse(s string) (Board, error) {
	var b Board
	pos := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			continue
		case pos >= CellCount:
			return Board{}, fmt.Errorf("grid has more than %d cells", CellCount)
		case ch == '.' || ch == '0':
			// empty cell, already the zero value
		case ch >= '1' && ch <= '9':
			b.SetAt(pos, ch-'0')
		default:
			return Board{}, fmt.Errorf("invalid character %q at cell %d", ch, pos)
		}
		pos++
	}
	if pos != CellCount {
		return Board{}, fmt.Errorf("grid must have %d cells, got %d", CellCount, pos)
	}
	return b, nil
}

// String renders the board as a framed grid, one line per row, with
// "-" marking empty cells.
func (b Board) String() string {
	div := strings.Repeat("-", 4*Size+1)
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		sb.WriteString(div)
		sb.WriteByte('\n')
		for c := 0; c < Size; c++ {
			if d, ok := b[r][c].Digit(); ok {
				fmt.Fprintf(&sb, "| %d ", d)
			} else {
				sb.WriteString("| - ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(div)
	sb.WriteByte('\n')
	return sb.String()
}
