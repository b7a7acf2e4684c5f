package tui

import (
	"strings"

	tui "github.com/grindlemire/go-tui"

	"sudoku/internal/board"
	"sudoku/internal/game"
)

const (
	cellWidth = 3
	// 9 cells plus the two box separators per row
	gridWidth = board.Size*cellWidth + 2
)

// boardView owns the element tree for one session. It holds on to the
// leaf elements so update can restyle them in place; nothing here
// touches the terminal, which keeps the view testable.
type boardView struct {
	root   *tui.Element
	frame  *tui.Element
	cells  [board.Size][board.Size]*tui.Element
	seps   []*tui.Element
	status *tui.Element
}

func newBoardView(width, height int) *boardView {
	v := &boardView{}

	v.frame = tui.New(
		tui.WithDirection(tui.Column),
		tui.WithBorder(tui.BorderSingle),
	)
	divider := strings.Repeat("─", board.Size*cellWidth/3)
	for r := 0; r < board.Size; r++ {
		if r == 3 || r == 6 {
			sep := tui.New(
				tui.WithSize(gridWidth, 1),
				tui.WithText(divider+"┼"+divider+"┼"+divider),
			)
			v.seps = append(v.seps, sep)
			v.frame.AddChild(sep)
		}
		row := tui.New(tui.WithDirection(tui.Row))
		for c := 0; c < board.Size; c++ {
			if c == 3 || c == 6 {
				sep := tui.New(tui.WithSize(1, 1), tui.WithText("│"))
				v.seps = append(v.seps, sep)
				row.AddChild(sep)
			}
			cell := tui.New(
				tui.WithSize(cellWidth, 1),
				tui.WithTextAlign(tui.TextAlignCenter),
			)
			v.cells[r][c] = cell
			row.AddChild(cell)
		}
		v.frame.AddChild(row)
	}

	title := tui.New(
		tui.WithText("Sudoku"),
		tui.WithTextStyle(tui.NewStyle().Bold()),
		tui.WithTextAlign(tui.TextAlignCenter),
	)
	v.status = tui.New(
		tui.WithSize(gridWidth+2, 1),
		tui.WithTextAlign(tui.TextAlignCenter),
	)
	footer := tui.New(
		tui.WithDirection(tui.Column),
		tui.WithAlign(tui.AlignCenter),
		tui.WithBorder(tui.BorderDouble),
	)
	footer.AddChild(
		tui.New(tui.WithText("(Esc) quit | (↑↓←→ / hjkl) move | (1-9) set | (0/Backspace) clear")),
		tui.New(tui.WithText("(s) solve | (c) check | (r) reset | (Shift+←/→) cycle palette")),
	)

	v.root = tui.New(
		tui.WithSize(width, height),
		tui.WithDirection(tui.Column),
		tui.WithJustify(tui.JustifyCenter),
		tui.WithAlign(tui.AlignCenter),
		tui.WithGap(1),
	)
	v.root.AddChild(title, v.frame, v.status, footer)
	return v
}

// update pushes the session state into the element tree.
func (v *boardView) update(s *game.Session) {
	p := palettes[s.Palette()]
	curRow, curCol := s.Cursor()
	conflicted := make(map[board.Coord]bool, len(s.Conflicts()))
	for _, c := range s.Conflicts() {
		conflicted[c] = true
	}

	brd := s.Board()
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			el := v.cells[r][c]
			el.SetText(brd.Cell(r, c).String())

			st := tui.NewStyle().Foreground(p.digit)
			if s.IsGiven(r, c) {
				st = tui.NewStyle().Foreground(p.given).Bold()
			}
			if conflicted[board.Coord{Row: r, Col: c}] {
				st = tui.NewStyle().Foreground(p.conflict).Bold()
			}
			if r == curRow && c == curCol {
				st = st.Foreground(p.cursor).Reverse()
			}
			el.SetTextStyle(st)
		}
	}

	frameStyle := tui.NewStyle().Foreground(p.frame)
	v.frame.SetBorderStyle(frameStyle)
	for _, sep := range v.seps {
		sep.SetTextStyle(frameStyle)
	}
	v.status.SetText(s.Status())
	v.status.SetTextStyle(tui.NewStyle().Foreground(p.cursor))
}
