package tui

import (
	"testing"

	tuikit "github.com/grindlemire/go-tui"

	"sudoku/internal/board"
	"sudoku/internal/game"
	"sudoku/internal/validator"
)

func TestPaletteCountMatchesSession(t *testing.T) {
	if len(palettes) != game.PaletteCount {
		t.Fatalf("len(palettes) = %d, game.PaletteCount = %d", len(palettes), game.PaletteCount)
	}
}

func TestViewShowsDigitsAndPlaceholders(t *testing.T) {
	var b board.Board
	b.Set(0, 0, 5)
	s := game.NewFromPuzzle(validator.New(), b)

	v := newBoardView(80, 24)
	v.update(s)

	if got := v.cells[0][0].Text(); got != "5" {
		t.Fatalf("cell (0,0) text = %q, want %q", got, "5")
	}
	if got := v.cells[0][1].Text(); got != "·" {
		t.Fatalf("cell (0,1) text = %q, want %q", got, "·")
	}
}

func TestViewTracksMutation(t *testing.T) {
	s := game.New(validator.New())
	v := newBoardView(80, 24)

	s.MoveDown()
	s.MoveRight()
	s.Enter(9)
	v.update(s)

	if got := v.cells[1][1].Text(); got != "9" {
		t.Fatalf("cell (1,1) text = %q, want %q", got, "9")
	}
}

func TestViewStylesCursorAndGivens(t *testing.T) {
	var b board.Board
	b.Set(0, 1, 7)
	s := game.NewFromPuzzle(validator.New(), b)

	v := newBoardView(80, 24)
	v.update(s)

	cursor := v.cells[0][0].TextStyle()
	if !cursor.HasAttr(tuikit.AttrReverse) {
		t.Fatal("cursor cell should use the reverse attribute")
	}

	given := v.cells[0][1].TextStyle()
	if !given.Fg.Equal(palettes[s.Palette()].given) {
		t.Fatal("given cell should use the palette's given color")
	}

	plain := v.cells[5][5].TextStyle()
	if !plain.Fg.Equal(palettes[s.Palette()].digit) {
		t.Fatal("ordinary cell should use the palette's digit color")
	}
}

func TestViewStatusFollowsCheck(t *testing.T) {
	s := game.New(validator.New())
	s.Enter(4)
	s.MoveRight()
	s.Enter(4)
	s.Check()

	v := newBoardView(80, 24)
	v.update(s)

	if v.status.Text() == "" {
		t.Fatal("status element should carry the check result")
	}
	conflicted := v.cells[0][1].TextStyle()
	if !conflicted.Fg.Equal(palettes[s.Palette()].conflict) {
		t.Fatal("conflicting cell should use the palette's conflict color")
	}
}
