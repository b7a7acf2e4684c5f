package validator

import (
	"testing"

	"sudoku/internal/board"
)

func TestValidateCleanBoard(t *testing.T) {
	var b board.Board
	b.Set(0, 0, 5)
	b.Set(4, 4, 5)

	ok, conf := New().Validate(b)
	if !ok || len(conf) != 0 {
		t.Fatalf("Validate = %v, %v; want true with no conflicts", ok, conf)
	}
}

func TestValidateConflicts(t *testing.T) {
	tests := map[string]struct {
		setup func(*board.Board)
		want  board.Coord
	}{
		"row duplicate": {
			setup: func(b *board.Board) {
				b.Set(0, 0, 5)
				b.Set(0, 6, 5)
			},
			want: board.Coord{Row: 0, Col: 6},
		},
		"column duplicate": {
			setup: func(b *board.Board) {
				b.Set(1, 3, 9)
				b.Set(7, 3, 9)
			},
			want: board.Coord{Row: 7, Col: 3},
		},
		"box duplicate across rows": {
			setup: func(b *board.Board) {
				b.Set(0, 0, 2)
				b.Set(2, 2, 2)
			},
			want: board.Coord{Row: 2, Col: 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var b board.Board
			tt.setup(&b)

			ok, conf := New().Validate(b)
			if ok {
				t.Fatal("Validate should report invalid")
			}
			found := false
			for _, c := range conf {
				if c == tt.want {
					found = true
				}
			}
			if !found {
				t.Fatalf("conflicts %v do not include %v", conf, tt.want)
			}
		})
	}
}

func TestValidateAgreesWithIsValid(t *testing.T) {
	var dup board.Board
	dup.Set(3, 3, 1)
	dup.Set(5, 5, 1)

	boards := []board.Board{{}, dup}
	for _, b := range boards {
		ok, _ := New().Validate(b)
		if ok != b.IsValid() {
			t.Fatalf("Validate and IsValid disagree for %v", b)
		}
	}
}
