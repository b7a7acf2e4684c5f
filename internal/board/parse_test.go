package board

import "testing"

func TestParse(t *testing.T) {
	grid := "53..7...." +
		"6..195..." +
		".98....6." +
		"8...6...3" +
		"4..8.3..1" +
		"7...2...6" +
		".6....28." +
		"...419..5" +
		"....8..79"

	b, err := Parse(grid)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b != sampleBoard() {
		t.Fatal("parsed board does not match the sample fixture")
	}
}

func TestParseMultiline(t *testing.T) {
	grid := "530070000\n600195000\n098000060\n800060003\n400803001\n" +
		"700020006\n060000280\n000419005\n000080079\n"

	b, err := Parse(grid)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b != sampleBoard() {
		t.Fatal("parsed board does not match the sample fixture")
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"too short":     "53..7....",
		"too long":      gridOfDots(82),
		"bad character": gridOfDots(40) + "x" + gridOfDots(40),
	}

	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(in); err == nil {
				t.Fatal("Parse should fail")
			}
		})
	}
}

func gridOfDots(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = '.'
	}
	return string(s)
}
