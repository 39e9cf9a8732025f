package types

import (
	"errors"
	"strings"
	"testing"
)

const puzzle = "530070000" +
	"600195000" +
	"098000060" +
	"800060003" +
	"400803001" +
	"700020006" +
	"060000280" +
	"000419005" +
	"000080079"

func TestFromReader(t *testing.T) {
	// Digits spread over lines with comments and stray bytes in between.
	input := "# classic puzzle\n" +
		"530 070 000\n600 195 000\n098 000 060\n" +
		"800 060 003\n400 803 001\n700 020 006\n" +
		"060 000 280\n000 419 005\n000 080 079\n"

	b, err := FromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	if got := b[0].Value; got != 5 {
		t.Errorf("cell 0 = %d, want 5", got)
	}
	if b[2].Solved() {
		t.Errorf("cell 2 should be undetermined")
	}
	if got := b[2].Candidates; got != AllCandidates {
		t.Errorf("cell 2 candidates = %b, want all", got)
	}
	if got := b[80].Value; got != 9 {
		t.Errorf("cell 80 = %d, want 9", got)
	}
}

func TestFromReaderBadShape(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", puzzle[:80]},
		{"long", puzzle + "1"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromReader(strings.NewReader(tc.input))
			if !errors.Is(err, ErrInvalidData) {
				t.Fatalf("err = %v, want ErrInvalidData", err)
			}
		})
	}
}

func TestBoardString(t *testing.T) {
	b, err := FromReader(strings.NewReader(puzzle))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}
	if lines[0] != "53  7    " {
		t.Errorf("line 0 = %q, want %q", lines[0], "53  7    ")
	}
	if lines[8] != "    8  79" {
		t.Errorf("line 8 = %q, want %q", lines[8], "    8  79")
	}
}

func TestCandidates(t *testing.T) {
	c := AllCandidates
	if c.Count() != 9 {
		t.Fatalf("full set count = %d, want 9", c.Count())
	}

	c.Remove(5)
	c.Remove(5) // removing twice is a no-op
	if c.Has(5) {
		t.Errorf("5 should be removed")
	}
	if c.Count() != 8 {
		t.Errorf("count after removal = %d, want 8", c.Count())
	}

	want := []uint8{1, 2, 3, 4, 6, 7, 8, 9}
	got := c.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
}

func TestValid(t *testing.T) {
	b, err := FromReader(strings.NewReader(puzzle))
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}
	if !b.Valid() {
		t.Errorf("canonical givens should be valid")
	}

	// A second 5 in the first row.
	b[1] = SolvedCell(5)
	if b.Valid() {
		t.Errorf("duplicate value in a row should be invalid")
	}
}

func TestValidBlock(t *testing.T) {
	var b Board
	for i := range b {
		b[i] = Cell{Candidates: AllCandidates}
	}

	// Same value twice inside the top-left block, different row and
	// column: only the block scan can catch it.
	b[0] = SolvedCell(7)  // (0,0)
	b[10] = SolvedCell(7) // (1,1)
	if b.Valid() {
		t.Errorf("duplicate value in a block should be invalid")
	}
}

func TestPeerDerivations(t *testing.T) {
	// index 40 is the centre cell (4,4).
	if RowOf(40) != 4 || ColOf(40) != 4 {
		t.Errorf("RowOf/ColOf(40) = %d,%d, want 4,4", RowOf(40), ColOf(40))
	}
	r, c := BlockOrigin(40)
	if r != 3 || c != 3 {
		t.Errorf("BlockOrigin(40) = %d,%d, want 3,3", r, c)
	}
	r, c = BlockOrigin(80)
	if r != 6 || c != 6 {
		t.Errorf("BlockOrigin(80) = %d,%d, want 6,6", r, c)
	}
}
