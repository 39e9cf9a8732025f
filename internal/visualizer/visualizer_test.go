package visualizer

import (
	"strings"
	"testing"

	"github.com/dacci/sudoku-solver/internal/types"
)

func TestRender(t *testing.T) {
	digits := "530070000" + "600195000" + "098000060" +
		"800060003" + "400803001" + "700020006" +
		"060000280" + "000419005" + "000080079"

	b, err := types.FromReader(strings.NewReader(digits))
	if err != nil {
		t.Fatalf("bad board: %v", err)
	}

	out := NewVisualizer(b).Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 13 {
		t.Fatalf("got %d lines, want 13 (9 rows + 4 borders)", len(lines))
	}

	if lines[0] != "┌───────┬───────┬───────┐" {
		t.Errorf("top border = %q", lines[0])
	}
	if lines[1] != "│ 5 3 · │ · 7 · │ · · · │" {
		t.Errorf("row 0 = %q", lines[1])
	}
	if lines[4] != "├───────┼───────┼───────┤" {
		t.Errorf("block border = %q", lines[4])
	}
	if lines[12] != "└───────┴───────┴───────┘" {
		t.Errorf("bottom border = %q", lines[12])
	}
}
