package visualizer

import (
	"fmt"
	"strings"

	"github.com/dacci/sudoku-solver/internal/types"
)

// Visualizer renders a board with box-drawn 3x3 block borders.
type Visualizer struct {
	board *types.Board
}

func NewVisualizer(board *types.Board) *Visualizer {
	return &Visualizer{board: board}
}

// Render returns the bordered grid as a string, undetermined cells
// shown as "·".
func (v *Visualizer) Render() string {
	var sb strings.Builder

	v.writeBorder(&sb, "┌", "┬", "┐")
	for r := 0; r < types.Size; r++ {
		sb.WriteString("│ ")
		for c := 0; c < types.Size; c++ {
			cell := v.board[r*types.Size+c]
			if cell.Solved() {
				fmt.Fprintf(&sb, "%d ", cell.Value)
			} else {
				sb.WriteString("· ")
			}
			if (c+1)%3 == 0 && c < types.Size-1 {
				sb.WriteString("│ ")
			}
		}
		sb.WriteString("│\n")

		if (r+1)%3 == 0 && r < types.Size-1 {
			v.writeBorder(&sb, "├", "┼", "┤")
		}
	}
	v.writeBorder(&sb, "└", "┴", "┘")

	return sb.String()
}

func (v *Visualizer) writeBorder(sb *strings.Builder, left, mid, right string) {
	segment := strings.Repeat("─", 7)
	sb.WriteString(left + segment + mid + segment + mid + segment + right + "\n")
}

// Print writes the rendered grid to standard output.
func (v *Visualizer) Print() {
	fmt.Print(v.Render())
}
