package solver

import "fmt"

// Kind classifies a solve failure for programmatic handling; the
// message on Error stays the human-readable diagnostic.
type Kind int

const (
	// Unsolvable means a cell's candidate set became empty.
	Unsolvable Kind = iota
	// Duplicate means a value collides with a solved peer in the same
	// row, column or block.
	Duplicate
	// Exhausted means every candidate of the branching cell failed.
	Exhausted
)

// Error reports why a board (or search branch) cannot be solved.
// Index is the flat cell index of the failing constraint, or -1 when
// no single cell is to blame.
type Error struct {
	Kind  Kind
	Index int
}

func (e *Error) Error() string {
	switch e.Kind {
	case Unsolvable:
		return fmt.Sprintf("unsolvable cell at %d", e.Index)
	case Duplicate:
		return fmt.Sprintf("duplicate cell at %d", e.Index)
	default:
		return "all assumptions contradicted"
	}
}
