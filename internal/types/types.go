package types

import (
	"encoding/json"
	"fmt"
	"math/bits"
)

// Size is the side length of the grid, Cells the total cell count.
const (
	Size  = 9
	Cells = Size * Size
)

// Candidates is a set of values 1-9 kept as a bitmask (bit v set means
// v is still possible).
type Candidates uint16

// AllCandidates has every value 1-9 set.
const AllCandidates Candidates = 0x3FE

func (c Candidates) Has(v uint8) bool { return c&(1<<v) != 0 }

func (c Candidates) Count() int { return bits.OnesCount16(uint16(c)) }

func (c *Candidates) Remove(v uint8) { *c &^= 1 << v }

// Values returns the remaining candidates in ascending order.
func (c Candidates) Values() []uint8 {
	vs := make([]uint8, 0, c.Count())
	for v := uint8(1); v <= Size; v++ {
		if c.Has(v) {
			vs = append(vs, v)
		}
	}
	return vs
}

// Cell is either solved with a fixed value or undetermined with a
// non-empty candidate set. Value 0 marks an undetermined cell.
type Cell struct {
	Value      uint8
	Candidates Candidates
}

func (c Cell) Solved() bool { return c.Value != 0 }

// SolvedCell fixes a value and clears the candidate set.
func SolvedCell(v uint8) Cell { return Cell{Value: v} }

// CellFromDigit maps an input digit to a cell: 0 becomes undetermined
// with all candidates, 1-9 become solved. Anything else cannot come
// out of the input filter and is an internal invariant violation.
func CellFromDigit(d uint8) Cell {
	switch {
	case d == 0:
		return Cell{Candidates: AllCandidates}
	case d <= Size:
		return SolvedCell(d)
	default:
		panic(fmt.Sprintf("types: digit %d out of range", d))
	}
}

// Board is the full grid, row-major (index = row*9 + col). It is a
// value type: assignment clones it, so search branches never share
// mutable state.
type Board [Cells]Cell

func RowOf(i int) int { return i / Size }

func ColOf(i int) int { return i % Size }

// BlockOrigin returns the top-left row and column of the 3x3 block
// containing index i.
func BlockOrigin(i int) (row, col int) {
	return RowOf(i) / 3 * 3, ColOf(i) / 3 * 3
}

// NewBoard builds a board from 81 digits in row-major order.
func NewBoard(digits []uint8) (*Board, error) {
	if len(digits) != Cells {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidData, len(digits), Cells)
	}
	var b Board
	for i, d := range digits {
		b[i] = CellFromDigit(d)
	}
	return &b, nil
}

// FullySolved reports whether every cell has a fixed value.
func (b *Board) FullySolved() bool {
	for i := range b {
		if !b[i].Solved() {
			return false
		}
	}
	return true
}

// Rows returns the board as a 9x9 grid of ints, 0 for undetermined
// cells.
func (b *Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := 0; r < Size; r++ {
		rows[r] = make([]int, Size)
		for c := 0; c < Size; c++ {
			rows[r][c] = int(b[r*Size+c].Value)
		}
	}
	return rows
}

// String renders the grid as 9 lines of 9 characters, undetermined
// cells as a space.
func (b *Board) String() string {
	out := make([]byte, 0, Size*(Size+1))
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if cell := b[r*Size+c]; cell.Solved() {
				out = append(out, '0'+cell.Value)
			} else {
				out = append(out, ' ')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}

// Valid reports whether no row, column or block contains a value
// twice. Undetermined cells are ignored.
func (b *Board) Valid() bool {
	for r := 0; r < Size; r++ {
		if !b.validGroup(func(i int) int { return r*Size + i }) {
			return false
		}
	}
	for c := 0; c < Size; c++ {
		if !b.validGroup(func(i int) int { return i*Size + c }) {
			return false
		}
	}
	for blk := 0; blk < Size; blk++ {
		row, col := blk/3*3, blk%3*3
		if !b.validGroup(func(i int) int { return (row+i/3)*Size + col + i%3 }) {
			return false
		}
	}
	return true
}

func (b *Board) validGroup(index func(int) int) bool {
	var seen Candidates
	for i := 0; i < Size; i++ {
		cell := b[index(i)]
		if !cell.Solved() {
			continue
		}
		if seen.Has(cell.Value) {
			return false
		}
		seen |= 1 << cell.Value
	}
	return true
}

// FromRows is the inverse of Rows: it rebuilds a board from a 9x9
// grid of ints, 0 for undetermined cells.
func FromRows(rows [][]int) (*Board, error) {
	digits := make([]uint8, 0, Cells)
	for _, row := range rows {
		for _, v := range row {
			if v < 0 || v > Size {
				return nil, fmt.Errorf("%w: value %d out of range", ErrInvalidData, v)
			}
			digits = append(digits, uint8(v))
		}
	}
	return NewBoard(digits)
}

// Puzzle pairs the original givens with the solved grid for export.
type Puzzle struct {
	Grid     [][]int `json:"grid"`
	Solution [][]int `json:"solution"`
	Size     int     `json:"size"`
}

func NewPuzzle(givens, solution *Board) *Puzzle {
	return &Puzzle{
		Grid:     givens.Rows(),
		Solution: solution.Rows(),
		Size:     Size,
	}
}

// ToJSON converts the puzzle to JSON bytes.
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
