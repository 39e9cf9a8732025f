package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/dacci/sudoku-solver/internal/types"
)

// Solver alternates constraint propagation with depth first search.
// Propagation prunes most branches before they are ever enumerated,
// which is what keeps the search tractable.
type Solver struct {
	log logrus.FieldLogger
}

func New() *Solver { return &Solver{log: logrus.StandardLogger()} }

// NewWithLogger routes the solve trace through the given logger.
func NewWithLogger(log logrus.FieldLogger) *Solver { return &Solver{log: log} }

// Solve returns the first full solution of b, or an *Error describing
// why none exists. The input board is mutated by propagation; search
// branches work on their own clones.
func (s *Solver) Solve(b *types.Board) (*types.Board, error) {
	return s.solve(b, 0)
}

func (s *Solver) solve(b *types.Board, depth int) (*types.Board, error) {
	log := s.log.WithField("depth", depth)

	log.Debug("trying elimination")
	done, err := s.eliminate(b, depth)
	if err != nil {
		log.WithError(err).Debug("elimination failed")
		return nil, err
	}
	if done {
		return b, nil
	}

	log.Debug("trying depth first search")
	out, err := s.search(b, depth)
	if err != nil {
		log.WithError(err).Debug("depth first search failed")
		return nil, err
	}
	return out, nil
}

// eliminate repeatedly strikes solved values from peer candidate sets
// and promotes cells whose candidate set shrank to a single value.
// It returns true when the board is fully solved, false on a stall,
// and an error on a contradiction.
func (s *Solver) eliminate(b *types.Board, depth int) (bool, error) {
	log := s.log.WithField("depth", depth)

	for {
		solved := true
		for i := range b {
			cell := b[i]
			if !cell.Solved() {
				solved = false
				continue
			}
			if j := strike(b, i, cell.Value); j >= 0 {
				return false, &Error{Kind: Duplicate, Index: j}
			}
		}
		if solved {
			log.Debug("all cells solved")
			return true, nil
		}

		changed := false
		for i := range b {
			cell := b[i]
			if cell.Solved() {
				continue
			}
			switch cell.Candidates.Count() {
			case 0:
				return false, &Error{Kind: Unsolvable, Index: i}
			case 1:
			default:
				continue
			}

			v := cell.Candidates.Values()[0]
			if j := solvedPeer(b, i, v); j >= 0 {
				return false, &Error{Kind: Duplicate, Index: j}
			}
			b[i] = types.SolvedCell(v)
			changed = true
		}
		if !changed {
			log.Debug("no cell could be solved")
			return false, nil
		}
	}
}

// search branches on the undetermined cell with the fewest remaining
// candidates, trying values in ascending order on a cloned board and
// recursing into solve. The first branch that succeeds wins.
func (s *Solver) search(b *types.Board, depth int) (*types.Board, error) {
	log := s.log.WithField("depth", depth)

	index := pickCell(b)
	if index < 0 {
		log.Debug("already solved")
		return b, nil
	}

	for _, v := range b[index].Candidates.Values() {
		branch := *b
		branch[index] = types.SolvedCell(v)

		log.WithFields(logrus.Fields{"cell": index, "value": v}).Debug("assuming")
		out, err := s.solve(&branch, depth+1)
		if err == nil {
			return out, nil
		}
		log.WithError(err).Debug("assumption contradicted")
	}

	return nil, &Error{Kind: Exhausted, Index: -1}
}

// pickCell selects the undetermined cell with the fewest candidates,
// lowest index on ties, or -1 when every cell is solved.
func pickCell(b *types.Board) int {
	best := -1
	for i := range b {
		if b[i].Solved() {
			continue
		}
		if best < 0 || b[i].Candidates.Count() < b[best].Candidates.Count() {
			best = i
		}
	}
	return best
}

// strike removes v from the candidate sets of i's undetermined peers.
// It returns the index of a solved peer already holding v (a duplicate
// among givens), or -1.
func strike(b *types.Board, i int, v uint8) int {
	for _, j := range peerTable[i] {
		cell := &b[j]
		if cell.Solved() {
			if cell.Value == v {
				return j
			}
			continue
		}
		cell.Candidates.Remove(v)
	}
	return -1
}

// solvedPeer returns the index of a peer of i solved with v, or -1.
func solvedPeer(b *types.Board, i int, v uint8) int {
	for _, j := range peerTable[i] {
		if b[j].Solved() && b[j].Value == v {
			return j
		}
	}
	return -1
}

// peerTable[i] lists the row, column and block peers of i, excluding i
// itself. Cells shared between the block and the row or column appear
// twice; striking them twice is a no-op.
var peerTable = buildPeerTable()

func buildPeerTable() [types.Cells][]int {
	var table [types.Cells][]int
	for i := range table {
		peers := make([]int, 0, 28)
		row, col := types.RowOf(i), types.ColOf(i)
		for c := 0; c < types.Size; c++ {
			if j := row*types.Size + c; j != i {
				peers = append(peers, j)
			}
		}
		for r := 0; r < types.Size; r++ {
			if j := r*types.Size + col; j != i {
				peers = append(peers, j)
			}
		}
		br, bc := types.BlockOrigin(i)
		for r := br; r < br+3; r++ {
			for c := bc; c < bc+3; c++ {
				if j := r*types.Size + c; j != i {
					peers = append(peers, j)
				}
			}
		}
		table[i] = peers
	}
	return table
}
