// SPDX-License-Identifier: MIT

package lattice

import "github.com/katalvlaran/numcell/cell"

// WeightedSumNeighbors returns a new cell equal to cell i plus each present
// neighbour among up, down, left and right, scaled by its direction weight,
// summed with carry. In and Out never take part. An isolated cell yields a
// value-equal copy of itself. The pool is not modified.
func (l *Lattice) WeightedSumNeighbors(i int) (*cell.Cell, error) {
	if err := l.check(i); err != nil {
		return nil, latticeErrorf("WeightedSumNeighbors", err)
	}
	out := l.cells[i].Clone()
	for _, d := range aggregateOrder {
		j := l.rel[i][d]
		if j == none {
			continue
		}
		term := l.cells[j].Clone()
		if err := term.ScaleByInt(l.weights[d]); err != nil {
			return nil, latticeErrorf("WeightedSumNeighbors", err)
		}
		if err := out.Add(term); err != nil {
			return nil, latticeErrorf("WeightedSumNeighbors", err)
		}
	}
	return out, nil
}

// Step replaces every cell with its neighbour sum. All sums are computed
// from the current pool before any cell is replaced, so the update is
// synchronous. On error the pool is left unchanged.
func (l *Lattice) Step() error {
	next := make([]*cell.Cell, len(l.cells))
	for i := range l.cells {
		s, err := l.WeightedSumNeighbors(i)
		if err != nil {
			return latticeErrorf("Step", err)
		}
		next[i] = s
	}
	copy(l.cells, next)
	return nil
}
