// SPDX-License-Identifier: MIT

package lattice

import "github.com/katalvlaran/numcell/cell"

// none marks an absent relation in the index table.
const none = -1

// DefaultNeighborWeight scales every neighbour in WeightedSumNeighbors
// unless WithNeighborWeight overrides it.
const DefaultNeighborWeight int64 = 1

// aggregateOrder is the order neighbours are summed in.
var aggregateOrder = [...]cell.Direction{cell.Up, cell.Down, cell.Left, cell.Right}

// Option configures a Lattice.
type Option func(*options)

type options struct {
	radix   int64
	weights [cell.NumDirections]int64
}

func defaultOptions() options {
	o := options{radix: cell.DefaultRadix}
	for _, d := range aggregateOrder {
		o.weights[d] = DefaultNeighborWeight
	}
	return o
}

// WithRadix sets the carry base shared by every cell in the pool.
func WithRadix(r int64) Option {
	return func(o *options) { o.radix = r }
}

// WithNeighborWeight sets the integer weight applied to the neighbour in
// direction d during aggregation. Weights on In/Out are ignored.
func WithNeighborWeight(d cell.Direction, w int64) Option {
	return func(o *options) {
		if d.Valid() {
			o.weights[d] = w
		}
	}
}

// Lattice is an arena of cells with index-based relations.
// rel[i][d] holds the index reached from cell i in direction d, or none.
// width/height are set only for lattices built by NewGrid.
type Lattice struct {
	cells   []*cell.Cell
	rel     [][cell.NumDirections]int
	radix   int64
	weights [cell.NumDirections]int64

	width, height int
}
