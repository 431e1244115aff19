// SPDX-License-Identifier: MIT

package lattice

import "github.com/katalvlaran/numcell/cell"

// New returns an empty lattice.
// Errors: ErrInvalidBase when the radix is ≤ 1.
func New(opts ...Option) (*Lattice, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.radix <= 1 {
		return nil, latticeErrorf("New", ErrInvalidBase)
	}
	return &Lattice{radix: o.radix, weights: o.weights}, nil
}

// NewGrid builds a rectangular mesh from a non-empty 2D slice. values[y][x]
// becomes the a-term of the cell at (x,y); neighbouring cells are linked
// up/down/left/right in both directions.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int64, opts ...Option) (*Lattice, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	l, err := New(opts...)
	if err != nil {
		return nil, err
	}
	l.width, l.height = w, h
	l.cells = make([]*cell.Cell, 0, w*h)
	l.rel = make([][cell.NumDirections]int, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, err := cell.New(cell.WithCoefficient(cell.A, values[y][x]), cell.WithRadix(l.radix))
			if err != nil {
				return nil, latticeErrorf("NewGrid", err)
			}
			l.push(c)
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := l.Index(x, y)
			if x > 0 {
				l.rel[i][cell.Left] = l.Index(x-1, y)
			}
			if x < w-1 {
				l.rel[i][cell.Right] = l.Index(x+1, y)
			}
			if y > 0 {
				l.rel[i][cell.Up] = l.Index(x, y-1)
			}
			if y < h-1 {
				l.rel[i][cell.Down] = l.Index(x, y+1)
			}
		}
	}

	return l, nil
}

// push appends c with no relations and returns its index.
func (l *Lattice) push(c *cell.Cell) int {
	l.cells = append(l.cells, c)
	var r [cell.NumDirections]int
	for d := range r {
		r[d] = none
	}
	l.rel = append(l.rel, r)
	return len(l.cells) - 1
}

// Add places c in the pool and returns its index. The lattice takes
// ownership of c.
// Errors: ErrNilCell, ErrRadixMismatch.
func (l *Lattice) Add(c *cell.Cell) (int, error) {
	if c == nil {
		return none, latticeErrorf("Add", ErrNilCell)
	}
	if c.Radix() != l.radix {
		return none, latticeErrorf("Add", ErrRadixMismatch)
	}
	return l.push(c), nil
}

// Len returns the number of cells in the pool.
func (l *Lattice) Len() int { return len(l.cells) }

// Radix returns the carry base shared by the pool.
func (l *Lattice) Radix() int64 { return l.radix }

// Cell returns the cell at index i. The pointer stays owned by the lattice.
func (l *Lattice) Cell(i int) (*cell.Cell, error) {
	if err := l.check(i); err != nil {
		return nil, latticeErrorf("Cell", err)
	}
	return l.cells[i], nil
}

// Link records that cell to is reached from cell from in direction d.
// The relation is one-way; use LinkBoth for a symmetric pair.
func (l *Lattice) Link(from int, d cell.Direction, to int) error {
	if err := l.check(from); err != nil {
		return latticeErrorf("Link", err)
	}
	if err := l.check(to); err != nil {
		return latticeErrorf("Link", err)
	}
	if !d.Valid() {
		return latticeErrorf("Link", ErrInvalidDirection)
	}
	l.rel[from][d] = to
	return nil
}

// LinkBoth links from→to in direction d and to→from in d.Opposite().
func (l *Lattice) LinkBoth(from int, d cell.Direction, to int) error {
	if err := l.Link(from, d, to); err != nil {
		return err
	}
	return l.Link(to, d.Opposite(), from)
}

// Unlink clears the relation of cell i in direction d.
func (l *Lattice) Unlink(i int, d cell.Direction) error {
	if err := l.check(i); err != nil {
		return latticeErrorf("Unlink", err)
	}
	if !d.Valid() {
		return latticeErrorf("Unlink", ErrInvalidDirection)
	}
	l.rel[i][d] = none
	return nil
}

// Neighbor returns the index reached from i in direction d.
func (l *Lattice) Neighbor(i int, d cell.Direction) (int, bool) {
	if l.check(i) != nil || !d.Valid() {
		return none, false
	}
	j := l.rel[i][d]
	return j, j != none
}

// Neighbors returns the present relations of cell i keyed by direction.
func (l *Lattice) Neighbors(i int) map[cell.Direction]int {
	out := make(map[cell.Direction]int)
	if l.check(i) != nil {
		return out
	}
	for d, j := range l.rel[i] {
		if j != none {
			out[cell.Direction(d)] = j
		}
	}
	return out
}

func (l *Lattice) check(i int) error {
	if i < 0 || i >= len(l.cells) {
		return ErrIndexOutOfRange
	}
	return nil
}

// Width and Height return the grid shape (0 for lattices not built by NewGrid).
func (l *Lattice) Width() int  { return l.width }
func (l *Lattice) Height() int { return l.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (l *Lattice) Index(x, y int) int {
	return y*l.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (l *Lattice) Coordinate(idx int) (x, y int) {
	if l.width == 0 {
		return idx, 0
	}
	return idx % l.width, idx / l.width
}
