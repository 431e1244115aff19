// SPDX-License-Identifier: MIT

package lattice_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numcell/cell"
	"github.com/katalvlaran/numcell/lattice"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int64
		opts []lattice.Option
		err  error
	}{
		{"EmptyRows", [][]int64{}, nil, lattice.ErrEmptyGrid},
		{"EmptyCols", [][]int64{{}}, nil, lattice.ErrEmptyGrid},
		{"NonRectangular", [][]int64{{1, 2}, {3}}, nil, lattice.ErrNonRectangular},
		{"BadRadix", [][]int64{{1}}, []lattice.Option{lattice.WithRadix(1)}, lattice.ErrInvalidBase},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lattice.NewGrid(tc.grid, tc.opts...)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewGrid_Links(t *testing.T) {
	l, err := lattice.NewGrid([][]int64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	require.Equal(t, 6, l.Len())
	require.Equal(t, 3, l.Width())
	require.Equal(t, 2, l.Height())

	// Corner (0,0): right and down only.
	require.Equal(t, map[cell.Direction]int{cell.Right: 1, cell.Down: 3}, l.Neighbors(0))
	// Middle of bottom row (1,1).
	require.Equal(t, map[cell.Direction]int{cell.Up: 1, cell.Left: 3, cell.Right: 5}, l.Neighbors(4))

	x, y := l.Coordinate(5)
	require.Equal(t, [2]int{2, 1}, [2]int{x, y})
	require.Equal(t, 5, l.Index(2, 1))
	require.True(t, l.InBounds(2, 1))
	require.False(t, l.InBounds(3, 0))
	require.False(t, l.InBounds(0, -1))

	c, err := l.Cell(4)
	require.NoError(t, err)
	require.Equal(t, int64(5), c.PlaceValue(cell.A).Int64())
}

func TestPool_Errors(t *testing.T) {
	l, err := lattice.New()
	require.NoError(t, err)

	_, err = l.Add(nil)
	require.ErrorIs(t, err, lattice.ErrNilCell)

	_, err = l.Add(cell.MustNew(cell.WithRadix(16)))
	require.ErrorIs(t, err, lattice.ErrRadixMismatch)
	require.True(t, errors.Is(err, cell.ErrRadixMismatch))

	i, err := l.Add(cell.MustNew())
	require.NoError(t, err)
	require.Equal(t, 0, i)

	require.ErrorIs(t, l.Link(0, cell.Up, 7), lattice.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Link(-1, cell.Up, 0), lattice.ErrIndexOutOfRange)
	require.ErrorIs(t, l.Link(0, cell.Direction(9), 0), lattice.ErrInvalidDirection)
	require.ErrorIs(t, l.Unlink(3, cell.Up), lattice.ErrIndexOutOfRange)

	_, err = l.Cell(1)
	require.ErrorIs(t, err, lattice.ErrIndexOutOfRange)
	_, err = l.WeightedSumNeighbors(1)
	require.ErrorIs(t, err, lattice.ErrIndexOutOfRange)

	_, ok := l.Neighbor(0, cell.Up)
	require.False(t, ok)
	require.Empty(t, l.Neighbors(42))
}

func TestLinkBothAndUnlink(t *testing.T) {
	l, err := lattice.New()
	require.NoError(t, err)
	a, _ := l.Add(cell.MustNew())
	b, _ := l.Add(cell.MustNew())

	require.NoError(t, l.LinkBoth(a, cell.Right, b))
	j, ok := l.Neighbor(a, cell.Right)
	require.True(t, ok)
	require.Equal(t, b, j)
	j, ok = l.Neighbor(b, cell.Left)
	require.True(t, ok)
	require.Equal(t, a, j)

	require.NoError(t, l.Unlink(a, cell.Right))
	_, ok = l.Neighbor(a, cell.Right)
	require.False(t, ok)
	_, ok = l.Neighbor(b, cell.Left)
	require.True(t, ok, "unlink is one-way")
}

//----------------------------------------------------------------------------//
// Aggregation
//----------------------------------------------------------------------------//

func TestWeightedSumNeighbors_Isolated(t *testing.T) {
	l, err := lattice.New()
	require.NoError(t, err)
	src := cell.MustNew(cell.WithCoefficients(1, 2, 3, 4, 5, 6), cell.WithSigns(0b000101))
	i, err := l.Add(src)
	require.NoError(t, err)

	got, err := l.WeightedSumNeighbors(i)
	require.NoError(t, err)
	require.True(t, got.Equal(src))
	require.NotSame(t, src, got)
}

func TestWeightedSumNeighbors_InOutIgnored(t *testing.T) {
	l, err := lattice.New()
	require.NoError(t, err)
	a, _ := l.Add(cell.MustNew(cell.WithCoefficient(cell.A, 3)))
	b, _ := l.Add(cell.MustNew(cell.WithCoefficient(cell.A, 4)))
	require.NoError(t, l.Link(a, cell.In, b))
	require.NoError(t, l.Link(a, cell.Out, b))

	got, err := l.WeightedSumNeighbors(a)
	require.NoError(t, err)
	require.Equal(t, int64(3), got.PlaceValue(cell.A).Int64())

	require.NoError(t, l.Link(a, cell.Down, b))
	got, err = l.WeightedSumNeighbors(a)
	require.NoError(t, err)
	require.Equal(t, int64(7), got.PlaceValue(cell.A).Int64())
}

func TestWeightedSumNeighbors_Grid(t *testing.T) {
	grid := [][]int64{
		{1, 2, 3},
		{4, 5, 6},
	}
	cases := []struct {
		name string
		opts []lattice.Option
		want []int64
	}{
		{"UnitWeights", nil, []int64{7, 11, 11, 10, 17, 14}},
		// Up neighbours count twice: only the bottom row has one.
		{"UpWeighted", []lattice.Option{lattice.WithNeighborWeight(cell.Up, 2)},
			[]int64{7, 11, 11, 11, 19, 17}},
		{"LeftZeroed", []lattice.Option{lattice.WithNeighborWeight(cell.Left, 0)},
			[]int64{7, 10, 9, 10, 13, 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := lattice.NewGrid(grid, tc.opts...)
			require.NoError(t, err)
			for i, want := range tc.want {
				got, err := l.WeightedSumNeighbors(i)
				require.NoError(t, err)
				require.Equal(t, want, got.PlaceValue(cell.A).Int64(), "cell %d", i)
				// Remaining terms are zero in every input cell.
				require.Zero(t, got.PlaceValue(cell.F).Sign())
			}
			// The pool itself is untouched.
			for i := 0; i < l.Len(); i++ {
				c, _ := l.Cell(i)
				x, y := l.Coordinate(i)
				require.Equal(t, grid[y][x], c.PlaceValue(cell.A).Int64())
			}
		})
	}
}

func TestWeightedSumNeighbors_CarryDigits(t *testing.T) {
	l, err := lattice.NewGrid([][]int64{{9, 9, 9}})
	require.NoError(t, err)

	got, err := l.WeightedSumNeighbors(1)
	require.NoError(t, err)
	// 9+9+9 = 27: digit 7, carry 2.
	require.Equal(t, int64(7), got.Coefficient(cell.A).Int64())
	require.NotNil(t, got.Carry())
	require.Equal(t, int64(2), got.Carry().Coefficient(cell.A).Int64())
	require.Equal(t, int64(27), got.PlaceValue(cell.A).Int64())
}

func TestStep_Synchronous(t *testing.T) {
	l, err := lattice.NewGrid([][]int64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	require.NoError(t, l.Step())

	want := []int64{7, 11, 11, 10, 17, 14}
	for i, w := range want {
		c, err := l.Cell(i)
		require.NoError(t, err)
		require.Equal(t, w, c.PlaceValue(cell.A).Int64(), "cell %d", i)
	}

	// A second step sums the new values, not a mix of old and new.
	require.NoError(t, l.Step())
	c, _ := l.Cell(0)
	require.Equal(t, int64(7+11+10), c.PlaceValue(cell.A).Int64())
}

//----------------------------------------------------------------------------//
// Regions
//----------------------------------------------------------------------------//

func TestRegions(t *testing.T) {
	l, err := lattice.NewGrid([][]int64{
		{5, 0, 5},
		{5, 0, 5},
		{0, -3, 0},
	})
	require.NoError(t, err)

	require.Equal(t, [][]int{{0, 3}, {2, 5}}, l.Regions(1))
	require.Nil(t, l.Regions(6))

	// Threshold 0 admits every non-negative cell, which joins everything
	// except the negative cell at (1,2).
	all := l.Regions(0)
	require.Len(t, all, 1)
	require.Len(t, all[0], 8)
	require.NotContains(t, all[0], 7)
}

func TestRegions_FollowsManualLinks(t *testing.T) {
	l, err := lattice.New()
	require.NoError(t, err)
	for _, v := range []int64{4, 4, 4} {
		_, err := l.Add(cell.MustNew(cell.WithCoefficient(cell.A, v)))
		require.NoError(t, err)
	}
	require.NoError(t, l.LinkBoth(0, cell.Up, 2))
	// In/Out relations do not connect regions.
	require.NoError(t, l.LinkBoth(0, cell.In, 1))

	require.Equal(t, [][]int{{0, 2}, {1}}, l.Regions(1))
}

func TestDump_ReportsLatticeRelations(t *testing.T) {
	l, err := lattice.NewGrid([][]int64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	s, err := l.Dump(l.Index(1, 1))
	require.NoError(t, err)
	require.Equal(t, []cell.LinkInfo{
		{Direction: "left"},
		{Direction: "up"},
	}, s.Links)
	require.Equal(t, "4", s.Coefficients[cell.A])

	// A carried cell reports its owned carry link next to the spatial left.
	m, err := lattice.New()
	require.NoError(t, err)
	c, err := cell.FromValues(cell.DefaultRadix, [cell.NumTerms]*big.Int{big.NewInt(13)})
	require.NoError(t, err)
	a, _ := m.Add(c)
	b, _ := m.Add(cell.MustNew())
	require.NoError(t, m.LinkBoth(a, cell.Left, b))

	s, err = m.Dump(a)
	require.NoError(t, err)
	require.Equal(t, []cell.LinkInfo{
		{Direction: "left", Owned: true},
		{Direction: "left"},
	}, s.Links)
	require.NotNil(t, s.Carry)

	s, err = m.Dump(b)
	require.NoError(t, err)
	require.Equal(t, []cell.LinkInfo{{Direction: "right"}}, s.Links)

	// The cell's own dump is unchanged.
	require.Equal(t, []cell.LinkInfo{{Direction: "left", Owned: true}}, c.Dump().Links)

	_, err = m.Dump(5)
	require.ErrorIs(t, err, lattice.ErrIndexOutOfRange)
}
