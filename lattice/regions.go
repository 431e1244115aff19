// SPDX-License-Identifier: MIT

package lattice

import (
	"math/big"

	"github.com/katalvlaran/numcell/cell"
)

// Regions finds connected groups of "active" cells, those whose a-term place
// value is ≥ threshold, following the four spatial relations. Each region
// lists cell indices in BFS discovery order; regions are ordered by their
// lowest index.
//
// Time:   O(N·4).
// Memory: O(N) for visited flags and output.
func (l *Lattice) Regions(threshold int64) [][]int {
	t := big.NewInt(threshold)
	active := make([]bool, len(l.cells))
	for i, c := range l.cells {
		active[i] = c.PlaceValue(cell.A).Cmp(t) >= 0
	}
	seen := make([]bool, len(l.cells))
	var regions [][]int

	for i0 := range l.cells {
		if !active[i0] || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []int
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			region = append(region, u)
			for _, d := range aggregateOrder {
				v := l.rel[u][d]
				if v == none || !active[v] || seen[v] {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, region)
	}
	return regions
}
