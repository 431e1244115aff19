// SPDX-License-Identifier: MIT

package lattice

import "github.com/katalvlaran/numcell/cell"

// Dump returns the snapshot of cell i with its lattice relations merged
// into Links. Relations held by the cell itself (the owned carry link
// included) come first in each direction, followed by the lattice relation,
// which is never owned.
func (l *Lattice) Dump(i int) (cell.Snapshot, error) {
	if err := l.check(i); err != nil {
		return cell.Snapshot{}, latticeErrorf("Dump", err)
	}
	c := l.cells[i]
	s := c.Dump()
	s.Links = nil
	for d := cell.Left; d <= cell.Out; d++ {
		if c.Linked(d) != nil {
			s.Links = append(s.Links, cell.LinkInfo{Direction: d.String(), Owned: c.Owns(d)})
		}
		if l.rel[i][d] != none {
			s.Links = append(s.Links, cell.LinkInfo{Direction: d.String()})
		}
	}
	return s, nil
}
