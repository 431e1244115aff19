// SPDX-License-Identifier: MIT

package cell

import "math/big"

// Evaluate collapses the cell to a single rational
// (a / (b / c)) * (d / (e / f)), reading each term as its place value along
// the carry chain.
//
// Errors:
//   - ErrCollapseDisallowed unless the cell was built WithCollapse(true).
//   - ErrUndefinedEvaluation when b, c, e or f is zero.
func (c *Cell) Evaluate() (*big.Rat, error) {
	if !c.collapse {
		return nil, cellErrorf("Evaluate", ErrCollapseDisallowed)
	}
	v := c.PlaceValues()
	for _, t := range []Term{B, C, E, F} {
		if v[t].Sign() == 0 {
			return nil, cellErrorf("Evaluate", ErrUndefinedEvaluation)
		}
	}
	// a / (b/c) = a*c / b
	left := new(big.Rat).SetFrac(new(big.Int).Mul(v[A], v[C]), v[B])
	right := new(big.Rat).SetFrac(new(big.Int).Mul(v[D], v[F]), v[E])

	return left.Mul(left, right), nil
}

// CollapseAllowed reports whether Evaluate is enabled on this cell.
func (c *Cell) CollapseAllowed() bool { return c.collapse }
