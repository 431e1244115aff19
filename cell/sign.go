// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"strconv"
	"strings"
)

// Toggle flips the sign bit of term t on every cell of the owned carry
// chain, so PlaceValue(t) is exactly negated. Toggling the same term twice
// is the identity. Toggle is sign bookkeeping and does not advance metadata.
// It panics on a Term outside A..F.
func (c *Cell) Toggle(t Term) {
	if !t.Valid() {
		panic("cell: Toggle: invalid term " + strconv.Itoa(int(t)))
	}
	for cur := c; cur != nil; cur = cur.Carry() {
		cur.signs ^= 1 << uint(t)
	}
}

// Negative reports whether the sign bit of term t is set.
func (c *Cell) Negative(t Term) bool {
	return c.signs&(1<<uint(t)) != 0
}

// SignString renders the sign of term t as "+" or "-".
func (c *Cell) SignString(t Term) string {
	if c.Negative(t) {
		return "-"
	}
	return "+"
}

// SignBits renders the sign field as six binary digits, bit 5 (f) first.
func (c *Cell) SignBits() string {
	return fmt.Sprintf("%06b", c.signs)
}

// MulSign applies the sign of a multiplication by k: a negative k flips the
// numerator-side bits a and d. Magnitudes are untouched; use ScaleByInt for
// the arithmetic part. Counts as a transformation.
func (c *Cell) MulSign(k int64) {
	if k < 0 {
		c.Toggle(A)
		c.Toggle(D)
	}
	c.metadata++
}

// DivSign applies the sign of a division by k: a negative k flips the
// denominator-side bits b and e. Counts as a transformation.
func (c *Cell) DivSign(k int64) {
	if k < 0 {
		c.Toggle(B)
		c.Toggle(E)
	}
	c.metadata++
}

// Expression renders this cell (not its chain) in nested-quotient form:
// (±a / (±b / ±c)) * (±d / (±e / ±f)).
func (c *Cell) Expression() string {
	var p [NumTerms]string
	for _, t := range Terms() {
		p[t] = c.SignString(t) + c.coef[t].String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%s / (%s / %s)) * (%s / (%s / %s))", p[A], p[B], p[C], p[D], p[E], p[F])
	return sb.String()
}
