// SPDX-License-Identifier: MIT

package cell

import "math/big"

// Add adds other into c term by term with place-value carry.
//
// For every slot: sum = value(c) + value(other); c keeps sum mod radix and
// floor(sum / radix) travels to the owned Left link. other's own carry chain
// is merged one place up, so PlaceValue of every term equals the exact sum
// afterwards. other is not modified; c may be other.
//
// Errors: ErrNilCell, ErrRadixMismatch.
// Complexity: O(depth) big-integer operations.
func (c *Cell) Add(other *Cell) error {
	if c == nil || other == nil {
		return cellErrorf("Add", ErrNilCell)
	}
	if c.radix != other.radix {
		return cellErrorf("Add", ErrRadixMismatch)
	}
	if inChain(c, other) || inChain(other, c) {
		other = other.Clone()
	}
	c.absorb(nil, other)
	return nil
}

// ScaleByInt multiplies every term by k with the same carry policy.
// k == 1 is the identity and leaves c untouched, metadata included.
// The whole owned chain is scaled, so place values stay exact.
func (c *Cell) ScaleByInt(k int64) error {
	if c == nil {
		return cellErrorf("ScaleByInt", ErrNilCell)
	}
	if k == 1 {
		return nil
	}
	c.scale(big.NewInt(k))
	return nil
}

// ScaleByBig is ScaleByInt for an arbitrary-precision scalar.
func (c *Cell) ScaleByBig(k *big.Int) error {
	if c == nil || k == nil {
		return cellErrorf("ScaleByBig", ErrNilCell)
	}
	if k.IsInt64() && k.Int64() == 1 {
		return nil
	}
	c.scale(k)
	return nil
}

// Relu clears term a when it is negative: its sign bit is set (a negative
// zero included) or its place value is below zero. The a-term and its sign
// bit are cleared on every cell of the carry chain. Metadata is incremented
// either way.
func (c *Cell) Relu() {
	if c.Negative(A) || c.PlaceValue(A).Sign() < 0 {
		for cur := c; cur != nil; cur = cur.Carry() {
			cur.coef[A].SetInt64(0)
			cur.signs &^= 1 << uint(A)
		}
	}
	c.metadata++
}

// Normalize re-runs the carry engine on c alone so each slot is pulled back
// into [0, radix), pushing overflow into the chain.
func (c *Cell) Normalize() {
	c.absorb(nil, nil)
}

// ReduceMod replaces every term by its place value modulo m (Euclidean, so
// results lie in [0, m)) and rebuilds the chain from scratch.
//
// Errors: ErrInvalidBase when m ≤ 0.
func (c *Cell) ReduceMod(m *big.Int) error {
	if m == nil || m.Sign() <= 0 {
		return cellErrorf("ReduceMod", ErrInvalidBase)
	}
	var vals [NumTerms]big.Int
	for i := range vals {
		vals[i].Mod(c.PlaceValue(Term(i)), m)
	}
	c.links[Left] = nil
	c.owned &^= 1 << uint(Left)
	for i := range c.coef {
		c.coef[i].SetInt64(0)
	}
	c.settle(&vals, nil)
	c.metadata++
	return nil
}

// inChain reports whether x is head or part of the carry chain below head.
func inChain(head, x *Cell) bool {
	for cur := head; cur != nil; cur = cur.Carry() {
		if cur == x {
			return true
		}
	}
	return false
}

// scale multiplies the chain from its far end inwards so carries from lower
// places land on already-scaled cells.
func (c *Cell) scale(k *big.Int) {
	if left := c.Carry(); left != nil {
		left.scale(k)
	}
	var vals [NumTerms]big.Int
	for i := range vals {
		vals[i].Mul(c.term(Term(i)), k)
	}
	c.settle(&vals, nil)
	c.metadata++
}

// absorb adds over (overflow arriving from the place below, may be nil) and
// the head of chain h (same place as c, may be nil) into c.
func (c *Cell) absorb(over *[NumTerms]big.Int, h *Cell) {
	var vals [NumTerms]big.Int
	for i := range vals {
		vals[i].Set(c.term(Term(i)))
		if over != nil {
			vals[i].Add(&vals[i], &over[i])
		}
		if h != nil {
			vals[i].Add(&vals[i], h.term(Term(i)))
		}
	}
	var next *Cell
	if h != nil {
		next = h.Carry()
	}
	c.settle(&vals, next)
	c.metadata++
}

// settle stores vals mod radix in c and sends the overflow, together with
// the chain higher (which sits one place above c), into the owned Left link.
//
// A missing Left link is created. When nothing remains above and some
// overflow is negative the carry cell is stored verbatim: floor carry of a
// negative value never reaches zero, so normalising it would not terminate.
func (c *Cell) settle(vals *[NumTerms]big.Int, higher *Cell) {
	r := big.NewInt(c.radix)
	var over [NumTerms]big.Int
	overflow, negative := false, false
	for i := range vals {
		var m big.Int
		over[i].DivMod(&vals[i], r, &m)
		c.setTerm(Term(i), &m)
		switch over[i].Sign() {
		case 1:
			overflow = true
		case -1:
			overflow, negative = true, true
		}
	}
	if !overflow && higher == nil {
		return
	}
	if left := c.Carry(); left != nil {
		left.absorb(&over, higher)
		return
	}

	carry := c.newCarry()
	if negative && higher == nil {
		for i := range over {
			carry.setTerm(Term(i), &over[i])
		}
	} else {
		carry.absorb(&over, higher)
	}
	c.links[Left] = carry
	c.owned |= 1 << uint(Left)
}
