// SPDX-License-Identifier: MIT

package cell

import "math/big"

// New builds a Cell from options. Defaults: all coefficients zero, all signs
// positive, metadata 0, radix DefaultRadix, collapse disabled.
//
// Errors: ErrInvalidBase (radix ≤ 1), ErrInvalidSigns (bits above 5).
func New(opts ...Option) (*Cell, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.radix <= 1 {
		return nil, cellErrorf("New", ErrInvalidBase)
	}
	if o.signs&^signMask != 0 {
		return nil, cellErrorf("New", ErrInvalidSigns)
	}
	c := &Cell{
		signs:    o.signs,
		metadata: o.metadata,
		radix:    o.radix,
		collapse: o.collapse,
	}
	for i, v := range o.coef {
		if v == nil {
			continue
		}
		c.coef[i].Abs(v)
		if v.Sign() < 0 {
			c.signs ^= 1 << uint(i)
		}
	}

	return c, nil
}

// MustNew is New for fixtures and examples; it panics on error.
func MustNew(opts ...Option) *Cell {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// FromValues builds a cell whose terms carry the given signed values through
// the carry engine: each slot keeps value mod radix and the overflow lands in
// an owned carry chain. nil entries count as zero. opts are applied after
// the radix; coefficient options are overwritten by vals.
func FromValues(radix int64, vals [NumTerms]*big.Int, opts ...Option) (*Cell, error) {
	c, err := New(append([]Option{WithRadix(radix)}, opts...)...)
	if err != nil {
		return nil, cellErrorf("FromValues", err)
	}
	var sums [NumTerms]big.Int
	for i, v := range vals {
		if v != nil {
			sums[i].Set(v)
		}
	}
	c.settle(&sums, nil)

	return c, nil
}

// newCarry returns an empty cell sharing c's radix and collapse policy.
func (c *Cell) newCarry() *Cell {
	return &Cell{radix: c.radix, collapse: c.collapse}
}

// Radix returns the carry base.
func (c *Cell) Radix() int64 { return c.radix }

// Metadata returns the transformation counter.
func (c *Cell) Metadata() uint64 { return c.metadata }

// Signs returns the 6-bit sign field.
func (c *Cell) Signs() uint8 { return c.signs }

// Coefficient returns a copy of the raw magnitude stored in slot t,
// without the sign bit applied.
func (c *Cell) Coefficient(t Term) *big.Int {
	return new(big.Int).Set(&c.coef[t])
}

// Value returns the effective signed value of slot t on this cell only:
// the raw coefficient negated when its sign bit is set.
func (c *Cell) Value(t Term) *big.Int {
	return c.term(t)
}

// term is Value without the exported contract.
func (c *Cell) term(t Term) *big.Int {
	v := new(big.Int).Set(&c.coef[t])
	if c.signs&(1<<uint(t)) != 0 {
		v.Neg(v)
	}
	return v
}

// setTerm stores v in sign-magnitude form. A zero value keeps the current
// sign bit.
func (c *Cell) setTerm(t Term, v *big.Int) {
	bit := uint8(1) << uint(t)
	switch v.Sign() {
	case 1:
		c.coef[t].Set(v)
		c.signs &^= bit
	case -1:
		c.coef[t].Neg(v)
		c.signs |= bit
	default:
		c.coef[t].SetInt64(0)
	}
}

// Carry returns the owned carry cell stored at Left, or nil.
func (c *Cell) Carry() *Cell {
	if c.owned&(1<<uint(Left)) == 0 {
		return nil
	}
	return c.links[Left]
}

// Depth returns the number of cells in the owned carry chain, c included.
func (c *Cell) Depth() int {
	n := 0
	for cur := c; cur != nil; cur = cur.Carry() {
		n++
	}
	return n
}

// PlaceValue returns the exact mixed-radix integer of term t along the carry
// chain: Σ value_t(cell_k) · radix^k. This reads one coefficient, it does not
// collapse the expression.
func (c *Cell) PlaceValue(t Term) *big.Int {
	r := big.NewInt(c.radix)
	acc := new(big.Int)
	// Horner from the far end of the chain inwards.
	var chain []*Cell
	for cur := c; cur != nil; cur = cur.Carry() {
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		acc.Mul(acc, r)
		acc.Add(acc, chain[i].term(t))
	}
	return acc
}

// PlaceValues is PlaceValue for all six terms.
func (c *Cell) PlaceValues() [NumTerms]*big.Int {
	var out [NumTerms]*big.Int
	for _, t := range Terms() {
		out[t] = c.PlaceValue(t)
	}
	return out
}

// Link sets a non-owning relation. Left is reserved for the carry chain and
// returns ErrReservedLink; pass nil to clear a relation.
func (c *Cell) Link(d Direction, other *Cell) error {
	if !d.Valid() {
		return cellErrorf("Link", ErrInvalidDirection)
	}
	if d == Left {
		return cellErrorf("Link", ErrReservedLink)
	}
	c.links[d] = other
	return nil
}

// Linked returns the cell at relation d, or nil.
func (c *Cell) Linked(d Direction) *Cell {
	if !d.Valid() {
		return nil
	}
	return c.links[d]
}

// Owns reports whether the cell owns the cell at relation d.
func (c *Cell) Owns(d Direction) bool {
	return d.Valid() && c.owned&(1<<uint(d)) != 0
}

// Clone returns a deep copy: coefficients, signs, metadata, radix and the
// owned carry chain. Non-owning relations are not copied.
func (c *Cell) Clone() *Cell {
	out := &Cell{
		signs:    c.signs,
		metadata: c.metadata,
		radix:    c.radix,
		collapse: c.collapse,
	}
	for i := range c.coef {
		out.coef[i].Set(&c.coef[i])
	}
	if carry := c.Carry(); carry != nil {
		out.links[Left] = carry.Clone()
		out.owned |= 1 << uint(Left)
	}
	return out
}

// Equal reports value equality: radix, raw coefficients, sign fields and
// carry chains match level by level. Metadata and non-owning relations are
// ignored.
func (c *Cell) Equal(other *Cell) bool {
	if c == nil || other == nil {
		return c == other
	}
	for x, y := c, other; ; x, y = x.Carry(), y.Carry() {
		if x == nil || y == nil {
			return x == y
		}
		if x.radix != y.radix || x.signs != y.signs {
			return false
		}
		for i := range x.coef {
			if x.coef[i].Cmp(&y.coef[i]) != 0 {
				return false
			}
		}
	}
}

// IsZero reports whether every term of every cell in the chain is zero.
func (c *Cell) IsZero() bool {
	for cur := c; cur != nil; cur = cur.Carry() {
		for i := range cur.coef {
			if cur.coef[i].Sign() != 0 {
				return false
			}
		}
	}
	return true
}
