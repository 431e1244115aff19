// SPDX-License-Identifier: MIT

package cell

import "math/big"

// Term addresses one of the six coefficient slots.
type Term int

// Coefficient slots in expression order: (a / (b / c)) * (d / (e / f)).
const (
	A Term = iota
	B
	C
	D
	E
	F
)

// NumTerms is the number of coefficient slots in a Cell.
const NumTerms = 6

var termNames = [NumTerms]string{"a", "b", "c", "d", "e", "f"}

// Valid reports whether t is one of A..F.
func (t Term) Valid() bool {
	return t >= 0 && int(t) < NumTerms
}

// String returns the lower-case coefficient name ("a".."f").
func (t Term) String() string {
	if !t.Valid() {
		return "?"
	}
	return termNames[t]
}

// Terms lists all slots in order; handy for range loops.
func Terms() [NumTerms]Term {
	return [NumTerms]Term{A, B, C, D, E, F}
}

// Direction names one of the six relations of a Cell.
type Direction int

// Relations. Left doubles as the carry link on a standalone cell.
const (
	Left Direction = iota
	Right
	Up
	Down
	In
	Out
)

// NumDirections is the number of relations a Cell carries.
const NumDirections = 6

var directionNames = [NumDirections]string{"left", "right", "up", "down", "in", "out"}

// String returns the lower-case relation name.
func (d Direction) String() string {
	if !d.Valid() {
		return "?"
	}
	return directionNames[d]
}

// Valid reports whether d is one of Left..Out.
func (d Direction) Valid() bool {
	return d >= 0 && int(d) < NumDirections
}

// Spatial reports whether d is one of the four mesh directions.
func (d Direction) Spatial() bool {
	return d == Left || d == Right || d == Up || d == Down
}

// Opposite returns the reverse mesh direction (In↔Out as well).
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	case In:
		return Out
	default:
		return In
	}
}

// ParseDirection maps a relation name back to its Direction.
func ParseDirection(s string) (Direction, error) {
	for i, n := range directionNames {
		if n == s {
			return Direction(i), nil
		}
	}
	return 0, ErrInvalidDirection
}

// Defaults.
const (
	// DefaultRadix is the carry base used when WithRadix is not given.
	DefaultRadix int64 = 10

	// signMask covers the six valid sign bits.
	signMask uint8 = 1<<NumTerms - 1
)

// Cell is the exact numeric unit. The zero value is not usable; build cells
// with New or FromValues.
//
// coef holds raw magnitudes; the effective value of term i is coef[i]
// negated when bit i of signs is set. links[Left] is owned when the owned
// mask has bit Left set (carry chain); every other link is a plain
// reference the cell never copies.
type Cell struct {
	coef     [NumTerms]big.Int
	signs    uint8
	metadata uint64
	radix    int64
	collapse bool

	links [NumDirections]*Cell
	owned uint8
}

// Option configures a Cell at construction time.
type Option func(*options)

type options struct {
	coef     [NumTerms]*big.Int
	signs    uint8
	metadata uint64
	radix    int64
	collapse bool
}

func defaultOptions() options {
	return options{radix: DefaultRadix}
}

// WithCoefficients sets a..f from int64 values. A negative value is stored
// as its magnitude with the sign bit flipped, so the effective value
// (value, negated when WithSigns sets the bit) is preserved.
func WithCoefficients(a, b, c, d, e, f int64) Option {
	return func(o *options) {
		for i, v := range [NumTerms]int64{a, b, c, d, e, f} {
			o.coef[i] = big.NewInt(v)
		}
	}
}

// WithCoefficient sets a single slot.
func WithCoefficient(t Term, v int64) Option {
	return func(o *options) {
		o.coef[t] = big.NewInt(v)
	}
}

// WithBigCoefficients sets a..f from big integers; nil entries stay zero.
// The values are copied.
func WithBigCoefficients(vals [NumTerms]*big.Int) Option {
	return func(o *options) {
		for i, v := range vals {
			if v != nil {
				o.coef[i] = new(big.Int).Set(v)
			}
		}
	}
}

// WithSigns sets the 6-bit sign field (bit i = term i negative).
func WithSigns(bits uint8) Option {
	return func(o *options) { o.signs = bits }
}

// WithMetadata seeds the transformation counter.
func WithMetadata(m uint64) Option {
	return func(o *options) { o.metadata = m }
}

// WithRadix sets the carry base. Must be > 1.
func WithRadix(r int64) Option {
	return func(o *options) { o.radix = r }
}

// WithCollapse opts the cell into Evaluate.
func WithCollapse(allow bool) Option {
	return func(o *options) { o.collapse = allow }
}
