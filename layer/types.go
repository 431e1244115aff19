// SPDX-License-Identifier: MIT

package layer

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/numcell/cell"
)

const (
	// DefaultScale keeps weights in whole units.
	DefaultScale int64 = 1
	// DefaultWeight is the initial value of every weight not set explicitly.
	DefaultWeight int64 = 1
	// DefaultBias is the initial value of every bias not set explicitly.
	DefaultBias int64 = 1
)

// Option configures a Layer.
type Option func(*options)

type options struct {
	bases   map[string]int64
	weights map[string]map[string]int64
	biases  map[string]int64
	scale   int64
	radix   int64
	logger  *zap.Logger
}

func defaultOptions() options {
	return options{
		scale:  DefaultScale,
		radix:  cell.DefaultRadix,
		logger: zap.NewNop(),
	}
}

// WithBases sets a modulus per output key. Forward reduces that output
// modulo base·S. Outputs without an entry are not reduced.
func WithBases(bases map[string]int64) Option {
	return func(o *options) { o.bases = bases }
}

// WithInitialWeights sets weights in real units, keyed weights[out][in].
// Pairs left out start at DefaultWeight.
func WithInitialWeights(w map[string]map[string]int64) Option {
	return func(o *options) { o.weights = w }
}

// WithInitialBiases sets biases in real units. Outputs left out start at
// DefaultBias.
func WithInitialBiases(b map[string]int64) Option {
	return func(o *options) { o.biases = b }
}

// WithScale sets the fixed-point scale S.
func WithScale(s int64) Option {
	return func(o *options) { o.scale = s }
}

// WithRadix sets the carry base of every weight and bias cell.
func WithRadix(r int64) Option {
	return func(o *options) { o.radix = r }
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Layer is a linear layer over number cells.
// weights[o][i] and biases[o] are indexed by position in outputs/inputs.
// bases[o] is nil when output o is not reduced.
type Layer struct {
	inputs  []string
	outputs []string
	inIdx   map[string]int
	outIdx  map[string]int

	weights [][]*cell.Cell
	biases  []*cell.Cell
	bases   []*big.Int

	scale *big.Int
	radix int64
	steps uint64

	pending *gradient
	log     *zap.Logger
}

// gradient is what Backward leaves for Update.
type gradient struct {
	input []int64    // by input index, missing keys as 0
	errs  []*big.Int // by output index, in 1/S units
}
