// SPDX-License-Identifier: MIT

package layer

import (
	"math/big"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/numcell/cell"
)

// New builds a layer over the given key sets. Initial weights, biases and
// bases are validated against the sets before any cell is created.
//
// Errors: ErrEmptyKeys, ErrDuplicateKey, ErrUnknownKey, ErrInvalidBase,
// ErrInvalidScale.
func New(inputs, outputs []string, opts ...Option) (*Layer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		return nil, layerErrorf("New", ErrInvalidScale)
	}
	if o.radix <= 1 {
		return nil, layerErrorf("New", ErrInvalidBase)
	}
	inIdx, err := indexKeys(inputs)
	if err != nil {
		return nil, layerErrorf("New: inputs", err)
	}
	outIdx, err := indexKeys(outputs)
	if err != nil {
		return nil, layerErrorf("New: outputs", err)
	}

	l := &Layer{
		inputs:  slices.Clone(inputs),
		outputs: slices.Clone(outputs),
		inIdx:   inIdx,
		outIdx:  outIdx,
		weights: make([][]*cell.Cell, len(outputs)),
		biases:  make([]*cell.Cell, len(outputs)),
		bases:   make([]*big.Int, len(outputs)),
		scale:   big.NewInt(o.scale),
		radix:   o.radix,
		log:     o.logger,
	}

	for out, rows := range o.weights {
		if _, ok := outIdx[out]; !ok {
			return nil, keyErrorf("New: weights", out, ErrUnknownKey)
		}
		for in := range rows {
			if _, ok := inIdx[in]; !ok {
				return nil, keyErrorf("New: weights", in, ErrUnknownKey)
			}
		}
	}
	for out := range o.biases {
		if _, ok := outIdx[out]; !ok {
			return nil, keyErrorf("New: biases", out, ErrUnknownKey)
		}
	}
	for out, b := range o.bases {
		oi, ok := outIdx[out]
		if !ok {
			return nil, keyErrorf("New: bases", out, ErrUnknownKey)
		}
		if b <= 0 {
			return nil, keyErrorf("New: bases", out, ErrInvalidBase)
		}
		l.bases[oi] = new(big.Int).Mul(big.NewInt(b), l.scale)
	}

	for oi, out := range l.outputs {
		l.weights[oi] = make([]*cell.Cell, len(l.inputs))
		for ii, in := range l.inputs {
			w := DefaultWeight
			if v, ok := o.weights[out][in]; ok {
				w = v
			}
			if l.weights[oi][ii], err = l.fixed(big.NewInt(w)); err != nil {
				return nil, layerErrorf("New", err)
			}
		}
		b := DefaultBias
		if v, ok := o.biases[out]; ok {
			b = v
		}
		if l.biases[oi], err = l.fixed(big.NewInt(b)); err != nil {
			return nil, layerErrorf("New", err)
		}
	}

	l.log.Debug("layer built",
		zap.Strings("inputs", l.inputs),
		zap.Strings("outputs", l.outputs),
		zap.Int64("scale", o.scale),
		zap.Int64("radix", l.radix))
	return l, nil
}

// indexKeys maps each key to its position, rejecting empty and repeated keys.
func indexKeys(keys []string) (map[string]int, error) {
	if len(keys) == 0 {
		return nil, ErrEmptyKeys
	}
	idx := make(map[string]int, len(keys))
	for i, k := range keys {
		if k == "" {
			return nil, ErrEmptyKeys
		}
		if _, dup := idx[k]; dup {
			return nil, keyErrorf("indexKeys", k, ErrDuplicateKey)
		}
		idx[k] = i
	}
	return idx, nil
}

// fixed returns a cell whose a-term holds v·S.
func (l *Layer) fixed(v *big.Int) (*cell.Cell, error) {
	return l.raw(new(big.Int).Mul(v, l.scale))
}

// raw returns a cell whose a-term holds v, already in 1/S units.
func (l *Layer) raw(v *big.Int) (*cell.Cell, error) {
	var vals [cell.NumTerms]*big.Int
	vals[cell.A] = v
	return cell.FromValues(l.radix, vals)
}

// Inputs returns the input keys in configured order.
func (l *Layer) Inputs() []string { return slices.Clone(l.inputs) }

// Outputs returns the output keys in configured order.
func (l *Layer) Outputs() []string { return slices.Clone(l.outputs) }

// Scale returns the fixed-point scale S.
func (l *Layer) Scale() int64 { return l.scale.Int64() }

// Radix returns the carry base of the layer's cells.
func (l *Layer) Radix() int64 { return l.radix }

// Steps returns the number of completed updates.
func (l *Layer) Steps() uint64 { return l.steps }

// Weight returns a copy of the weight cell for (out, in).
func (l *Layer) Weight(out, in string) (*cell.Cell, error) {
	oi, ok := l.outIdx[out]
	if !ok {
		return nil, keyErrorf("Weight", out, ErrUnknownKey)
	}
	ii, ok := l.inIdx[in]
	if !ok {
		return nil, keyErrorf("Weight", in, ErrUnknownKey)
	}
	return l.weights[oi][ii].Clone(), nil
}

// Bias returns a copy of the bias cell for out.
func (l *Layer) Bias(out string) (*cell.Cell, error) {
	oi, ok := l.outIdx[out]
	if !ok {
		return nil, keyErrorf("Bias", out, ErrUnknownKey)
	}
	return l.biases[oi].Clone(), nil
}

// Snapshot is the debug view of a layer. Weights and biases are the exact
// a-term place values in 1/S units.
type Snapshot struct {
	Inputs  []string                     `yaml:"inputs" json:"inputs"`
	Outputs []string                     `yaml:"outputs" json:"outputs"`
	Radix   int64                        `yaml:"radix" json:"radix"`
	Scale   int64                        `yaml:"scale" json:"scale"`
	Steps   uint64                       `yaml:"steps" json:"steps"`
	Bases   map[string]string            `yaml:"bases,omitempty" json:"bases,omitempty"`
	Weights map[string]map[string]string `yaml:"weights" json:"weights"`
	Biases  map[string]string            `yaml:"biases" json:"biases"`
	Cells   map[string]cell.Snapshot     `yaml:"cells,omitempty" json:"cells,omitempty"`
}

// Dump captures a Snapshot. With cells set, every weight and bias cell is
// included in full under "w/<out>/<in>" and "b/<out>".
func (l *Layer) Dump(cells bool) Snapshot {
	s := Snapshot{
		Inputs:  l.Inputs(),
		Outputs: l.Outputs(),
		Radix:   l.radix,
		Scale:   l.Scale(),
		Steps:   l.steps,
		Weights: make(map[string]map[string]string, len(l.outputs)),
		Biases:  make(map[string]string, len(l.outputs)),
	}
	if cells {
		s.Cells = make(map[string]cell.Snapshot)
	}
	for oi, out := range l.outputs {
		row := make(map[string]string, len(l.inputs))
		for ii, in := range l.inputs {
			w := l.weights[oi][ii]
			row[in] = w.PlaceValue(cell.A).String()
			if cells {
				s.Cells["w/"+out+"/"+in] = w.Dump()
			}
		}
		s.Weights[out] = row
		s.Biases[out] = l.biases[oi].PlaceValue(cell.A).String()
		if cells {
			s.Cells["b/"+out] = l.biases[oi].Dump()
		}
		if m := l.bases[oi]; m != nil {
			if s.Bases == nil {
				s.Bases = make(map[string]string)
			}
			s.Bases[out] = m.String()
		}
	}
	return s
}
