// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/katalvlaran/numcell/cell"
)

// Forward computes, for every output, bias + Σ weight·input[in] in 1/S
// units. Inputs absent from the map count as 0. When the output has a base,
// the result is reduced modulo base·S term by term.
//
// Errors: ErrUnknownKey for an input key outside the configured set.
// Complexity: O(|outputs|·|inputs|) cell operations.
func (l *Layer) Forward(input map[string]int64) (map[string]*cell.Cell, error) {
	x, err := l.inputVector("Forward", input)
	if err != nil {
		return nil, err
	}
	return l.forward(x)
}

// inputVector orders input by input index after checking every key.
func (l *Layer) inputVector(tag string, input map[string]int64) ([]int64, error) {
	x := make([]int64, len(l.inputs))
	for k, v := range input {
		ii, ok := l.inIdx[k]
		if !ok {
			return nil, keyErrorf(tag, k, ErrUnknownKey)
		}
		x[ii] = v
	}
	return x, nil
}

func (l *Layer) forward(x []int64) (map[string]*cell.Cell, error) {
	out := make(map[string]*cell.Cell, len(l.outputs))
	for oi, key := range l.outputs {
		acc := l.biases[oi].Clone()
		for ii, w := range l.weights[oi] {
			term := w.Clone()
			if err := term.ScaleByInt(x[ii]); err != nil {
				return nil, layerErrorf("Forward", err)
			}
			if err := acc.Add(term); err != nil {
				return nil, layerErrorf("Forward", err)
			}
		}
		if m := l.bases[oi]; m != nil {
			if err := acc.ReduceMod(m); err != nil {
				return nil, layerErrorf("Forward", err)
			}
		}
		out[key] = acc
	}
	return out, nil
}
