// SPDX-License-Identifier: MIT

package layer

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/numcell/cell"
)

// Backward measures error[out] = target[out]·S − output[out] on the a-term
// place value and stores it, together with input, as the pending gradient
// for Update. The returned errors are in 1/S units.
//
// Errors: ErrUnknownKey for a key outside the configured sets, ErrMissingKey
// when a target or output is absent (or nil) for some output key. Nothing is
// recorded on failure.
func (l *Layer) Backward(
	input, target map[string]int64,
	output map[string]*cell.Cell,
) (map[string]*big.Int, error) {
	x, err := l.inputVector("Backward", input)
	if err != nil {
		return nil, err
	}
	for k := range target {
		if _, ok := l.outIdx[k]; !ok {
			return nil, keyErrorf("Backward: target", k, ErrUnknownKey)
		}
	}
	for k := range output {
		if _, ok := l.outIdx[k]; !ok {
			return nil, keyErrorf("Backward: output", k, ErrUnknownKey)
		}
	}

	errs := make([]*big.Int, len(l.outputs))
	for oi, key := range l.outputs {
		t, ok := target[key]
		if !ok {
			return nil, keyErrorf("Backward: target", key, ErrMissingKey)
		}
		y := output[key]
		if y == nil {
			return nil, keyErrorf("Backward: output", key, ErrMissingKey)
		}
		e := new(big.Int).Mul(big.NewInt(t), l.scale)
		errs[oi] = e.Sub(e, y.PlaceValue(cell.A))
	}

	l.pending = &gradient{input: x, errs: errs}
	res := l.errorMap(errs)
	if ce := l.log.Check(zap.DebugLevel, "layer backward"); ce != nil {
		fields := make([]zap.Field, 0, len(l.outputs))
		for oi, key := range l.outputs {
			fields = append(fields, zap.Stringer(key, errs[oi]))
		}
		ce.Write(zap.Dict("errors", fields...))
	}
	return res, nil
}

// Update applies the pending gradient with learning rate lr (in 1/S units):
//
//	weight[out][in] += trunc(lr·err[out]·input[in] / S)
//	bias[out]       += trunc(lr·err[out] / S)
//
// Each delta is built as its own cell and merged with Add, so nothing is lost
// to overflow. The pending gradient is consumed.
//
// Errors: ErrNoGradient when Backward has not been called since the last
// Update.
func (l *Layer) Update(lr int64) error {
	g := l.pending
	if g == nil {
		return layerErrorf("Update", ErrNoGradient)
	}
	rate := big.NewInt(lr)

	// Build every delta first so a failure leaves the layer untouched.
	wd := make([][]*cell.Cell, len(l.outputs))
	bd := make([]*cell.Cell, len(l.outputs))
	for oi := range l.outputs {
		step := new(big.Int).Mul(rate, g.errs[oi])
		wd[oi] = make([]*cell.Cell, len(l.inputs))
		for ii := range l.inputs {
			v := new(big.Int).Mul(step, big.NewInt(g.input[ii]))
			d, err := l.raw(v.Quo(v, l.scale))
			if err != nil {
				return layerErrorf("Update", err)
			}
			wd[oi][ii] = d
		}
		d, err := l.raw(new(big.Int).Quo(step, l.scale))
		if err != nil {
			return layerErrorf("Update", err)
		}
		bd[oi] = d
	}

	for oi := range l.outputs {
		for ii, w := range l.weights[oi] {
			if err := w.Add(wd[oi][ii]); err != nil {
				return layerErrorf("Update", err)
			}
		}
		if err := l.biases[oi].Add(bd[oi]); err != nil {
			return layerErrorf("Update", err)
		}
	}
	l.pending = nil
	l.steps++
	l.log.Debug("layer update", zap.Uint64("step", l.steps), zap.Int64("lr", lr))
	return nil
}

// TrainStep runs Forward, Backward on that fresh output, then Update. It
// returns the errors measured before the update.
func (l *Layer) TrainStep(input, target map[string]int64, lr int64) (map[string]*big.Int, error) {
	out, err := l.Forward(input)
	if err != nil {
		return nil, layerErrorf("TrainStep", err)
	}
	errs, err := l.Backward(input, target, out)
	if err != nil {
		return nil, layerErrorf("TrainStep", err)
	}
	if err := l.Update(lr); err != nil {
		return nil, layerErrorf("TrainStep", err)
	}
	return errs, nil
}

// Pending reports whether a gradient is waiting for Update.
func (l *Layer) Pending() bool { return l.pending != nil }

func (l *Layer) errorMap(errs []*big.Int) map[string]*big.Int {
	m := make(map[string]*big.Int, len(errs))
	for oi, key := range l.outputs {
		m[key] = new(big.Int).Set(errs[oi])
	}
	return m
}
