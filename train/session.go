// SPDX-License-Identifier: MIT

package train

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/numcell/cell"
	"github.com/katalvlaran/numcell/config"
	"github.com/katalvlaran/numcell/layer"
)

// Session trains a single layer.
type Session struct {
	layer *layer.Layer
	log   *zap.Logger
}

// NewSession wraps l. A nil logger is replaced by a no-op one.
func NewSession(l *layer.Layer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{layer: l, log: logger}
}

// Layer returns the layer being trained.
func (s *Session) Layer() *layer.Layer { return s.layer }

// Epoch runs one TrainStep per example in order and returns the errors
// measured before each update. ctx is checked before every step.
func (s *Session) Epoch(ctx context.Context, examples []config.Example, lr int64) ([]map[string]*big.Int, error) {
	out := make([]map[string]*big.Int, 0, len(examples))
	for i, ex := range examples {
		if err := ctx.Err(); err != nil {
			return out, trainErrorf("Epoch", err)
		}
		errs, err := s.layer.TrainStep(ex.Input, ex.Target, lr)
		if err != nil {
			return out, trainErrorf("Epoch", err)
		}
		if ce := s.log.Check(zap.DebugLevel, "train step"); ce != nil {
			ce.Write(
				zap.Int("example", i),
				zap.Uint64("step", s.layer.Steps()),
				zap.Stringer("abs_error", TotalAbs(errs)))
		}
		out = append(out, errs)
	}
	return out, nil
}

// Residuals returns target·S − output for every example without training.
func (s *Session) Residuals(examples []config.Example) ([]map[string]*big.Int, error) {
	scale := big.NewInt(s.layer.Scale())
	out := make([]map[string]*big.Int, 0, len(examples))
	for _, ex := range examples {
		y, err := s.layer.Forward(ex.Input)
		if err != nil {
			return nil, trainErrorf("Residuals", err)
		}
		res := make(map[string]*big.Int, len(y))
		for k, c := range y {
			r := new(big.Int).Mul(big.NewInt(ex.Target[k]), scale)
			res[k] = r.Sub(r, c.PlaceValue(cell.A))
		}
		out = append(out, res)
	}
	return out, nil
}

// TotalAbs sums |e| over every entry of errs.
func TotalAbs(errs ...map[string]*big.Int) *big.Int {
	sum := new(big.Int)
	var abs big.Int
	for _, m := range errs {
		for _, e := range m {
			sum.Add(sum, abs.Abs(e))
		}
	}
	return sum
}
