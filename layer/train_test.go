// SPDX-License-Identifier: MIT

package layer_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/numcell/layer"
)

// scalar returns a one-input, one-output layer with weight 1 and bias 0.
func scalar(t *testing.T, opts ...layer.Option) *layer.Layer {
	t.Helper()
	opts = append([]layer.Option{layer.WithInitialBiases(map[string]int64{"y": 0})}, opts...)
	l, err := layer.New([]string{"x"}, []string{"y"}, opts...)
	require.NoError(t, err)
	return l
}

// TestTrainStep_Convergence uses input 2, target 10, S = 1000 and
// lr = 100 (0.1): lr·x² = 0.4 is inside the stability bound.
func TestTrainStep_Convergence(t *testing.T) {
	l := scalar(t, layer.WithScale(1000))
	in, target := map[string]int64{"x": 2}, map[string]int64{"y": 10}

	// Exact fixed-point trajectory; truncation stalls it at 4/1000.
	want := []int64{8000, 4000, 2000, 1000, 500, 250, 125, 63, 33, 18, 11, 6, 4, 4, 4}
	var got []int64
	prev := new(big.Int)
	for i := range want {
		errs, err := l.TrainStep(in, target, 100)
		require.NoError(t, err)
		e := errs["y"]
		if i > 0 {
			require.LessOrEqual(t, new(big.Int).Abs(e).Cmp(new(big.Int).Abs(prev)), 0, "step %d", i)
		}
		prev = e
		got = append(got, e.Int64())
	}
	require.Equal(t, want, got)
	require.Equal(t, uint64(len(want)), l.Steps())

	out, err := l.Forward(in)
	require.NoError(t, err)
	require.InDelta(t, 10000, out["y"].PlaceValue(0).Int64(), 10)
}

// TestTrainStep_Divergence uses lr = 1 on the same example: lr·x² = 4
// breaks the bound and the error grows by a factor of -4 each step.
func TestTrainStep_Divergence(t *testing.T) {
	l := scalar(t)
	in, target := map[string]int64{"x": 2}, map[string]int64{"y": 10}

	want := []int64{8, -32, 128, -512, 2048, -8192}
	prev := big.NewInt(0)
	for i, w := range want {
		errs, err := l.TrainStep(in, target, 1)
		require.NoError(t, err)
		e := errs["y"]
		require.Equal(t, big.NewInt(w), e, "step %d", i)
		require.Positive(t, new(big.Int).Abs(e).Cmp(new(big.Int).Abs(prev)), "|error| must grow")
		prev = e
	}
}

func TestTrainStep_LongRunStaysExact(t *testing.T) {
	// Divergence with big integers: values far beyond int64 are kept exactly.
	l := scalar(t)
	in, target := map[string]int64{"x": 2}, map[string]int64{"y": 10}
	var last *big.Int
	for i := 0; i < 40; i++ {
		errs, err := l.TrainStep(in, target, 1)
		require.NoError(t, err)
		last = errs["y"]
	}
	// error_k = 8·(-4)^k
	want := new(big.Int).Exp(big.NewInt(4), big.NewInt(39), nil)
	want.Mul(want, big.NewInt(-8))
	require.Equal(t, 0, want.Cmp(last))
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := scalar(t, layer.WithLogger(zap.New(core)))

	_, err := l.TrainStep(map[string]int64{"x": 2}, map[string]int64{"y": 10}, 1)
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("layer built").Len())
	require.Equal(t, 1, logs.FilterMessage("layer backward").Len())
	updates := logs.FilterMessage("layer update").All()
	require.Len(t, updates, 1)
	require.Equal(t, uint64(1), updates[0].ContextMap()["step"])
	require.Equal(t, int64(1), updates[0].ContextMap()["lr"])
}
