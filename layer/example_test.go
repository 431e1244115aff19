// SPDX-License-Identifier: MIT

package layer_test

import (
	"fmt"

	"github.com/katalvlaran/numcell/cell"
	"github.com/katalvlaran/numcell/layer"
)

// ExampleLayer_TrainStep fits y = w·x + b to a single point with a
// fixed-point learning rate of 0.1.
func ExampleLayer_TrainStep() {
	l, _ := layer.New([]string{"x"}, []string{"y"},
		layer.WithScale(1000),
		layer.WithInitialBiases(map[string]int64{"y": 0}))

	for i := 0; i < 3; i++ {
		errs, _ := l.TrainStep(map[string]int64{"x": 2}, map[string]int64{"y": 10}, 100)
		fmt.Println("error:", errs["y"])
	}
	w, _ := l.Weight("y", "x")
	b, _ := l.Bias("y")
	fmt.Printf("w = %s/1000, b = %s/1000\n", w.PlaceValue(cell.A), b.PlaceValue(cell.A))

	// Output:
	// error: 8000
	// error: 4000
	// error: 2000
	// w = 3800/1000, b = 1400/1000
}

// ExampleLayer_Forward shows a modulus applied to one output.
func ExampleLayer_Forward() {
	l, _ := layer.New([]string{"a", "b"}, []string{"x"},
		layer.WithBases(map[string]int64{"x": 7}),
		layer.WithInitialBiases(map[string]int64{"x": 0}))

	out, _ := l.Forward(map[string]int64{"a": 5, "b": 4})
	fmt.Println(out["x"].PlaceValue(cell.A))

	// Output:
	// 2
}
