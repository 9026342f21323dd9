// SPDX-License-Identifier: MIT
package interp_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/interp"
)

func ExampleNewtonDividedDifference() {
	xs := []float64{1, 2, 4}
	ys := []float64{1, 4, 16}
	v, _ := interp.NewtonDividedDifference(xs, ys, 3)
	fmt.Println(v)
	// Output:
	// 9
}

func ExampleCubicSpline() {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1, 0}
	v, _ := interp.CubicSpline(xs, ys, 1)
	_, err := interp.CubicSpline(xs, ys, 5)
	fmt.Println(v)
	fmt.Println(err)
	// Output:
	// 1
	// CubicSpline: x=5 not in [0, 2]: interp: query outside the interpolation range
}
