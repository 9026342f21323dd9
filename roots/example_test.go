// SPDX-License-Identifier: MIT
package roots_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/roots"
)

// ExampleBisection finds √2 as the root of x² − 2 on [0, 2].
func ExampleBisection() {
	f := expr.MustCompile("x^2 - 2")
	res, err := roots.Bisection(f, 0, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("root=%.5f converged=%v\n", res.Root, res.Converged)
	fmt.Printf("first step: xl=%g xr=%g xm=%g error=%g%%\n",
		res.Trace[0].Lower, res.Trace[0].Upper, res.Trace[0].X, res.Trace[0].Err)
	// Output:
	// root=1.41421 converged=true
	// first step: xl=0 xr=2 xm=1 error=100%
}

// ExampleSecant solves x² − 7 = 0 from x₀ = 2, x₁ = 3.
func ExampleSecant() {
	res, _ := roots.Secant(expr.MustCompile("x^2 - 7"), 2, 3)
	fmt.Printf("%.7f\n", res.Root)
	// Output:
	// 2.6457513
}
