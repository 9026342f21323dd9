// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// ExampleMul multiplies a 2×2 matrix by the identity and by itself.
func ExampleMul() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	id, _ := matrix.NewIdentity(2)

	same, _ := matrix.Mul(a, id)
	sq, _ := matrix.Mul(a, a)
	fmt.Print(same)
	fmt.Print(sq)
	// Output:
	// [1, 2]
	// [3, 4]
	// [7, 10]
	// [15, 22]
}

// ExampleResidual checks a candidate solution of a 2×2 system.
func ExampleResidual() {
	a := [][]float64{{4, 1}, {2, 3}}
	r, _ := matrix.Residual(a, []float64{1, 2}, []float64{6, 8})
	fmt.Println(r, matrix.NormInf(r))
	// Output:
	// [0 0] 0
}
