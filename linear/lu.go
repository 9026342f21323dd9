// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"math"
)

// LU computes the Doolittle factorization A = L·U with unit diagonal on L
// (no pivoting) and solves L·y = b, U·x = y.
//
// Implementation:
//   - Stage 1: copy and validate A and b; set diag(L) = 1.
//   - Stage 2: for i = 0..n-1 build row i of U, check the pivot U[i][i],
//     then build column i of L.
//   - Stage 3: forward substitution (unit diagonal), back substitution.
//
// Errors:
//   - ErrSingular when |U[i][i]| <= the pivot tolerance. Matrices that need a
//     row exchange (e.g. a zero leading entry) fail here even if regular;
//     use GaussElimination for those.
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(a [][]float64, b []float64, opts ...Option) (LUFactors, error) {
	const method = "LU"
	o := gatherOptions(0, 0, opts...)
	s, err := prepare(method, a, b)
	if err != nil {
		return LUFactors{}, err
	}

	n := s.n
	l := make([][]float64, n)
	u := make([][]float64, n)
	for i := 0; i < n; i++ {
		l[i] = make([]float64, n)
		u[i] = make([]float64, n)
		l[i][i] = 1
	}

	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l[i][k] * u[k][j]
			}
			u[i][j] = s.a[i][j] - sum
		}
		if math.Abs(u[i][i]) <= o.pivotTol {
			return LUFactors{}, fmt.Errorf("%s: U[%d][%d] = %g: %w", method, i, i, u[i][i], ErrSingular)
		}
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += l[j][k] * u[k][i]
			}
			l[j][i] = (s.a[j][i] - sum) / u[i][i]
		}
	}

	y := forwardSubstitute(l, s.b, true)
	x := backSubstitute(u, y)

	ld, err := newDense(method, l)
	if err != nil {
		return LUFactors{}, err
	}
	ud, err := newDense(method, u)
	if err != nil {
		return LUFactors{}, err
	}

	return LUFactors{L: ld, U: ud, Solution: Solution{X: x, Residual: s.residual(x)}}, nil
}

// forwardSubstitute solves the lower-triangular system l·y = b. With unit set
// the diagonal is taken as 1.
func forwardSubstitute(l [][]float64, b []float64, unit bool) []float64 {
	n := len(l)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= l[i][k] * y[k]
		}
		if unit {
			y[i] = sum
		} else {
			y[i] = sum / l[i][i]
		}
	}

	return y
}
