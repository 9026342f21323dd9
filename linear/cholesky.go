// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// Cholesky factors a symmetric positive-definite A as L·Lᵀ and solves
// L·y = b, Lᵀ·x = y.
//
//	L[i][i] = √(A[i][i] − Σₖ L[i][k]²)
//	L[i][j] = (A[i][j] − Σₖ L[i][k]·L[j][k]) / L[j][j]   (j < i)
//
// Errors:
//   - ErrNotPositiveDefinite when A is not symmetric (also matches
//     matrix.ErrAsymmetry) or a radicand is <= 0.
//   - ErrZeroDiagonal when |L[j][j]| is <= the pivot tolerance.
//
// Complexity: O(n³).
func Cholesky(a [][]float64, b []float64, opts ...Option) (CholeskyFactor, error) {
	const method = "Cholesky"
	o := gatherOptions(0, 0, opts...)
	s, err := prepare(method, a, b)
	if err != nil {
		return CholeskyFactor{}, err
	}
	if err = matrix.ValidateSymmetric(s.a); err != nil {
		return CholeskyFactor{}, fmt.Errorf("%s: %w: %w", method, ErrNotPositiveDefinite, err)
	}

	n := s.n
	l := make([][]float64, n)
	for i := range l {
		l[i] = make([]float64, n)
	}

	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = 0
			for k = 0; k < j; k++ {
				sum += l[i][k] * l[j][k]
			}
			if i == j {
				rad := s.a[i][i] - sum
				if rad <= 0 {
					return CholeskyFactor{}, fmt.Errorf("%s: radicand %g at %d: %w", method, rad, i, ErrNotPositiveDefinite)
				}
				l[i][i] = math.Sqrt(rad)
				continue
			}
			if math.Abs(l[j][j]) <= o.pivotTol {
				return CholeskyFactor{}, fmt.Errorf("%s: L[%d][%d]: %w", method, j, j, ErrZeroDiagonal)
			}
			l[i][j] = (s.a[i][j] - sum) / l[j][j]
		}
	}

	y := forwardSubstitute(l, s.b, false)
	lt := make([][]float64, n)
	for i = 0; i < n; i++ {
		lt[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			lt[i][j] = l[j][i]
		}
	}
	x := backSubstitute(lt, y)

	ld, err := newDense(method, l)
	if err != nil {
		return CholeskyFactor{}, err
	}

	return CholeskyFactor{L: ld, Solution: Solution{X: x, Residual: s.residual(x)}}, nil
}
