// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// GaussElimination solves A·x = b by forward elimination with partial
// pivoting followed by back substitution.
//
// Implementation:
//   - Stage 1: copy and validate [A|b].
//   - Stage 2: for each column k pick the row with max |a[i][k]| (i >= k),
//     swap it up and eliminate below.
//   - Stage 3: back substitution.
//
// Errors:
//   - ErrSingular when the best pivot magnitude is <= the pivot tolerance.
//   - matrix sentinels for malformed input (ErrDimensionMismatch, ErrRaggedRows, ErrNaNInf).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func GaussElimination(a [][]float64, b []float64, opts ...Option) (Solution, error) {
	const method = "GaussElimination"
	o := gatherOptions(0, 0, opts...)
	s, err := prepare(method, a, b)
	if err != nil {
		return Solution{}, err
	}

	if err = forwardEliminate(method, s.a, s.b, o.pivotTol, nil); err != nil {
		return Solution{}, err
	}
	x := backSubstitute(s.a, s.b)

	return Solution{X: x, Residual: s.residual(x)}, nil
}

// forwardEliminate reduces a to upper-triangular form in place with partial
// pivoting, applying the same row operations to b. When swaps is non-nil it
// counts row exchanges.
func forwardEliminate(method string, a [][]float64, b []float64, pivotTol float64, swaps *int) error {
	n := len(a)
	var (
		i, j, k, p int
		best, f    float64
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a[k][k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a[i][k]); v > best {
				p, best = i, v
			}
		}
		if best <= pivotTol {
			return fmt.Errorf("%s: column %d: %w", method, k, ErrSingular)
		}
		if p != k {
			a[k], a[p] = a[p], a[k]
			if b != nil {
				b[k], b[p] = b[p], b[k]
			}
			if swaps != nil {
				*swaps++
			}
		}
		for i = k + 1; i < n; i++ {
			f = a[i][k] / a[k][k]
			if f == 0 {
				continue
			}
			for j = k; j < n; j++ {
				a[i][j] -= f * a[k][j]
			}
			if b != nil {
				b[i] -= f * b[k]
			}
		}
	}

	return nil
}

// backSubstitute solves the upper-triangular system u·x = y.
func backSubstitute(u [][]float64, y []float64) []float64 {
	n := len(u)
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= u[i][j] * x[j]
		}
		x[i] = sum / u[i][i]
	}

	return x
}

// GaussJordan reduces [A|b] to [I|x] and reads x from the last column.
// Rows are not exchanged, so a zero (<= pivot tolerance) diagonal entry met
// during the reduction is reported as ErrSingular even when a row exchange
// would have avoided it.
//
// Complexity: O(n³).
func GaussJordan(a [][]float64, b []float64, opts ...Option) (Solution, error) {
	const method = "GaussJordan"
	o := gatherOptions(0, 0, opts...)
	s, err := prepare(method, a, b)
	if err != nil {
		return Solution{}, err
	}

	n := s.n
	var i, j, k int
	for k = 0; k < n; k++ {
		pivot := s.a[k][k]
		if math.Abs(pivot) <= o.pivotTol {
			return Solution{}, fmt.Errorf("%s: a[%d][%d]: %w", method, k, k, ErrSingular)
		}
		for j = k; j < n; j++ {
			s.a[k][j] /= pivot
		}
		s.b[k] /= pivot
		for i = 0; i < n; i++ {
			if i == k || s.a[i][k] == 0 {
				continue
			}
			f := s.a[i][k]
			for j = k; j < n; j++ {
				s.a[i][j] -= f * s.a[k][j]
			}
			s.b[i] -= f * s.b[k]
		}
	}

	return Solution{X: s.b, Residual: s.residual(s.b)}, nil
}

// Inverse computes A⁻¹ by Gauss-Jordan reduction of [A|I] with partial
// pivoting, then x = A⁻¹·b.
//
// Errors: ErrSingular when no usable pivot exists in a column.
// Complexity: O(n³).
func Inverse(a [][]float64, b []float64, opts ...Option) (Inversion, error) {
	const method = "Inverse"
	o := gatherOptions(0, 0, opts...)
	s, err := prepare(method, a, b)
	if err != nil {
		return Inversion{}, err
	}

	n := s.n
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return Inversion{}, linearErrorf(method, err)
	}
	idRows, err := matrix.ToRows(id)
	if err != nil {
		return Inversion{}, linearErrorf(method, err)
	}
	aug, err := matrix.Augment(s.a, idRows)
	if err != nil {
		return Inversion{}, linearErrorf(method, err)
	}

	var (
		i, j, k, p int
		best, f    float64
		w          = 2 * n
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(aug[k][k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(aug[i][k]); v > best {
				p, best = i, v
			}
		}
		if best <= o.pivotTol {
			return Inversion{}, fmt.Errorf("%s: column %d: %w", method, k, ErrSingular)
		}
		aug[k], aug[p] = aug[p], aug[k]

		f = aug[k][k]
		for j = k; j < w; j++ {
			aug[k][j] /= f
		}
		for i = 0; i < n; i++ {
			if i == k {
				continue
			}
			f = aug[i][k]
			if f == 0 {
				continue
			}
			for j = k; j < w; j++ {
				aug[i][j] -= f * aug[k][j]
			}
		}
	}

	inv := make([][]float64, n)
	for i = range inv {
		inv[i] = aug[i][n:]
	}
	d, err := newDense(method, inv)
	if err != nil {
		return Inversion{}, err
	}
	x, err := matVec(method, d, s.rhs)
	if err != nil {
		return Inversion{}, err
	}

	return Inversion{Inverse: d, Solution: Solution{X: x, Residual: s.residual(x)}}, nil
}

// Determinant returns det(A) by elimination with partial pivoting.
// A column without a usable pivot yields 0.
func Determinant(a [][]float64, opts ...Option) (float64, error) {
	const method = "Determinant"
	o := gatherOptions(0, 0, opts...)
	s, err := prepare(method, a, make([]float64, len(a)))
	if err != nil {
		return 0, err
	}

	return determinant(s.a, o.pivotTol), nil
}

// determinant consumes a (it is reduced in place).
func determinant(a [][]float64, pivotTol float64) float64 {
	var swaps int
	if err := forwardEliminate("", a, nil, pivotTol, &swaps); err != nil {
		return 0
	}
	det := 1.0
	for i := range a {
		det *= a[i][i]
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det
}

// Cramer solves A·x = b by x_i = det(A_i)/det(A), where A_i is A with column
// i replaced by b.
//
// Errors: ErrSingular when |det(A)| <= the pivot tolerance.
// Complexity: O(n⁴).
func Cramer(a [][]float64, b []float64, opts ...Option) (Solution, error) {
	const method = "Cramer"
	o := gatherOptions(0, 0, opts...)
	s, err := prepare(method, a, b)
	if err != nil {
		return Solution{}, err
	}

	det := determinant(cloneRows(s.a), o.pivotTol)
	if math.Abs(det) <= o.pivotTol {
		return Solution{}, fmt.Errorf("%s: det(A) = %g: %w", method, det, ErrSingular)
	}

	x := make([]float64, s.n)
	for i := 0; i < s.n; i++ {
		ai := cloneRows(s.a)
		for r := 0; r < s.n; r++ {
			ai[r][i] = s.b[r]
		}
		x[i] = determinant(ai, o.pivotTol) / det
	}

	return Solution{X: x, Residual: s.residual(x)}, nil
}

func cloneRows(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = append([]float64(nil), a[i]...)
	}

	return out
}
