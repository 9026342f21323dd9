// SPDX-License-Identifier: MIT

package interp

// Lagrange evaluates the Lagrange interpolating polynomial at xq.
//
// Errors: ErrInsufficientPoints (no points), ErrLengthMismatch,
// ErrDuplicateAbscissa, matrix.ErrNaNInf.
// Complexity: O(n²).
func Lagrange(xs, ys []float64, xq float64) (float64, error) {
	if err := checkPoints("Lagrange", xs, ys, 1); err != nil {
		return 0, err
	}

	var sum float64
	for i := range xs {
		term := ys[i]
		for j := range xs {
			if j != i {
				term *= (xq - xs[j]) / (xs[i] - xs[j])
			}
		}
		sum += term
	}

	return sum, nil
}

// DividedDifferences returns the table t with t[i][j] = f[xᵢ, …, xᵢ₊ⱼ]
// (row i has n−i entries):
//
//	t[i][0] = yᵢ
//	t[i][j] = (t[i+1][j−1] − t[i][j−1]) / (xᵢ₊ⱼ − xᵢ)
//
// The Newton coefficients are t[0][0..n−1].
func DividedDifferences(xs, ys []float64) ([][]float64, error) {
	if err := checkPoints("DividedDifferences", xs, ys, 1); err != nil {
		return nil, err
	}

	return dividedDifferences(xs, ys), nil
}

func dividedDifferences(xs, ys []float64) [][]float64 {
	n := len(xs)
	t := make([][]float64, n)
	for i := range t {
		t[i] = make([]float64, n-i)
		t[i][0] = ys[i]
	}
	for j := 1; j < n; j++ {
		for i := 0; i+j < n; i++ {
			t[i][j] = (t[i+1][j-1] - t[i][j-1]) / (xs[i+j] - xs[i])
		}
	}

	return t
}

// NewtonDividedDifference evaluates Σⱼ f[x₀…xⱼ]·Πₖ<ⱼ (xq − xₖ) at xq.
// It interpolates the same polynomial as Lagrange.
//
// Errors: as Lagrange.
// Complexity: O(n²).
func NewtonDividedDifference(xs, ys []float64, xq float64) (float64, error) {
	if err := checkPoints("NewtonDividedDifference", xs, ys, 1); err != nil {
		return 0, err
	}

	t := dividedDifferences(xs, ys)
	var (
		sum  float64
		prod = 1.0
	)
	for j := range xs {
		sum += t[0][j] * prod
		prod *= xq - xs[j]
	}

	return sum, nil
}
