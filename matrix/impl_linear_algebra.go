// SPDX-License-Identifier: MIT
// Package matrix provides the small set of kernels shared by the solvers:
// matrix product, transpose, matrix-vector product, dot product, vector norms,
// residuals and approximate equality. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Kernels never mutate their operands; results are freshly allocated.
//   - Loop orders are fixed, so results are bit-for-bit reproducible.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opDot       = "Dot"
	opResidual  = "Residual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a×b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: fast path for two *Dense (i-k-j order over flat buffers);
//     otherwise a generic i-j-k loop over At/Set.
//
// Inputs:
//   - a: r×n matrix; b: n×c matrix.
//
// Returns:
//   - *Dense: newly allocated r×c product.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Determinism:
//   - Fixed loop orders; zero entries of a are skipped identically on both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*r+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	r, c := m.Rows(), m.Cols()
	y := make([]float64, r)
	var (
		i, j int
		v    float64
		sum  float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			sum = ZeroSum
			row := d.data[i*c : (i+1)*c]
			for j = 0; j < c; j++ {
				sum += row[j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	for i = 0; i < r; i++ {
		sum = ZeroSum
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Dot returns Σ x[i]*y[i].
func Dot(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	sum := ZeroSum
	for i := range x {
		sum += x[i] * y[i]
	}

	return sum, nil
}

// Norm2 returns the Euclidean norm of x.
func Norm2(x []float64) float64 {
	sum := ZeroSum
	for _, v := range x {
		sum += v * v
	}

	return math.Sqrt(sum)
}

// NormInf returns max |x[i]|, or 0 for an empty vector.
func NormInf(x []float64) float64 {
	best := ZeroSum
	for _, v := range x {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// Residual returns b - A·x for a nested-slice system.
// Errors: ErrDimensionMismatch when the shapes do not agree.
func Residual(a [][]float64, x, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, matrixErrorf(opResidual, ErrDimensionMismatch)
	}
	out := make([]float64, len(b))
	var i, j int
	for i = 0; i < len(a); i++ {
		if len(a[i]) != len(x) {
			return nil, matrixErrorf(opResidual, ErrDimensionMismatch)
		}
		sum := ZeroSum
		for j = 0; j < len(x); j++ {
			sum += a[i][j] * x[j]
		}
		out[i] = b[i] - sum
	}

	return out, nil
}
