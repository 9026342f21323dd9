// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solvers minimal by delegating shape/nil/symmetry checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Use ValidateSymmetric before Cholesky or conjugate gradient to fail fast.
//  - Use ValidateVecLen for any MatVec-like operation to avoid ad hoc length code.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareRows is the nested-slice counterpart of ValidateSquare.
// Errors: ErrInvalidDimensions for an empty system, ErrRaggedRows for a row of
// the wrong length.
func ValidateSquareRows(a [][]float64) error {
	n := len(a)
	if n == 0 {
		return validatorErrorf("ValidateSquareRows", ErrInvalidDimensions)
	}
	for i := range a {
		if len(a[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquareRows: row %d", i), ErrRaggedRows)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec rejects vectors containing NaN or ±Inf.
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec: index %d", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateSymmetric checks |a[i][j] - a[j][i]| <= eps for the upper triangle.
// eps defaults to DefaultEpsilon and is overridden by WithEpsilon.
//
// Errors: ErrInvalidDimensions or ErrRaggedRows when a is not square,
// ErrAsymmetry on the first offending pair.
// Complexity: O(n²).
func ValidateSymmetric(a [][]float64, opts ...Option) error {
	if err := ValidateSquareRows(a); err != nil {
		return err
	}
	tol := gatherOptions(opts...).eps
	var i, j int
	for i = 0; i < len(a); i++ {
		for j = i + 1; j < len(a); j++ {
			if math.Abs(a[i][j]-a[j][i]) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}
