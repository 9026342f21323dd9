// SPDX-License-Identifier: MIT

package linear

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

var (
	// ErrSingular is matrix.ErrSingular: a pivot or determinant is numerically zero.
	ErrSingular = matrix.ErrSingular

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch: A is not square or
	// len(b) differs from its order.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNotPositiveDefinite indicates A is not symmetric positive-definite
	// (Cholesky radicand <= 0, CG curvature pᵀAp <= 0, or asymmetry).
	ErrNotPositiveDefinite = errors.New("linear: matrix is not positive definite")

	// ErrZeroDiagonal indicates a zero diagonal entry where a division by it is required.
	ErrZeroDiagonal = errors.New("linear: zero on the diagonal")

	// ErrDiverged indicates an iterative method produced non-finite iterates.
	ErrDiverged = errors.New("linear: iteration diverged")
)

// linearErrorf wraps err with the method name.
func linearErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
