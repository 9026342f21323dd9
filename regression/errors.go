// SPDX-License-Identifier: MIT

package regression

import (
	"errors"

	"github.com/katalvlaran/numlab/matrix"
)

var (
	// ErrInsufficientPoints indicates fewer samples than parameters.
	ErrInsufficientPoints = errors.New("regression: insufficient points")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("regression: xs and ys differ in length")

	// ErrInvalidDegree indicates a negative polynomial degree.
	ErrInvalidDegree = errors.New("regression: degree must be >= 0")

	// ErrSingular is matrix.ErrSingular: the normal equations have no unique
	// solution (e.g. all xs equal).
	ErrSingular = matrix.ErrSingular
)
