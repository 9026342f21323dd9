// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPoints indicates too few points for the method.
	ErrInsufficientPoints = errors.New("interp: insufficient points")

	// ErrDuplicateAbscissa indicates xs[i] == xs[j] for some i != j.
	ErrDuplicateAbscissa = errors.New("interp: duplicate abscissa")

	// ErrLengthMismatch indicates len(xs) != len(ys).
	ErrLengthMismatch = errors.New("interp: xs and ys differ in length")

	// ErrOutOfRange indicates a spline query outside the node range.
	ErrOutOfRange = errors.New("interp: query outside the interpolation range")
)

func interpErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
