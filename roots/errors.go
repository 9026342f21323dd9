// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
)

var (
	// ErrEvaluation indicates f failed or returned NaN/±Inf at some point.
	ErrEvaluation = errors.New("roots: function evaluation failed")

	// ErrInvalidBracket indicates bracket preconditions were violated
	// (non-finite endpoints, or no sign change where one is required).
	ErrInvalidBracket = errors.New("roots: invalid bracket")

	// ErrDivisionByZero indicates a degenerate step (f(x1) == f(x0), f'(x) == 0).
	ErrDivisionByZero = errors.New("roots: division by zero")

	// ErrNoRoot indicates the graphical scan exhausted its budget without
	// locating |f(x)| <= eps. The partial trace is still returned.
	ErrNoRoot = errors.New("roots: no root found")
)

// rootErrorf tags err with the method name.
func rootErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
