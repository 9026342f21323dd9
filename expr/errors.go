// SPDX-License-Identifier: MIT

package expr

import "errors"

var (
	// ErrParse indicates the expression text could not be compiled.
	ErrParse = errors.New("expr: cannot parse expression")

	// ErrEvaluation indicates the expression is undefined at the given x
	// (runtime failure, NaN, ±Inf, or a non-numeric result).
	ErrEvaluation = errors.New("expr: evaluation failed")
)
