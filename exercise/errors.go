// SPDX-License-Identifier: MIT
package exercise

import "errors"

var (
	// ErrUnknownMethod indicates a method name that Run does not know.
	ErrUnknownMethod = errors.New("exercise: unknown method")

	// ErrNotPlottable indicates a record or method without a function to plot.
	ErrNotPlottable = errors.New("exercise: nothing to plot")
)
