// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// checkPoints validates a point set: equal lengths, at least min points,
// finite values (matrix.ErrNaNInf) and distinct abscissae.
func checkPoints(method string, xs, ys []float64, min int) error {
	if len(xs) != len(ys) {
		return interpErrorf(method, ErrLengthMismatch)
	}
	if len(xs) < min {
		return fmt.Errorf("%s: have %d, need %d: %w", method, len(xs), min, ErrInsufficientPoints)
	}
	if err := matrix.ValidateFiniteVec(xs); err != nil {
		return interpErrorf(method, err)
	}
	if err := matrix.ValidateFiniteVec(ys); err != nil {
		return interpErrorf(method, err)
	}
	seen := make(map[float64]int, len(xs))
	for i, x := range xs {
		if j, ok := seen[x]; ok {
			return fmt.Errorf("%s: x[%d] == x[%d] == %g: %w", method, j, i, x, ErrDuplicateAbscissa)
		}
		seen[x] = i
	}

	return nil
}
