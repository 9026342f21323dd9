// SPDX-License-Identifier: MIT

// Package matrix - converters between nested slices and Dense.
//
// Solvers accept user data as [][]float64 (rows) and []float64 (vectors).
// These helpers are the only place where such data crosses into Dense and back,
// so shape and finiteness rules are enforced exactly once.

package matrix

import "fmt"

const (
	opNewFromRows = "NewFromRows"
	opToRows      = "ToRows"
	opIdentity    = "NewIdentity"
	opAugment     = "Augment"
)

// NewFromRows builds a Dense from a rectangular slice of rows.
// The input is copied; later mutations of rows never reach the result.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRaggedRows when any row length differs from the first.
//   - ErrNaNInf when a value is not finite (unless WithNoValidateNaNInf).
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewFromRows, ErrInvalidDimensions)
	}

	r, c := len(rows), len(rows[0])
	d, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				opNewFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			if o.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, denseErrorf(opNewFromRows, i, j, ErrNaNInf)
			}
			d.data[i*c+j] = rows[i][j]
		}
	}

	return d, nil
}

// ToRows copies any Matrix into a fresh [][]float64.
// Errors: ErrNilMatrix for nil input; At failures are propagated.
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}

	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	// Fast path: Dense exposes its flat buffer.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < r; i++ {
			out[i] = make([]float64, c)
			copy(out[i], d.data[i*c:(i+1)*c])
		}

		return out, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToRows, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
func NewIdentity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// Augment returns the row-wise concatenation [a | b] as nested rows.
// Both operands must have the same number of rows.
//
// Complexity: O(r*(ca+cb)).
func Augment(a, b [][]float64) ([][]float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	out := make([][]float64, len(a))
	for i := range a {
		row := make([]float64, 0, len(a[i])+len(b[i]))
		row = append(row, a[i]...)
		row = append(row, b[i]...)
		out[i] = row
	}

	return out, nil
}
