// SPDX-License-Identifier: MIT

package linear

import (
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// Solution is the result of a direct solve.
type Solution struct {
	X []float64 `json:"x"`
	// Residual is ‖b − A·x‖∞ for the original system.
	Residual float64 `json:"residual"`
}

// LUFactors holds the Doolittle factors and the solution.
type LUFactors struct {
	L *matrix.Dense `json:"l"`
	U *matrix.Dense `json:"u"`
	Solution
}

// CholeskyFactor holds the lower factor L (A = L·Lᵀ) and the solution.
type CholeskyFactor struct {
	L *matrix.Dense `json:"l"`
	Solution
}

// Inversion holds A⁻¹ and x = A⁻¹·b.
type Inversion struct {
	Inverse *matrix.Dense `json:"inverse"`
	Solution
}

// Step is one sweep of an iterative method. Change is max|Δx| for Jacobi
// and GaussSeidel, and ‖r‖₂ after the step for ConjugateGradient.
type Step struct {
	N      int       `json:"iteration"`
	X      []float64 `json:"x"`
	Change float64   `json:"change"`
}

// IterativeSolution is the result of Jacobi, GaussSeidel or ConjugateGradient.
type IterativeSolution struct {
	Solution
	Iterations int    `json:"iterations"`
	Converged  bool   `json:"converged"`
	Trace      []Step `json:"trace"`
}

// system is a private, validated copy of A·x = b.
type system struct {
	m    *matrix.Dense // untouched A
	rows [][]float64   // untouched A as rows
	rhs  []float64     // untouched b
	a   [][]float64   // working copy of A
	b   []float64     // working copy of b
	n   int
}

// prepare validates A (square, rectangular, finite) and b (length, finite)
// and returns copies the caller may mutate.
func prepare(method string, a [][]float64, b []float64) (*system, error) {
	m, err := matrix.NewFromRows(a)
	if err != nil {
		return nil, linearErrorf(method, err)
	}
	if err = matrix.ValidateSquare(m); err != nil {
		return nil, linearErrorf(method, err)
	}
	if err = matrix.ValidateVecLen(b, m.Rows()); err != nil {
		return nil, linearErrorf(method, err)
	}
	if err = matrix.ValidateFiniteVec(b); err != nil {
		return nil, linearErrorf(method, err)
	}
	work, err := matrix.ToRows(m)
	if err != nil {
		return nil, linearErrorf(method, err)
	}
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, linearErrorf(method, err)
	}

	return &system{
		m:    m,
		rows: rows,
		rhs:  append([]float64(nil), b...),
		a:    work,
		b:    append([]float64(nil), b...),
		n:    m.Rows(),
	}, nil
}

// residualVec returns b − A·x for the untouched system.
func (s *system) residualVec(method string, x []float64) ([]float64, error) {
	r, err := matrix.Residual(s.rows, x, s.rhs)
	if err != nil {
		return nil, linearErrorf(method, err)
	}

	return r, nil
}

// residual returns ‖b − A·x‖∞ for the untouched system, or +Inf when x has
// the wrong length.
func (s *system) residual(x []float64) float64 {
	r, err := matrix.Residual(s.rows, x, s.rhs)
	if err != nil {
		return math.Inf(1)
	}

	return matrix.NormInf(r)
}

// finite reports whether every entry of x is finite.
func finite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// newDense builds a result matrix from rows produced by a solver.
func newDense(method string, rows [][]float64) (*matrix.Dense, error) {
	d, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, linearErrorf(method, err)
	}

	return d, nil
}

// matVec is matrix.MatVec with the method tag.
func matVec(method string, m matrix.Matrix, x []float64) ([]float64, error) {
	y, err := matrix.MatVec(m, x)
	if err != nil {
		return nil, linearErrorf(method, err)
	}

	return y, nil
}
