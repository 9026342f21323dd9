// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/matrix"
)

// Jacobi runs x_i⁽ᵏ⁺¹⁾ = (b_i − Σ_{j≠i} A_ij·x_j⁽ᵏ⁾) / A_ii using only the
// previous sweep's values.
//
// Stopping rule:
//   - default: exactly DefaultSweeps (25) sweeps, or WithMaxIterations(n);
//     Converged reports ‖b − A·x‖∞ <= DefaultResidualTolerance.
//   - WithTolerance(t): stop early once max|Δx| < t; Converged reports that
//     the early exit happened.
//
// Errors: ErrZeroDiagonal, ErrDiverged.
func Jacobi(a [][]float64, b []float64, opts ...Option) (IterativeSolution, error) {
	return relax("Jacobi", false, a, b, opts...)
}

// GaussSeidel is Jacobi with in-place updates: each x_j is used as soon as it
// is computed within the sweep. Stopping rules match Jacobi.
func GaussSeidel(a [][]float64, b []float64, opts ...Option) (IterativeSolution, error) {
	return relax("GaussSeidel", true, a, b, opts...)
}

// relax implements both stationary methods.
func relax(method string, inPlace bool, a [][]float64, b []float64, opts ...Option) (IterativeSolution, error) {
	o := gatherOptions(0, DefaultSweeps, opts...)
	s, err := prepare(method, a, b)
	if err != nil {
		return IterativeSolution{}, err
	}
	x, err := initialGuess(method, o.x0, s.n)
	if err != nil {
		return IterativeSolution{}, err
	}
	for i := 0; i < s.n; i++ {
		if math.Abs(s.a[i][i]) <= o.pivotTol {
			return IterativeSolution{}, fmt.Errorf("%s: a[%d][%d]: %w", method, i, i, ErrZeroDiagonal)
		}
	}

	var (
		res   IterativeSolution
		next  = make([]float64, s.n)
		i, j  int
		sum   float64
		delta float64
	)
	for k := 1; k <= o.maxIter; k++ {
		delta = 0
		for i = 0; i < s.n; i++ {
			sum = s.b[i]
			for j = 0; j < s.n; j++ {
				if j != i {
					sum -= s.a[i][j] * x[j]
				}
			}
			v := sum / s.a[i][i]
			if d := math.Abs(v - x[i]); d > delta {
				delta = d
			}
			if inPlace {
				x[i] = v
			} else {
				next[i] = v
			}
		}
		if !inPlace {
			copy(x, next)
		}
		if !finite(x) {
			return res, fmt.Errorf("%s: sweep %d: %w", method, k, ErrDiverged)
		}
		res.Iterations = k
		res.Trace = append(res.Trace, Step{N: k, X: append([]float64(nil), x...), Change: delta})
		if o.tol > 0 && delta < o.tol {
			res.Converged = true
			break
		}
	}

	res.X = x
	res.Residual = s.residual(x)
	if o.tol == 0 {
		res.Converged = res.Residual <= DefaultResidualTolerance
	}

	return res, nil
}

// ConjugateGradient solves A·x = b for symmetric positive-definite A:
//
//	r = b − A·x, p = r
//	α = rᵀr / pᵀAp;  x += α·p;  r −= α·A·p
//	β = r'ᵀr' / rᵀr;  p = r' + β·p
//
// It stops when ‖r‖₂ < tol (default 1e-10) or after maxIter (default 1000).
//
// Errors: ErrNotPositiveDefinite when A is not symmetric or pᵀAp <= 0.
func ConjugateGradient(a [][]float64, b []float64, opts ...Option) (IterativeSolution, error) {
	const method = "ConjugateGradient"
	o := gatherOptions(DefaultCGTolerance, DefaultCGMaxIterations, opts...)
	s, err := prepare(method, a, b)
	if err != nil {
		return IterativeSolution{}, err
	}
	if err = matrix.ValidateSymmetric(s.a); err != nil {
		return IterativeSolution{}, fmt.Errorf("%s: %w: %w", method, ErrNotPositiveDefinite, err)
	}
	x, err := initialGuess(method, o.x0, s.n)
	if err != nil {
		return IterativeSolution{}, err
	}

	r, err := s.residualVec(method, x)
	if err != nil {
		return IterativeSolution{}, err
	}
	p := append([]float64(nil), r...)
	rsOld, err := dot(method, r, r)
	if err != nil {
		return IterativeSolution{}, err
	}

	var res IterativeSolution
	if matrix.Norm2(r) < o.tol {
		res.Converged = true
	}
	for k := 1; k <= o.maxIter && !res.Converged; k++ {
		ap, err := matVec(method, s.m, p)
		if err != nil {
			return IterativeSolution{}, err
		}
		pAp, err := dot(method, p, ap)
		if err != nil {
			return res, err
		}
		if pAp <= 0 {
			return res, fmt.Errorf("%s: pᵀAp = %g: %w", method, pAp, ErrNotPositiveDefinite)
		}
		alpha := rsOld / pAp
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rsNew, err := dot(method, r, r)
		if err != nil {
			return res, err
		}
		norm := matrix.Norm2(r)
		if !finite(x) || math.IsNaN(norm) {
			return res, fmt.Errorf("%s: iteration %d: %w", method, k, ErrDiverged)
		}
		res.Iterations = k
		res.Trace = append(res.Trace, Step{N: k, X: append([]float64(nil), x...), Change: norm})
		if norm < o.tol {
			res.Converged = true
			break
		}
		beta := rsNew / rsOld
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rsOld = rsNew
	}

	res.X = x
	res.Residual = s.residual(x)

	return res, nil
}

// dot is matrix.Dot with the method tag.
func dot(method string, x, y []float64) (float64, error) {
	v, err := matrix.Dot(x, y)
	if err != nil {
		return 0, linearErrorf(method, err)
	}

	return v, nil
}

// initialGuess returns a copy of x0, or zeros when x0 is nil.
func initialGuess(method string, x0 []float64, n int) ([]float64, error) {
	if x0 == nil {
		return make([]float64, n), nil
	}
	if err := matrix.ValidateVecLen(x0, n); err != nil {
		return nil, linearErrorf(method, err)
	}
	if err := matrix.ValidateFiniteVec(x0); err != nil {
		return nil, linearErrorf(method, err)
	}

	return append([]float64(nil), x0...), nil
}
