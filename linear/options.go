// SPDX-License-Identifier: MIT

package linear

import "math"

const (
	// DefaultPivotTolerance is the absolute magnitude at or below which a
	// pivot, diagonal entry or determinant counts as zero.
	DefaultPivotTolerance = 1e-12

	// DefaultSweeps is the fixed sweep count of Jacobi and GaussSeidel.
	DefaultSweeps = 25

	// DefaultResidualTolerance decides Converged for fixed-sweep runs:
	// ‖b − A·x‖∞ <= DefaultResidualTolerance.
	DefaultResidualTolerance = 1e-9

	// DefaultCGTolerance bounds ‖r‖₂ for ConjugateGradient.
	DefaultCGTolerance = 1e-10

	// DefaultCGMaxIterations caps ConjugateGradient.
	DefaultCGMaxIterations = 1000
)

const (
	panicPivotTol = "linear: WithPivotTolerance: tol must be finite and >= 0"
	panicTol      = "linear: WithTolerance: tol must be finite and > 0"
	panicMaxIter  = "linear: WithMaxIterations: n must be > 0"
)

// Option configures a solver.
type Option func(*Options)

// Options is the effective solver configuration.
type Options struct {
	pivotTol float64
	tol      float64 // 0 means fixed sweeps for Jacobi/GaussSeidel
	maxIter  int
	x0       []float64
}

// WithPivotTolerance overrides DefaultPivotTolerance. Zero means "exactly zero".
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPivotTol)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithTolerance sets the stopping tolerance of the iterative methods.
// For Jacobi and GaussSeidel it switches from fixed sweeps to an early exit
// once max|Δx| < tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTol)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations sets the sweep count (Jacobi, GaussSeidel) or the
// iteration cap (ConjugateGradient).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIter)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithInitialGuess sets x⁽⁰⁾ for the iterative methods (default zeros).
// The slice is copied; its length is checked by the solver.
func WithInitialGuess(x0 []float64) Option {
	cp := append([]float64(nil), x0...)

	return func(o *Options) { o.x0 = cp }
}

func gatherOptions(tol float64, maxIter int, opts ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance, tol: tol, maxIter: maxIter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
