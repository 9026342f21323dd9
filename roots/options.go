// SPDX-License-Identifier: MIT

package roots

import "math"

// Per-method defaults (single source of truth).
const (
	DefaultBisectionTolerance     = 1e-5 // percent relative error
	DefaultBisectionMaxIterations = 50

	DefaultFalsePositionTolerance     = 1e-6 // |f(xm)|
	DefaultFalsePositionMaxIterations = 100

	DefaultOnePointTolerance     = 1e-5 // |x1 - x0|
	DefaultOnePointMaxIterations = 50

	DefaultSecantTolerance     = 1e-6 // |x2 - x1|
	DefaultSecantMaxIterations = 100

	DefaultNewtonTolerance     = 1e-6 // |x1 - x0|
	DefaultNewtonMaxIterations = 100

	DefaultGraphicalEpsilon        = 1e-6 // |f(x)| and the smallest step
	DefaultGraphicalMaxEvaluations = 200000
)

const (
	panicTolerance   = "roots: WithTolerance: tol must be finite and > 0"
	panicMaxIter     = "roots: WithMaxIterations: n must be > 0"
	panicMaxEval     = "roots: WithMaxEvaluations: n must be > 0"
	panicDerivNil    = "roots: WithDerivative: df must not be nil"
	panicInitialStep = "roots: WithInitialStep: step must be finite and > 0"
)

// Option configures a root finder.
type Option func(*Options)

// Options is the effective configuration. Zero fields mean "use the method
// default".
type Options struct {
	tol         float64
	maxIter     int
	maxEval     int
	initialStep float64
	derivative  Func
}

// WithTolerance overrides the stopping tolerance. Panics unless tol > 0.
func WithTolerance(tol float64) Option {
	if !isFinite(tol) || tol <= 0 {
		panic(panicTolerance)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations overrides the iteration cap. Panics unless n > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIter)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithMaxEvaluations caps the number of f evaluations of Graphical.
func WithMaxEvaluations(n int) Option {
	if n <= 0 {
		panic(panicMaxEval)
	}

	return func(o *Options) { o.maxEval = n }
}

// WithInitialStep sets the first scan step of Graphical (default 1).
func WithInitialStep(step float64) Option {
	if !isFinite(step) || step <= 0 {
		panic(panicInitialStep)
	}

	return func(o *Options) { o.initialStep = step }
}

// WithDerivative supplies f' to NewtonRaphson instead of the numerical one.
func WithDerivative(df Func) Option {
	if df == nil {
		panic(panicDerivNil)
	}

	return func(o *Options) { o.derivative = df }
}

// gatherOptions applies opts over the given method defaults.
func gatherOptions(tol float64, maxIter int, opts ...Option) Options {
	o := Options{tol: tol, maxIter: maxIter, maxEval: DefaultGraphicalMaxEvaluations, initialStep: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// percentError is the relative change |new-old|/|new|·100.
// A zero estimate yields 0 when the step is zero and +Inf otherwise.
func percentError(old, cur float64) float64 {
	step := math.Abs(cur - old)
	if cur == 0 {
		if step == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return step / math.Abs(cur) * 100
}
