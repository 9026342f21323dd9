// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// OnePoint runs the fixed-point iteration x₁ = g(x₀) until |x₁ − x₀| < tol
// (default 1e-5) or maxIter (default 50) steps.
//
// The root of f is found by passing g(x) = x − f(x) or any rearrangement
// x = g(x). Trace entries record FX = g(Prev) − Prev.
//
// Errors: ErrEvaluation.
func OnePoint(g Func, x0 float64, opts ...Option) (Result, error) {
	const method = "OnePoint"
	o := gatherOptions(DefaultOnePointTolerance, DefaultOnePointMaxIterations, opts...)

	var res Result
	if !isFinite(x0) {
		return res, rootErrorf(method, ErrInvalidBracket)
	}

	var (
		x1  float64
		err error
	)
	for n := 1; n <= o.maxIter; n++ {
		if x1, err = evaluate(method, g, x0); err != nil {
			return res, err
		}
		step := math.Abs(x1 - x0)
		res.push(Iteration{N: n, Prev: x0, X: x1, FX: x1 - x0, Err: step})
		if step < o.tol {
			res.Converged = true
			return res, nil
		}
		x0 = x1
	}

	return res, nil
}

// Secant iterates x₂ = x₁ − f(x₁)(x₁ − x₀)/(f(x₁) − f(x₀)) until
// |x₂ − x₁| < tol (default 1e-6) or maxIter (default 100) steps.
//
// Errors: ErrDivisionByZero when f(x₁) == f(x₀); ErrEvaluation.
func Secant(f Func, x0, x1 float64, opts ...Option) (Result, error) {
	const method = "Secant"
	o := gatherOptions(DefaultSecantTolerance, DefaultSecantMaxIterations, opts...)

	var res Result
	if !isFinite(x0) || !isFinite(x1) {
		return res, rootErrorf(method, ErrInvalidBracket)
	}
	f0, err := evaluate(method, f, x0)
	if err != nil {
		return res, err
	}
	f1, err := evaluate(method, f, x1)
	if err != nil {
		return res, err
	}

	var x2, f2 float64
	for n := 1; n <= o.maxIter; n++ {
		if f1-f0 == 0 {
			return res, fmt.Errorf("%s: f(%g) == f(%g): %w", method, x1, x0, ErrDivisionByZero)
		}
		x2 = x1 - f1*(x1-x0)/(f1-f0)
		if f2, err = evaluate(method, f, x2); err != nil {
			return res, err
		}
		step := math.Abs(x2 - x1)
		res.push(Iteration{N: n, Prev: x1, X: x2, FX: f2, Err: step})
		if step < o.tol {
			res.Converged = true
			return res, nil
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f2
	}

	return res, nil
}

// NewtonRaphson iterates x₁ = x₀ − f(x₀)/f'(x₀) until |x₁ − x₀| < tol
// (default 1e-6) or maxIter (default 100) steps. f' is the central finite
// difference from gonum's diff/fd unless WithDerivative supplies it.
//
// Errors: ErrDivisionByZero when f'(x₀) == 0; ErrEvaluation.
func NewtonRaphson(f Func, x0 float64, opts ...Option) (Result, error) {
	const method = "NewtonRaphson"
	o := gatherOptions(DefaultNewtonTolerance, DefaultNewtonMaxIterations, opts...)

	var res Result
	if !isFinite(x0) {
		return res, rootErrorf(method, ErrInvalidBracket)
	}

	slope := o.derivative
	if slope == nil {
		slope = centralDifference{f: f}
	}

	f0, err := evaluate(method, f, x0)
	if err != nil {
		return res, err
	}
	var x1, f1, d float64
	for n := 1; n <= o.maxIter; n++ {
		if d, err = evaluate(method, slope, x0); err != nil {
			return res, err
		}
		if d == 0 {
			return res, fmt.Errorf("%s: f'(%g) == 0: %w", method, x0, ErrDivisionByZero)
		}
		x1 = x0 - f0/d
		if f1, err = evaluate(method, f, x1); err != nil {
			return res, err
		}
		step := math.Abs(x1 - x0)
		res.push(Iteration{N: n, Prev: x0, X: x1, FX: f1, Err: step})
		if step < o.tol {
			res.Converged = true
			return res, nil
		}
		x0, f0 = x1, f1
	}

	return res, nil
}

// centralDifference is the numerical derivative of f as a Func.
type centralDifference struct{ f Func }

func (c centralDifference) Eval(x float64) (float64, error) {
	var first error
	g := func(t float64) float64 {
		v, err := c.f.Eval(t)
		if err != nil {
			if first == nil {
				first = err
			}
			return math.NaN()
		}
		return v
	}
	d := fd.Derivative(g, x, &fd.Settings{Formula: fd.Central})
	if first != nil {
		return 0, first
	}

	return d, nil
}
