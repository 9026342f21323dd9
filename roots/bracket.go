// SPDX-License-Identifier: MIT

package roots

import "math"

// Bisection halves the bracket [xl, xr] until the relative change of the
// midpoint, in percent, is <= tol (default 1e-5) or the cap (default 50) is hit.
//
// Behavior highlights:
//   - f(xl)·f(xr) <= 0 is a precondition for guaranteed convergence but is not
//     enforced; without a sign change the result simply reports Converged=false
//     or converges to an endpoint.
//   - The first step measures the change against xl.
//   - If f(xm) == 0 exactly the search stops at xm.
//   - The half is chosen by f(xm)·f(xr) > 0 ⇒ xr = xm, otherwise xl = xm.
//
// Errors: ErrInvalidBracket (non-finite endpoints), ErrEvaluation.
// Complexity: O(maxIter) evaluations.
func Bisection(f Func, xl, xr float64, opts ...Option) (Result, error) {
	const method = "Bisection"
	o := gatherOptions(DefaultBisectionTolerance, DefaultBisectionMaxIterations, opts...)

	var res Result
	if !isFinite(xl) || !isFinite(xr) {
		return res, rootErrorf(method, ErrInvalidBracket)
	}
	fr, err := evaluate(method, f, xr)
	if err != nil {
		return res, err
	}

	var (
		old    = xl
		xm, fm float64
		ea     float64
	)
	for n := 1; n <= o.maxIter; n++ {
		xm = (xl + xr) / 2
		if fm, err = evaluate(method, f, xm); err != nil {
			return res, err
		}
		ea = percentError(old, xm)
		res.push(Iteration{N: n, Lower: xl, Upper: xr, Prev: old, X: xm, FX: fm, Err: ea})
		if fm == 0 || ea <= o.tol {
			res.Converged = true
			return res, nil
		}
		if fm*fr > 0 {
			xr, fr = xm, fm
		} else {
			xl = xm
		}
		old = xm
	}

	return res, nil
}

// FalsePosition (regula falsi) replaces the midpoint with the secant through
// (xl, f(xl)) and (xr, f(xr)):
//
//	xm = (xl·f(xr) − xr·f(xl)) / (f(xr) − f(xl))
//
// It stops when |f(xm)| < tol (default 1e-6) or after maxIter (default 100)
// steps; the side is kept by the sign of f(xm)·f(xl).
//
// Errors:
//   - ErrInvalidBracket when f(xl)·f(xr) > 0 or an endpoint is not finite.
//   - ErrDivisionByZero when f(xr) == f(xl).
//   - ErrEvaluation.
func FalsePosition(f Func, xl, xr float64, opts ...Option) (Result, error) {
	const method = "FalsePosition"
	o := gatherOptions(DefaultFalsePositionTolerance, DefaultFalsePositionMaxIterations, opts...)

	var res Result
	if !isFinite(xl) || !isFinite(xr) {
		return res, rootErrorf(method, ErrInvalidBracket)
	}
	fl, err := evaluate(method, f, xl)
	if err != nil {
		return res, err
	}
	fr, err := evaluate(method, f, xr)
	if err != nil {
		return res, err
	}
	if fl*fr > 0 {
		return res, rootErrorf(method, ErrInvalidBracket)
	}

	var xm, fm float64
	for n := 1; n <= o.maxIter; n++ {
		den := fr - fl
		if den == 0 {
			return res, rootErrorf(method, ErrDivisionByZero)
		}
		xm = (xl*fr - xr*fl) / den
		if fm, err = evaluate(method, f, xm); err != nil {
			return res, err
		}
		res.push(Iteration{N: n, Lower: xl, Upper: xr, X: xm, FX: fm, Err: math.Abs(fm)})
		if math.Abs(fm) < o.tol {
			res.Converged = true
			return res, nil
		}
		if fm*fl < 0 {
			xr, fr = xm, fm
		} else {
			xl, fl = xm, fm
		}
	}

	return res, nil
}
