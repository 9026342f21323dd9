// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
)

// Func is a real function of one variable that may fail.
type Func interface {
	Eval(x float64) (float64, error)
}

// FuncOf adapts an ordinary closure to Func.
type FuncOf func(x float64) float64

// Eval implements Func.
func (f FuncOf) Eval(x float64) (float64, error) { return f(x), nil }

// Iteration is one step of a root finder, in algorithm order.
//
// Bracketing methods fill Lower/Upper with the bracket used by the step;
// open methods fill Prev with the previous estimate. FX is f(X), except for
// OnePoint where it is the fixed-point residual g(Prev) - Prev. Err is the
// quantity the method compares to its tolerance.
type Iteration struct {
	N     int     `json:"iteration"`
	Lower float64 `json:"xl"`
	Upper float64 `json:"xr"`
	Prev  float64 `json:"prev"`
	X     float64 `json:"x"`
	FX    float64 `json:"fx"`
	Err   float64 `json:"error"`
}

// Result is the outcome of a root search.
type Result struct {
	Root       float64     `json:"root"`
	FRoot      float64     `json:"fRoot"`
	Iterations int         `json:"iterations"`
	Converged  bool        `json:"converged"`
	Trace      []Iteration `json:"trace"`
}

// push appends it to the trace and keeps Root/FRoot/Iterations current.
func (r *Result) push(it Iteration) {
	r.Trace = append(r.Trace, it)
	r.Root, r.FRoot, r.Iterations = it.X, it.FX, it.N
}

// evaluate calls f and maps failures and non-finite values to ErrEvaluation.
func evaluate(method string, f Func, x float64) (float64, error) {
	if f == nil {
		return 0, rootErrorf(method, ErrEvaluation)
	}
	v, err := f.Eval(x)
	if err != nil {
		return 0, fmt.Errorf("%s: f(%g): %w: %w", method, x, ErrEvaluation, err)
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("%s: f(%g) = %g: %w", method, x, v, ErrEvaluation)
	}

	return v, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
