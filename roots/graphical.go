// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
)

// Graphical scans [x, upper] with step a (initially 1) for |f(t)| <= eps or a
// sign change between t−a and t. On a sign change the scan restarts one step
// before it with a ten times finer step; otherwise the window moves to
// [upper, upper+10]. It gives up once the step falls below eps.
//
// This is a best-effort heuristic, not a convergent method. Each trace entry
// has X = t, FX = f(t), Err = |f(t)| and Upper = the current bound.
//
// Options: WithTolerance sets eps (default 1e-6); WithMaxEvaluations bounds
// the total number of samples (default 200000); WithInitialStep sets a.
//
// Errors:
//   - ErrNoRoot with the partial trace when no sample reaches |f| <= eps.
//     Result.Root is then the sample with the smallest |f|.
//   - ErrInvalidBracket for non-finite x or upper.
//   - ErrEvaluation.
func Graphical(f Func, x, upper float64, opts ...Option) (Result, error) {
	const method = "Graphical"
	o := gatherOptions(DefaultGraphicalEpsilon, 0, opts...)
	eps := o.tol

	var res Result
	if !isFinite(x) || !isFinite(upper) {
		return res, rootErrorf(method, ErrInvalidBracket)
	}

	var (
		a         = o.initialStep
		evals     int
		n         int
		bestX     = x
		bestF     = math.Inf(1)
		t, ft     float64
		prev      float64
		err       error
		found     bool
		exhausted bool
	)
	for !exhausted {
		found = false
		if prev, err = evaluate(method, f, x-a); err != nil {
			return res, err
		}
		evals++
		for k := 0; ; k++ {
			t = x + float64(k)*a
			if t > upper {
				break
			}
			if evals >= o.maxEval {
				exhausted = true
				break
			}
			if ft, err = evaluate(method, f, t); err != nil {
				return res, err
			}
			evals++
			n++
			res.Trace = append(res.Trace, Iteration{N: n, Upper: upper, X: t, FX: ft, Err: math.Abs(ft)})
			res.Iterations = n
			if math.Abs(ft) < bestF {
				bestX, bestF = t, math.Abs(ft)
				res.Root, res.FRoot = t, ft
			}
			if math.Abs(ft) <= eps {
				res.Converged = true
				return res, nil
			}
			if ft*prev < 0 {
				upper = t
				found = true
				break
			}
			prev = ft
		}
		if exhausted {
			break
		}

		if found {
			x = upper - a
		} else {
			x = upper
			upper += 10
		}
		if a < eps {
			break
		}
		a /= 10
	}

	return res, fmt.Errorf("%s: best |f(%g)| = %g after %d samples: %w", method, bestX, bestF, evals, ErrNoRoot)
}
