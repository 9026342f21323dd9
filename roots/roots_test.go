// SPDX-License-Identifier: MIT
package roots_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/roots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sqMinus2 = roots.FuncOf(func(x float64) float64 { return x*x - 2 })
	sqMinus7 = roots.FuncOf(func(x float64) float64 { return x*x - 7 })
)

func TestBisectionSqrt2(t *testing.T) {
	t.Parallel()

	res, err := roots.Bisection(sqMinus2, 0, 2)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.LessOrEqual(t, res.Iterations, roots.DefaultBisectionMaxIterations)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-5)
	require.Len(t, res.Trace, res.Iterations)

	// First step is measured against xl.
	assert.Equal(t, 1.0, res.Trace[0].X)
	assert.Equal(t, 100.0, res.Trace[0].Err)
	for i := range res.Trace {
		assert.Equal(t, i+1, res.Trace[i].N)
	}
}

func TestBisectionErrorSequenceNonIncreasing(t *testing.T) {
	t.Parallel()

	res, err := roots.Bisection(sqMinus2, 0, 2)
	require.NoError(t, err)
	// The step halves each iteration, so the percent error only grows by the
	// ratio of midpoints, which stays close to 1 after the first steps.
	for i := 3; i < len(res.Trace); i++ {
		assert.LessOrEqual(t, res.Trace[i].Err, res.Trace[i-1].Err*1.01, "i=%d", i)
	}
}

func TestBisectionCapIsNotAnError(t *testing.T) {
	res, err := roots.Bisection(sqMinus2, 0, 2, roots.WithMaxIterations(3))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Iterations)
	assert.Len(t, res.Trace, 3)
}

func TestBisectionExactRootStops(t *testing.T) {
	res, err := roots.Bisection(roots.FuncOf(func(x float64) float64 { return x - 1 }), 0, 2)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 1.0, res.Root)
	assert.Equal(t, 1, res.Iterations)
}

func TestFalsePositionSqrt7(t *testing.T) {
	t.Parallel()

	res, err := roots.FalsePosition(sqMinus7, 2, 3)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 2.6457513, res.Root, 1e-6)
	assert.Less(t, math.Abs(res.FRoot), roots.DefaultFalsePositionTolerance)
}

func TestFalsePositionInvalidBracket(t *testing.T) {
	t.Parallel()

	_, err := roots.FalsePosition(sqMinus7, 3, 4)
	require.ErrorIs(t, err, roots.ErrInvalidBracket)
	_, err = roots.Bisection(sqMinus7, math.NaN(), 4)
	require.ErrorIs(t, err, roots.ErrInvalidBracket)
}

func TestSecantSqrt7(t *testing.T) {
	t.Parallel()

	res, err := roots.Secant(sqMinus7, 2, 3)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 2.6457513, res.Root, 1e-6)
}

func TestSecantDivisionByZero(t *testing.T) {
	t.Parallel()

	flat := roots.FuncOf(func(x float64) float64 { return x * x })
	_, err := roots.Secant(flat, -1, 1)
	require.ErrorIs(t, err, roots.ErrDivisionByZero)
}

func TestOnePoint(t *testing.T) {
	t.Parallel()

	// x = cos(x) has its fixed point near 0.7390851.
	res, err := roots.OnePoint(roots.FuncOf(math.Cos), 1)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 0.7390851, res.Root, 1e-4)

	// A diverging map hits the cap without an error.
	res, err = roots.OnePoint(roots.FuncOf(func(x float64) float64 { return 2 * x }), 1, roots.WithMaxIterations(10))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 10, res.Iterations)
}

func TestNewtonRaphson(t *testing.T) {
	t.Parallel()

	res, err := roots.NewtonRaphson(sqMinus7, 3)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, math.Sqrt(7), res.Root, 1e-9)

	exact := roots.FuncOf(func(x float64) float64 { return 2 * x })
	res2, err := roots.NewtonRaphson(sqMinus7, 3, roots.WithDerivative(exact))
	require.NoError(t, err)
	assert.InDelta(t, res.Root, res2.Root, 1e-9)
}

func TestNewtonRaphsonFlatDerivative(t *testing.T) {
	t.Parallel()

	_, err := roots.NewtonRaphson(sqMinus7, 0, roots.WithDerivative(roots.FuncOf(func(float64) float64 { return 0 })))
	require.ErrorIs(t, err, roots.ErrDivisionByZero)
}

func TestGraphical(t *testing.T) {
	t.Parallel()

	res, err := roots.Graphical(roots.FuncOf(func(x float64) float64 { return x - 2.35 }), 0, 10)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.InDelta(t, 2.35, res.Root, 1e-9)
	assert.Equal(t, len(res.Trace), res.Iterations)
}

func TestGraphicalNoRoot(t *testing.T) {
	t.Parallel()

	positive := roots.FuncOf(func(x float64) float64 { return x*x + 1 })
	res, err := roots.Graphical(positive, 0, 10, roots.WithMaxEvaluations(500))
	require.ErrorIs(t, err, roots.ErrNoRoot)
	assert.False(t, res.Converged)
	assert.NotEmpty(t, res.Trace)
	assert.Equal(t, 0.0, res.Root)
}

// failAt fails for x >= limit, to exercise error propagation.
type failAt struct{ limit float64 }

var errBoom = errors.New("boom")

func (f failAt) Eval(x float64) (float64, error) {
	if x >= f.limit {
		return 0, errBoom
	}
	return x - 10, nil
}

func TestEvaluationFailures(t *testing.T) {
	t.Parallel()

	nan := roots.FuncOf(func(float64) float64 { return math.NaN() })
	tests := []struct {
		name string
		run  func() error
	}{
		{"bisection nan", func() error { _, err := roots.Bisection(nan, 0, 1); return err }},
		{"false position nan", func() error { _, err := roots.FalsePosition(nan, 0, 1); return err }},
		{"one point nan", func() error { _, err := roots.OnePoint(nan, 0); return err }},
		{"secant nan", func() error { _, err := roots.Secant(nan, 0, 1); return err }},
		{"newton nan", func() error { _, err := roots.NewtonRaphson(nan, 0); return err }},
		{"graphical nan", func() error { _, err := roots.Graphical(nan, 0, 1); return err }},
		{"nil func", func() error { _, err := roots.Bisection(nil, 0, 1); return err }},
		{"error mid-run", func() error { _, err := roots.Graphical(failAt{limit: 5}, 0, 20); return err }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.run(), roots.ErrEvaluation)
		})
	}

	_, err := roots.Graphical(failAt{limit: 5}, 0, 20)
	require.ErrorIs(t, err, errBoom)
}

func TestWithCompiledExpression(t *testing.T) {
	t.Parallel()

	f, err := expr.Compile("x^2 - 7")
	require.NoError(t, err)
	res, err := roots.Secant(f, 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.6457513, res.Root, 1e-6)

	g, err := expr.Compile("sqrt(x)")
	require.NoError(t, err)
	_, err = roots.Bisection(g, -4, -2)
	require.ErrorIs(t, err, roots.ErrEvaluation)
	require.ErrorIs(t, err, expr.ErrEvaluation)
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	a, err := roots.FalsePosition(sqMinus7, 2, 3)
	require.NoError(t, err)
	b, err := roots.FalsePosition(sqMinus7, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { roots.WithTolerance(0) })
	assert.Panics(t, func() { roots.WithTolerance(math.Inf(1)) })
	assert.Panics(t, func() { roots.WithMaxIterations(0) })
	assert.Panics(t, func() { roots.WithMaxEvaluations(-1) })
	assert.Panics(t, func() { roots.WithInitialStep(0) })
	assert.Panics(t, func() { roots.WithDerivative(nil) })
}
