// SPDX-License-Identifier: MIT
package regression_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearExact(t *testing.T) {
	t.Parallel()

	fit, err := regression.Linear([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, fit.Slope, 1e-12)
	assert.InDelta(t, 0.0, fit.Intercept, 1e-12)
	assert.InDelta(t, 1.0, fit.RSquared, 1e-12)
	assert.InDelta(t, 20.0, fit.Predict(10), 1e-12)
}

func TestLinearNoisy(t *testing.T) {
	t.Parallel()

	xs := []float64{10, 15, 20, 30, 40, 50, 60, 70, 80}
	ys := []float64{5, 9, 15, 18, 22, 30, 35, 38, 43}
	fit, err := regression.Linear(xs, ys)
	require.NoError(t, err)

	// Agrees with a degree-1 polynomial fit on both paths.
	for _, opts := range [][]regression.Option{nil, {regression.WithQR()}} {
		p, err := regression.Polynomial(xs, ys, 1, opts...)
		require.NoError(t, err)
		assert.InDelta(t, fit.Intercept, p.Coefficients[0], 1e-9)
		assert.InDelta(t, fit.Slope, p.Coefficients[1], 1e-9)
		assert.InDelta(t, fit.RSquared, p.RSquared, 1e-9)
	}
	assert.Greater(t, fit.RSquared, 0.9)
	assert.Less(t, fit.RSquared, 1.0)
}

func TestLinearErrors(t *testing.T) {
	t.Parallel()

	_, err := regression.Linear([]float64{1}, []float64{1})
	require.ErrorIs(t, err, regression.ErrInsufficientPoints)
	_, err = regression.Linear([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, regression.ErrLengthMismatch)
	_, err = regression.Linear([]float64{2, 2, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, regression.ErrSingular)
	_, err = regression.Linear([]float64{1, math.Inf(1)}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestPolynomialRecoversQuadratic(t *testing.T) {
	t.Parallel()

	xs := []float64{-2, -1, 0, 1, 2, 3}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 1 - 2*x + 0.5*x*x
	}
	want := []float64{1, -2, 0.5}

	normal, err := regression.Polynomial(xs, ys, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, normal.Coefficients, 1e-9)

	qr, err := regression.Polynomial(xs, ys, 2, regression.WithQR())
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, qr.Coefficients, 1e-9)

	assert.InDelta(t, 1-2*4+0.5*16, normal.Predict(4), 1e-9)
}

func TestPolynomialErrors(t *testing.T) {
	t.Parallel()

	_, err := regression.Polynomial([]float64{1, 2}, []float64{1, 2}, 2)
	require.ErrorIs(t, err, regression.ErrInsufficientPoints)
	_, err = regression.Polynomial([]float64{1, 2}, []float64{1, 2}, -1)
	require.ErrorIs(t, err, regression.ErrInvalidDegree)

	for _, opts := range [][]regression.Option{nil, {regression.WithQR()}} {
		_, err = regression.Polynomial([]float64{0, 0, 0}, []float64{1, 2, 3}, 1, opts...)
		require.ErrorIs(t, err, regression.ErrSingular)
		require.ErrorIs(t, err, matrix.ErrSingular)
	}
}

func TestPolynomialDegreeZeroIsMean(t *testing.T) {
	t.Parallel()

	fit, err := regression.Polynomial([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 0)
	require.NoError(t, err)
	require.Len(t, fit.Coefficients, 1)
	assert.InDelta(t, 5.0, fit.Coefficients[0], 1e-12)
}
