// SPDX-License-Identifier: MIT
package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/interp"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubic(x float64) float64 { return x*x*x - 2*x + 1 }

func samples(f func(float64) float64, xs ...float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}

	return ys
}

func TestLagrangeEqualsNewton(t *testing.T) {
	t.Parallel()

	sets := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{"classic", []float64{0, 20000, 40000, 60000, 80000}, []float64{9.81, 9.7487, 9.6879, 9.6879, 9.5682}},
		{"unsorted", []float64{3, -1, 0.5, 2}, []float64{1, 4, -2, 0}},
		{"single", []float64{5}, []float64{7}},
	}
	for _, set := range sets {
		set := set
		t.Run(set.name, func(t *testing.T) {
			t.Parallel()
			for _, xq := range []float64{-2, 0.25, 1, 42235, 3} {
				l, err := interp.Lagrange(set.xs, set.ys, xq)
				require.NoError(t, err)
				n, err := interp.NewtonDividedDifference(set.xs, set.ys, xq)
				require.NoError(t, err)
				assert.InDelta(t, l, n, 1e-9*math.Max(1, math.Abs(l)), "xq=%g", xq)
			}
		})
	}
}

func TestPolynomialReproducesCubic(t *testing.T) {
	t.Parallel()

	xs := []float64{-1, 0, 1, 2}
	ys := samples(cubic, xs...)
	for _, xq := range []float64{-0.5, 0.3, 1.7} {
		l, err := interp.Lagrange(xs, ys, xq)
		require.NoError(t, err)
		assert.InDelta(t, cubic(xq), l, 1e-12)
	}
}

func TestDividedDifferencesTable(t *testing.T) {
	t.Parallel()

	tab, err := interp.DividedDifferences([]float64{1, 2, 4}, []float64{1, 4, 16})
	require.NoError(t, err)
	require.Len(t, tab, 3)
	assert.Equal(t, []float64{1, 3, 1}, tab[0])
	assert.Equal(t, []float64{4, 6}, tab[1])
	assert.Equal(t, []float64{16}, tab[2])
}

func TestPointValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xs   []float64
		ys   []float64
		want error
	}{
		{"empty", nil, nil, interp.ErrInsufficientPoints},
		{"mismatch", []float64{1, 2}, []float64{1}, interp.ErrLengthMismatch},
		{"duplicate", []float64{1, 2, 1}, []float64{1, 2, 3}, interp.ErrDuplicateAbscissa},
		{"nan", []float64{1, math.NaN()}, []float64{1, 2}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		_, err := interp.Lagrange(tc.xs, tc.ys, 0)
		require.ErrorIs(t, err, tc.want, "lagrange/%s", tc.name)
		_, err = interp.NewtonDividedDifference(tc.xs, tc.ys, 0)
		require.ErrorIs(t, err, tc.want, "newton/%s", tc.name)
		_, err = interp.CubicSpline(tc.xs, tc.ys, 0)
		require.ErrorIs(t, err, tc.want, "spline/%s", tc.name)
	}

	_, err := interp.CubicSpline([]float64{1}, []float64{1}, 1)
	require.ErrorIs(t, err, interp.ErrInsufficientPoints)
}

func TestCubicSplineNodesAndRange(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 2, 0, 3}
	s, err := interp.NewCubicSpline(xs, ys)
	require.NoError(t, err)

	for i := range xs {
		v, err := s.Eval(xs[i])
		require.NoError(t, err)
		assert.InDelta(t, ys[i], v, 1e-12)
	}

	for _, xq := range []float64{-0.001, 3.0001, math.NaN()} {
		_, err = s.Eval(xq)
		require.ErrorIs(t, err, interp.ErrOutOfRange)
	}
}

func TestCubicSplineNatural(t *testing.T) {
	t.Parallel()

	s, err := interp.NewCubicSpline([]float64{0, 1, 2, 3, 4}, []float64{0, 1, 0, 1, 0})
	require.NoError(t, err)
	segs := s.Segments()
	require.Len(t, segs, 4)

	// S'' = 2C at the left end of the first segment and 2C + 6D·h at the right
	// end of the last; both vanish for a natural spline.
	assert.InDelta(t, 0, segs[0].C, 1e-12)
	last := segs[3]
	assert.InDelta(t, 0, 2*last.C+6*last.D*(last.X1-last.X0), 1e-12)

	// Continuity of S and S' at interior knots.
	for k := 0; k < 3; k++ {
		h := segs[k].X1 - segs[k].X0
		end := segs[k].A + segs[k].B*h + segs[k].C*h*h + segs[k].D*h*h*h
		slope := segs[k].B + 2*segs[k].C*h + 3*segs[k].D*h*h
		assert.InDelta(t, segs[k+1].A, end, 1e-12)
		assert.InDelta(t, segs[k+1].B, slope, 1e-12)
	}
}

func TestCubicSplineSortsAndIsLinearForTwoPoints(t *testing.T) {
	t.Parallel()

	v, err := interp.CubicSpline([]float64{2, 0}, []float64{4, 0}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, 1e-15)
}

func TestInputsAreNotMutated(t *testing.T) {
	t.Parallel()

	xs := []float64{3, 1, 2}
	ys := []float64{9, 1, 4}
	_, err := interp.CubicSpline(xs, ys, 2.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, xs)
	assert.Equal(t, []float64{9, 1, 4}, ys)
}
