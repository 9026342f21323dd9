// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
)

// LinearFit is y ≈ Intercept + Slope·x.
type LinearFit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r2"`
}

// Predict evaluates the fitted line at x.
func (f LinearFit) Predict(x float64) float64 { return f.Intercept + f.Slope*x }

// Linear fits a straight line by closed-form least squares.
//
// Errors: ErrInsufficientPoints (n < 2), ErrLengthMismatch,
// ErrSingular (all xs equal), matrix.ErrNaNInf.
func Linear(xs, ys []float64) (LinearFit, error) {
	const method = "Linear"
	if err := checkSamples(method, xs, ys, 2); err != nil {
		return LinearFit{}, err
	}

	n := float64(len(xs))
	var sx, sy, sxy, sxx float64
	for i := range xs {
		sx += xs[i]
		sy += ys[i]
		sxy += xs[i] * ys[i]
		sxx += xs[i] * xs[i]
	}
	den := n*sxx - sx*sx
	if den == 0 {
		return LinearFit{}, fmt.Errorf("%s: nΣx² − (Σx)² = 0: %w", method, ErrSingular)
	}

	fit := LinearFit{Slope: (n*sxy - sx*sy) / den}
	fit.Intercept = (sy - fit.Slope*sx) / n
	fit.RSquared = rSquared(xs, ys, fit.Predict)

	return fit, nil
}

// checkSamples validates lengths, the minimum count and finiteness.
func checkSamples(method string, xs, ys []float64, min int) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%s: %w", method, ErrLengthMismatch)
	}
	if len(xs) < min {
		return fmt.Errorf("%s: have %d, need %d: %w", method, len(xs), min, ErrInsufficientPoints)
	}
	if err := matrix.ValidateFiniteVec(xs); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err := matrix.ValidateFiniteVec(ys); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// rSquared is 1 − SSres/SStot; a constant ys gives 1 when the fit is exact.
func rSquared(xs, ys []float64, predict func(float64) float64) float64 {
	var mean float64
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))

	var ssRes, ssTot float64
	for i := range xs {
		r := ys[i] - predict(xs[i])
		d := ys[i] - mean
		ssRes += r * r
		ssTot += d * d
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}

	return 1 - ssRes/ssTot
}
