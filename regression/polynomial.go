// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"

	"github.com/katalvlaran/numlab/matrix"
	"gonum.org/v1/gonum/mat"
)

// PolyFit is y ≈ Σ Coefficients[k]·xᵏ.
type PolyFit struct {
	Coefficients []float64 `json:"coefficients"`
	RSquared     float64   `json:"r2"`
}

// Predict evaluates the polynomial at x (Horner's rule).
func (f PolyFit) Predict(x float64) float64 {
	var y float64
	for k := len(f.Coefficients) - 1; k >= 0; k-- {
		y = y*x + f.Coefficients[k]
	}

	return y
}

// Polynomial fits a polynomial of the given degree by least squares.
//
// Implementation:
//   - Stage 1: design matrix X (n×(d+1)), X[i][k] = xᵢᵏ.
//   - Stage 2 (default): c = (XᵀX)⁻¹·XᵀY with Mul/Transpose/MatVec from the
//     matrix package and the inverse from gonum/mat.
//   - Stage 2 (WithQR): QR-factorize X and solve the least-squares problem.
//
// Errors:
//   - ErrInvalidDegree (degree < 0).
//   - ErrInsufficientPoints (n < degree+1), ErrLengthMismatch, matrix.ErrNaNInf.
//   - ErrSingular when XᵀX (or R) is not invertible, e.g. repeated xs.
//
// Complexity: O(n·d² + d³).
func Polynomial(xs, ys []float64, degree int, opts ...Option) (PolyFit, error) {
	const method = "Polynomial"
	if degree < 0 {
		return PolyFit{}, fmt.Errorf("%s: degree %d: %w", method, degree, ErrInvalidDegree)
	}
	if err := checkSamples(method, xs, ys, degree+1); err != nil {
		return PolyFit{}, err
	}
	o := gatherOptions(opts...)

	x, err := vandermonde(xs, degree)
	if err != nil {
		return PolyFit{}, fmt.Errorf("%s: %w", method, err)
	}

	var coef []float64
	if o.qr {
		coef, err = solveQR(x, ys, degree)
	} else {
		coef, err = solveNormal(x, ys)
	}
	if err != nil {
		return PolyFit{}, fmt.Errorf("%s: %w", method, err)
	}

	fit := PolyFit{Coefficients: coef}
	fit.RSquared = rSquared(xs, ys, fit.Predict)

	return fit, nil
}

// vandermonde builds X with X[i][k] = xs[i]^k.
func vandermonde(xs []float64, degree int) (*matrix.Dense, error) {
	rows := make([][]float64, len(xs))
	for i, xi := range xs {
		rows[i] = make([]float64, degree+1)
		for k, p := 0, 1.0; k <= degree; k, p = k+1, p*xi {
			rows[i][k] = p
		}
	}

	return matrix.NewFromRows(rows)
}

// solveNormal computes (XᵀX)⁻¹·XᵀY.
func solveNormal(x *matrix.Dense, ys []float64) ([]float64, error) {
	xt, err := matrix.Transpose(x)
	if err != nil {
		return nil, err
	}
	xtx, err := matrix.Mul(xt, x)
	if err != nil {
		return nil, err
	}
	xty, err := matrix.MatVec(xt, ys)
	if err != nil {
		return nil, err
	}

	g, err := toGonum(xtx)
	if err != nil {
		return nil, err
	}
	n := xtx.Rows()
	var inv mat.Dense
	if err = inv.Inverse(g); err != nil {
		return nil, fmt.Errorf("XᵀX: %v: %w", err, ErrSingular)
	}

	var c mat.VecDense
	c.MulVec(&inv, mat.NewVecDense(n, xty))

	return append([]float64(nil), c.RawVector().Data...), nil
}

// solveQR solves X·c ≈ Y by Householder QR.
func solveQR(x *matrix.Dense, ys []float64, degree int) ([]float64, error) {
	a, err := toGonum(x)
	if err != nil {
		return nil, err
	}
	r, cols := x.Rows(), degree+1
	b := mat.NewDense(r, 1, append([]float64(nil), ys...))
	c := mat.NewDense(cols, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)
	if err := qr.SolveTo(c, false, b); err != nil {
		return nil, fmt.Errorf("QR: %v: %w", err, ErrSingular)
	}

	return mat.Col(nil, 0, c), nil
}

// toGonum copies m into a gonum matrix of the same shape.
func toGonum(m *matrix.Dense) (*mat.Dense, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, err
	}
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data), nil
}
