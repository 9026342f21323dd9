// SPDX-License-Identifier: MIT
package exercise

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/numlab/expr"
	"github.com/katalvlaran/numlab/interp"
	"github.com/katalvlaran/numlab/linear"
	"github.com/katalvlaran/numlab/regression"
	"github.com/katalvlaran/numlab/roots"
	"github.com/katalvlaran/numlab/series"
	"github.com/katalvlaran/numlab/store"
)

// Kind groups methods by the shape of their input.
type Kind string

const (
	KindRoot          Kind = "root"
	KindLinear        Kind = "linear"
	KindInterpolation Kind = "interpolation"
	KindRegression    Kind = "regression"
	KindSeries        Kind = "series"
)

// Method describes one runnable algorithm.
type Method struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`
}

// Report is the outcome of Run. Result holds the algorithm's own result
// type (roots.Result, linear.Solution, ...).
type Report struct {
	Method string `json:"method"`
	No     int    `json:"no"`
	Kind   Kind   `json:"kind"`
	Result any    `json:"result"`
}

// Prediction is an interpolated or fitted value at the query point,
// with method-specific detail.
type Prediction struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Detail any     `json:"detail,omitempty"`
}

type runner func(rec store.Record) (any, error)

type entry struct {
	Method
	run runner
}

var registry = map[string]entry{}

func register(name string, kind Kind, title string, run runner) {
	registry[name] = entry{Method: Method{Name: name, Kind: kind, Title: title}, run: run}
}

func init() {
	register("bisection", KindRoot, "Bisection", bracketed(roots.Bisection))
	register("falseposition", KindRoot, "False position", bracketed(roots.FalsePosition))
	register("onepoint", KindRoot, "One-point iteration", single(roots.OnePoint))
	register("newton", KindRoot, "Newton-Raphson", single(roots.NewtonRaphson))
	register("secant", KindRoot, "Secant", bracketed(roots.Secant))
	register("graphical", KindRoot, "Graphical search", graphical)

	register("cramer", KindLinear, "Cramer's rule", direct(linear.Cramer))
	register("gausselimination", KindLinear, "Gauss elimination", direct(linear.GaussElimination))
	register("gaussjordan", KindLinear, "Gauss-Jordan", direct(linear.GaussJordan))
	register("inverse", KindLinear, "Matrix inversion", direct(linear.Inverse))
	register("lu", KindLinear, "LU decomposition", direct(linear.LU))
	register("cholesky", KindLinear, "Cholesky decomposition", direct(linear.Cholesky))
	register("jacobi", KindLinear, "Jacobi iteration", direct(linear.Jacobi))
	register("gaussseidel", KindLinear, "Gauss-Seidel iteration", direct(linear.GaussSeidel))
	register("conjugategradient", KindLinear, "Conjugate gradient", direct(linear.ConjugateGradient))

	register("lagrange", KindInterpolation, "Lagrange polynomial", lagrange)
	register("newtondd", KindInterpolation, "Newton divided differences", newtonDD)
	register("spline", KindInterpolation, "Natural cubic spline", spline)

	register("linreg", KindRegression, "Linear regression", linreg)
	register("polyreg", KindRegression, "Polynomial regression", polyreg)

	register("taylor", KindSeries, "Taylor series of ln(x)", taylor)
}

// Methods lists every method Run accepts, ordered by kind then name.
func Methods() []Method {
	out := make([]Method, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.Method)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})

	return out
}

// Run executes method on the record's data. Algorithm errors are returned
// unchanged so callers can match the packages' sentinels; for root finders
// the partial Report is returned alongside the error.
func Run(ctx context.Context, method string, rec store.Record) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	e, ok := registry[method]
	if !ok {
		return Report{}, fmt.Errorf("Run %q: %w", method, ErrUnknownMethod)
	}
	res, err := e.run(rec)
	rep := Report{Method: method, No: rec.No, Kind: e.Kind, Result: res}
	if err != nil {
		return rep, fmt.Errorf("Run %s: %w", method, err)
	}

	return rep, nil
}

func equation(rec store.Record) (*expr.Function, error) {
	src, err := rec.Field(store.FieldEquation)
	if err != nil {
		return nil, err
	}

	return expr.Compile(src)
}

func bracketed(fn func(roots.Func, float64, float64, ...roots.Option) (roots.Result, error)) runner {
	return func(rec store.Record) (any, error) {
		f, err := equation(rec)
		if err != nil {
			return nil, err
		}
		a, err := rec.Float(store.FieldXL)
		if err != nil {
			return nil, err
		}
		b, err := rec.Float(store.FieldXR)
		if err != nil {
			return nil, err
		}

		return fn(f, a, b)
	}
}

func single(fn func(roots.Func, float64, ...roots.Option) (roots.Result, error)) runner {
	return func(rec store.Record) (any, error) {
		f, err := equation(rec)
		if err != nil {
			return nil, err
		}
		x0, err := rec.Float(store.FieldX)
		if err != nil {
			return nil, err
		}

		return fn(f, x0)
	}
}

func graphical(rec store.Record) (any, error) {
	f, err := equation(rec)
	if err != nil {
		return nil, err
	}
	x, err := rec.Float(store.FieldX)
	if err != nil {
		return nil, err
	}
	upper, err := rec.Float(store.FieldN)
	if err != nil {
		return nil, err
	}

	return roots.Graphical(f, x, upper)
}

// direct adapts any linear solver; the result type is the solver's own.
func direct[R any](fn func([][]float64, []float64, ...linear.Option) (R, error)) runner {
	return func(rec store.Record) (any, error) {
		a, err := rec.Matrix()
		if err != nil {
			return nil, err
		}
		b, err := rec.Vector()
		if err != nil {
			return nil, err
		}
		// Jacobi and GaussSeidel return their trace with ErrDiverged.
		return fn(a, b)
	}
}

// points reads xs from a, ys from b and the query from xin.
func points(rec store.Record) (xs, ys []float64, xq float64, err error) {
	if xs, err = rec.Floats(store.FieldA); err != nil {
		return nil, nil, 0, err
	}
	if ys, err = rec.Vector(); err != nil {
		return nil, nil, 0, err
	}
	if xq, err = rec.Float(store.FieldXIn); err != nil {
		return nil, nil, 0, err
	}

	return xs, ys, xq, nil
}

func lagrange(rec store.Record) (any, error) {
	xs, ys, xq, err := points(rec)
	if err != nil {
		return nil, err
	}
	y, err := interp.Lagrange(xs, ys, xq)
	if err != nil {
		return nil, err
	}

	return Prediction{X: xq, Y: y}, nil
}

func newtonDD(rec store.Record) (any, error) {
	xs, ys, xq, err := points(rec)
	if err != nil {
		return nil, err
	}
	table, err := interp.DividedDifferences(xs, ys)
	if err != nil {
		return nil, err
	}
	y, err := interp.NewtonDividedDifference(xs, ys, xq)
	if err != nil {
		return nil, err
	}

	return Prediction{X: xq, Y: y, Detail: table}, nil
}

func spline(rec store.Record) (any, error) {
	xs, ys, xq, err := points(rec)
	if err != nil {
		return nil, err
	}
	s, err := interp.NewCubicSpline(xs, ys)
	if err != nil {
		return nil, err
	}
	y, err := s.Eval(xq)
	if err != nil {
		return nil, err
	}

	return Prediction{X: xq, Y: y, Detail: s.Segments()}, nil
}

// optionalQuery returns the xin value, or ok=false when xin is blank.
func optionalQuery(rec store.Record) (float64, bool, error) {
	xq, err := rec.Float(store.FieldXIn)
	if errors.Is(err, store.ErrEmptyField) {
		return 0, false, nil
	}

	return xq, err == nil, err
}

func linreg(rec store.Record) (any, error) {
	xs, err := rec.Floats(store.FieldA)
	if err != nil {
		return nil, err
	}
	ys, err := rec.Vector()
	if err != nil {
		return nil, err
	}
	fit, err := regression.Linear(xs, ys)
	if err != nil {
		return nil, err
	}
	xq, ok, err := optionalQuery(rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return fit, nil
	}

	return Prediction{X: xq, Y: fit.Predict(xq), Detail: fit}, nil
}

func polyreg(rec store.Record) (any, error) {
	xs, err := rec.Floats(store.FieldA)
	if err != nil {
		return nil, err
	}
	ys, err := rec.Vector()
	if err != nil {
		return nil, err
	}
	degree, err := rec.Int(store.FieldM)
	if err != nil {
		return nil, err
	}
	fit, err := regression.Polynomial(xs, ys, degree)
	if err != nil {
		return nil, err
	}
	xq, ok, err := optionalQuery(rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return fit, nil
	}

	return Prediction{X: xq, Y: fit.Predict(xq), Detail: fit}, nil
}

// floatOr reads name, falling back to def when the field is blank.
func floatOr(rec store.Record, name string, def float64) (float64, error) {
	v, err := rec.Float(name)
	if errors.Is(err, store.ErrEmptyField) {
		return def, nil
	}

	return v, err
}

func taylor(rec store.Record) (any, error) {
	x, err := floatOr(rec, store.FieldX, 4)
	if err != nil {
		return nil, err
	}
	x0, err := floatOr(rec, store.FieldXL, 2)
	if err != nil {
		return nil, err
	}
	order, err := rec.Int(store.FieldN)
	if errors.Is(err, store.ErrEmptyField) {
		order, err = 3, nil
	}
	if err != nil {
		return nil, err
	}

	return series.LogTaylor(x, x0, order)
}
