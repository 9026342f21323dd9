// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"sort"
)

// Segment is the cubic on [X0, X1]:
// S(x) = A + B·(x−X0) + C·(x−X0)² + D·(x−X0)³.
type Segment struct {
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
	A  float64 `json:"a"`
	B  float64 `json:"b"`
	C  float64 `json:"c"`
	D  float64 `json:"d"`
}

// Spline is a natural cubic spline. It is immutable once built.
type Spline struct {
	segs []Segment
}

// NewCubicSpline fits a natural cubic spline through the points. Points may
// come in any order; they are sorted by x.
//
// Implementation:
//   - Stage 1: hᵢ = xᵢ₊₁ − xᵢ and the right-hand side αᵢ.
//   - Stage 2: forward sweep of the tridiagonal system (l, μ, z), l₀ = 1.
//   - Stage 3: back substitution for c, then b and d per segment.
//
// Errors: ErrInsufficientPoints (fewer than 2), ErrLengthMismatch,
// ErrDuplicateAbscissa, matrix.ErrNaNInf.
// Complexity: O(n) after the O(n log n) sort.
func NewCubicSpline(xs, ys []float64) (*Spline, error) {
	if err := checkPoints("CubicSpline", xs, ys, 2); err != nil {
		return nil, err
	}

	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })
	x := make([]float64, n)
	a := make([]float64, n)
	for i, k := range idx {
		x[i], a[i] = xs[k], ys[k]
	}

	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = x[i+1] - x[i]
	}
	alpha := make([]float64, n)
	for i := 1; i < n-1; i++ {
		alpha[i] = 3/h[i]*(a[i+1]-a[i]) - 3/h[i-1]*(a[i]-a[i-1])
	}

	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	l[0] = 1
	for i := 1; i < n-1; i++ {
		l[i] = 2*(x[i+1]-x[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}

	c := make([]float64, n) // c[n-1] = 0 (natural end)
	segs := make([]Segment, n-1)
	for j := n - 2; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		segs[j] = Segment{
			X0: x[j],
			X1: x[j+1],
			A:  a[j],
			B:  (a[j+1]-a[j])/h[j] - h[j]*(c[j+1]+2*c[j])/3,
			C:  c[j],
			D:  (c[j+1] - c[j]) / (3 * h[j]),
		}
	}

	return &Spline{segs: segs}, nil
}

// Eval evaluates the spline at xq. Both end nodes are inside the range.
// Errors: ErrOutOfRange when xq < x₀ or xq > xₙ₋₁ (or is NaN).
func (s *Spline) Eval(xq float64) (float64, error) {
	first, last := s.segs[0].X0, s.segs[len(s.segs)-1].X1
	if !(xq >= first && xq <= last) {
		return 0, fmt.Errorf("CubicSpline: x=%g not in [%g, %g]: %w", xq, first, last, ErrOutOfRange)
	}
	// First segment whose right end reaches xq.
	i := sort.Search(len(s.segs), func(k int) bool { return s.segs[k].X1 >= xq })
	seg := s.segs[i]
	dx := xq - seg.X0

	return seg.A + seg.B*dx + seg.C*dx*dx + seg.D*dx*dx*dx, nil
}

// Segments returns a copy of the piecewise coefficients in x order.
func (s *Spline) Segments() []Segment {
	return append([]Segment(nil), s.segs...)
}

// CubicSpline fits a natural cubic spline and evaluates it at xq.
func CubicSpline(xs, ys []float64, xq float64) (float64, error) {
	s, err := NewCubicSpline(xs, ys)
	if err != nil {
		return 0, err
	}

	return s.Eval(xq)
}
