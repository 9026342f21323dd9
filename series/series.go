// SPDX-License-Identifier: MIT

// Package series tabulates Taylor-polynomial truncation errors.
package series

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain indicates x or x0 is outside the domain of the function.
	ErrDomain = errors.New("series: argument outside the domain")

	// ErrInvalidOrder indicates an order outside [0, MaxOrder].
	ErrInvalidOrder = errors.New("series: order out of range")
)

// MaxOrder bounds the table length LogTaylor will build.
const MaxOrder = 100

// Term is the Taylor polynomial of a given order evaluated at x.
type Term struct {
	Order  int     `json:"n"`
	Approx float64 `json:"approx"`
	Error  float64 `json:"error"`
}

// LogTaylor expands ln about x0 and evaluates P₀ … P_order at x:
//
//	Pₙ(x) = ln x0 + Σₖ₌₁ⁿ (−1)ᵏ⁺¹ (x − x0)ᵏ / (k·x0ᵏ)
//
// Each Term carries Error = |ln x − Pₙ(x)|.
//
// Errors: ErrDomain (x <= 0 or x0 <= 0, or non-finite), ErrInvalidOrder
// (order < 0 or order > MaxOrder).
func LogTaylor(x, x0 float64, order int) ([]Term, error) {
	if !(x > 0) || !(x0 > 0) || math.IsInf(x, 0) || math.IsInf(x0, 0) {
		return nil, fmt.Errorf("LogTaylor(x=%g, x0=%g): %w", x, x0, ErrDomain)
	}
	if order < 0 || order > MaxOrder {
		return nil, fmt.Errorf("LogTaylor: order %d not in [0, %d]: %w", order, MaxOrder, ErrInvalidOrder)
	}

	exact := math.Log(x)
	h := (x - x0) / x0
	p := math.Log(x0)
	pow := 1.0
	terms := make([]Term, 0, order+1)
	terms = append(terms, Term{Order: 0, Approx: p, Error: math.Abs(exact - p)})
	for k := 1; k <= order; k++ {
		pow *= h
		term := pow / float64(k)
		if k%2 == 0 {
			term = -term
		}
		p += term
		terms = append(terms, Term{Order: k, Approx: p, Error: math.Abs(exact - p)})
	}

	return terms, nil
}
