// SPDX-License-Identifier: MIT

// Package interp evaluates interpolating functions through a set of points
// (xs[i], ys[i]).
//
//   - Lagrange: Σ yᵢ·Πⱼ≠ᵢ (x − xⱼ)/(xᵢ − xⱼ).
//   - NewtonDividedDifference: Newton form built from a divided-difference
//     table that lives only for the duration of one call.
//   - CubicSpline: natural cubic spline (S'' = 0 at both ends). Queries
//     outside [min xs, max xs] fail with ErrOutOfRange; the spline never
//     extrapolates.
//
// All functions copy their inputs and keep no state between calls.
package interp
