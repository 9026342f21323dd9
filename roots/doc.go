// SPDX-License-Identifier: MIT

// Package roots implements single-variable root finders that share one
// calling convention and one iteration-trace format.
//
// Methods:
//   - Bisection     bracketing, halves [xl, xr] until the relative change of
//     the midpoint (in percent) drops to the tolerance.
//   - FalsePosition bracketing, regula falsi; requires a sign change.
//   - OnePoint      fixed-point iteration x₁ = g(x₀).
//   - Secant        two-point open method.
//   - NewtonRaphson open method with a central finite-difference derivative
//     (gonum diff/fd) or a caller-supplied derivative.
//   - Graphical     coarse-to-fine scan for a sign change; best effort.
//
// Every method returns a Result holding the final estimate, a Converged flag
// and the ordered Trace of iterations. Reaching the iteration cap is not an
// error: the best estimate is returned with Converged == false.
//
// Functions are supplied through the Func interface, so the package does not
// depend on any expression parser; *expr.Function satisfies it, and FuncOf
// adapts a plain Go closure. A non-finite value from f is reported as
// ErrEvaluation, never propagated as NaN.
package roots
