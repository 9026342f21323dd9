// SPDX-License-Identifier: MIT

// Package numlab is a small numerical-methods laboratory for the classroom:
// root finding, linear systems, interpolation and regression, each returning
// the final answer together with the step-by-step trace a student wants to see.
//
// What is inside?
//
//	A pure-Go numerical core plus the thin plumbing needed to serve it:
//		• Root finders: bisection, false position, one-point, secant, Newton-Raphson, graphical scan
//		• Linear systems: Gauss elimination/Jordan, LU, Cholesky, inversion, Cramer
//		• Iterative solvers: Jacobi, Gauss-Seidel, conjugate gradient
//		• Interpolation: Lagrange, Newton divided differences, natural cubic spline
//		• Regression: least-squares line and polynomial
//		• Taylor-series truncation errors for ln(x)
//
// Why this layout?
//
//   - Every algorithm is a pure function of its inputs: no globals, safe for concurrent callers.
//   - Inputs are never aliased: matrices and vectors are copied before any elimination step.
//   - Reaching an iteration cap is a normal outcome (Converged=false), never an error.
//   - Failures are typed sentinels matched with errors.Is.
//
// Packages:
//
//	matrix/      Dense row-major storage, validators and shared kernels (Mul, MatVec, Dot, norms)
//	expr/        compiles an equation in x into a callable function
//	roots/       single-variable root finders with iteration traces
//	linear/      direct and iterative solvers for A·x = b
//	interp/      interpolation from point sets
//	regression/  least-squares fitting and prediction
//	series/      Taylor truncation-error tables
//	chart/       SVG/PNG plots of f(x) and root iterates
//	store/       keyed exercise records (in-memory or JSON file)
//	exercise/    runs a named method against a stored record
//	cmd/numlab-server/  HTTP API over store and exercise
//	examples/    worked scenarios
//
// Quick example:
//
//	f, _ := expr.Compile("x^2 - 2")
//	res, err := roots.Bisection(f, 0, 2)
//	// res.Root ≈ 1.41421, res.Trace holds every step
package numlab
