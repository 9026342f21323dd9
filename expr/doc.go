// SPDX-License-Identifier: MIT

// Package expr compiles a textual real function of one variable x into a
// callable Function.
//
// Expressions use github.com/expr-lang/expr syntax extended with a math table:
//
//	x^2 - 7            x**3 + 2*x - 5        sqrt(x) - cos(x)
//	exp(-x) - x        ln(x) + log10(x)      pi*x - e
//
// Both ^ and ** denote exponentiation. Integer-valued results are promoted to
// float64. A result that is NaN, ±Inf or not a number is an evaluation failure:
// callers never see a silently non-finite value.
//
// Errors:
//   - ErrParse: the text does not compile (syntax, unknown identifier).
//   - ErrEvaluation: the expression failed or was undefined at a point.
//
// A compiled Function is immutable and safe for concurrent use.
package expr
