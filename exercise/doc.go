// SPDX-License-Identifier: MIT

// Package exercise connects stored exercise records to the numerical
// packages. Run looks a method up by name, parses the record fields that
// method needs, calls the algorithm and returns a JSON-ready Report.
//
// Field mapping:
//
//	bisection, falseposition  equation, xl, xr
//	onepoint, newton          equation, x
//	secant                    equation, xl (x0), xr (x1)
//	graphical                 equation, x (start), n (upper bound)
//	linear solvers            a (JSON matrix), b (JSON vector)
//	lagrange, newtondd,
//	spline, linreg            a (xs), b (ys), xin (query)
//	polyreg                   as above plus m (degree)
//	taylor                    x, xl (x0), n (order); defaults 4, 2, 3
//
// Algorithms keep their default options; the record only supplies data.
package exercise
