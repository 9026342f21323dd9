// SPDX-License-Identifier: MIT

// Package matrix is the small linear-algebra utility layer shared by the
// numerical packages (linear, regression, interp).
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone) with safe,
//     error-returning accessors.
//   - Dense, a row-major float64 implementation backed by one flat slice.
//   - Converters between Dense and the [][]float64 shape used by callers
//     and by stored exercise records (NewFromRows, ToRows, Augment).
//   - Shared kernels: Mul, Transpose, MatVec, Dot, Norm2, NormInf, Residual.
//   - Central validators (ValidateSquare, ValidateSquareRows, ValidateVecLen,
//     ValidateSymmetric, ValidateFiniteVec) so every solver fails the same way
//     on bad shapes.
//
// Every kernel allocates its result; operands are never mutated. Errors are
// package sentinels (ErrDimensionMismatch, ErrSingular, ...) wrapped with an
// operation tag, so callers match them with errors.Is.
//
// See example_test.go for usage patterns.
package matrix
