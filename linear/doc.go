// SPDX-License-Identifier: MIT

// Package linear solves square linear systems A·x = b and derives the
// classical factorizations taught alongside them.
//
// Direct methods:
//   - GaussElimination: forward elimination with partial pivoting, back substitution.
//   - GaussJordan: full reduction of [A|b] to [I|x] (no pivoting).
//   - LU: Doolittle factorization A = L·U with unit diagonal on L (no pivoting).
//   - Cholesky: A = L·Lᵀ for symmetric positive-definite A.
//   - Inverse: Gauss-Jordan on [A|I] with partial pivoting, then x = A⁻¹·b.
//   - Cramer and Determinant.
//
// Iterative methods:
//   - Jacobi and GaussSeidel: a fixed number of sweeps (default 25) unless
//     WithTolerance enables an early exit on max|Δx|.
//   - ConjugateGradient: for symmetric positive-definite A, stopping on
//     ‖r‖₂ < tol (default 1e-10) or 1000 iterations.
//
// Inputs are nested rows ([][]float64) and are never mutated; every method
// works on a private copy made through the matrix package, which also
// enforces rectangular, finite data. A pivot is treated as zero when its
// magnitude is <= the pivot tolerance (absolute, default 1e-12).
//
// Reaching an iteration cap is reported through Converged == false, never as
// an error.
package linear
