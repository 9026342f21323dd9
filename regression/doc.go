// SPDX-License-Identifier: MIT

// Package regression fits least-squares models to (xs[i], ys[i]) samples.
//
// Linear uses the closed form
//
//	slope     = (nΣxy − ΣxΣy) / (nΣx² − (Σx)²)
//	intercept = (Σy − slope·Σx) / n
//
// Polynomial builds the design matrix X with columns x⁰ … xᵈ and solves the
// normal equations (XᵀX)·c = XᵀY. WithQR switches to a Householder QR
// least-squares solve of X·c ≈ Y (gonum/mat), which avoids squaring the
// condition number.
//
// Fits carry Predict and the coefficient of determination R².
package regression
