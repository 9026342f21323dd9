// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numlab/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set paths.
type hide struct{ matrix.Matrix }

// randRows returns an r×c matrix of values in [-1, 1) from a fixed seed.
func randRows(tb testing.TB, r, c int, seed int64) [][]float64 {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = rng.Float64()*2 - 1
		}
	}

	return out
}

// mustFromRows builds a Dense or fails the test.
func mustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}
