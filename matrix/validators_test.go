// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSquare(t *testing.T) {
	sq := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateSquare(sq))

	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch)
}

func TestValidateSquareRows(t *testing.T) {
	require.NoError(t, matrix.ValidateSquareRows([][]float64{{1, 0}, {0, 1}}))
	require.ErrorIs(t, matrix.ValidateSquareRows(nil), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateSquareRows([][]float64{{1, 0}, {0}}), matrix.ErrRaggedRows)
	require.ErrorIs(t, matrix.ValidateSquareRows([][]float64{{1, 0, 0}, {0, 1, 0}}), matrix.ErrRaggedRows)
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateFiniteVec(t *testing.T) {
	require.NoError(t, matrix.ValidateFiniteVec([]float64{1, -2, 0}))
	require.ErrorIs(t, matrix.ValidateFiniteVec([]float64{1, math.Inf(1)}), matrix.ErrNaNInf)
}

func TestValidateSymmetric(t *testing.T) {
	sym := [][]float64{{4, 1}, {1, 3}}
	require.NoError(t, matrix.ValidateSymmetric(sym))

	nearly := [][]float64{{4, 1}, {1 + 1e-6, 3}}
	require.ErrorIs(t, matrix.ValidateSymmetric(nearly), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(nearly, matrix.WithEpsilon(1e-5)))

	require.ErrorIs(t, matrix.ValidateSymmetric([][]float64{{1, 2}, {2}}), matrix.ErrRaggedRows)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil), matrix.ErrInvalidDimensions)
}

func TestWithEpsilonPanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
