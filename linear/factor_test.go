// SPDX-License-Identifier: MIT
package linear_test

import (
	"testing"

	"github.com/katalvlaran/numlab/linear"
	"github.com/katalvlaran/numlab/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type FactorSuite struct {
	suite.Suite
}

// assertProduct checks x·y (optionally x·yᵀ) against want.
func (s *FactorSuite) assertProduct(x, y *matrix.Dense, transposeY bool, want [][]float64) {
	var (
		rhs matrix.Matrix = y
		err error
	)
	if transposeY {
		rhs, err = matrix.Transpose(y)
		s.Require().NoError(err)
	}
	prod, err := matrix.Mul(x, rhs)
	s.Require().NoError(err)
	rows, err := matrix.ToRows(prod)
	s.Require().NoError(err)
	for i := range want {
		s.InDeltaSlice(want[i], rows[i], 1e-12, "row %d", i)
	}
}

func (s *FactorSuite) TestLUProduct() {
	a := [][]float64{{4, 3, 2}, {2, 1, 3}, {3, 2, 1}}
	b := []float64{1, 2, 3}

	f, err := linear.LU(a, b)
	s.Require().NoError(err)
	s.assertProduct(f.L, f.U, false, a)

	// L is unit lower triangular, U upper triangular.
	for i := 0; i < 3; i++ {
		v, _ := f.L.At(i, i)
		s.Equal(1.0, v)
		for j := i + 1; j < 3; j++ {
			v, _ = f.L.At(i, j)
			s.Equal(0.0, v)
			v, _ = f.U.At(j, i)
			s.Equal(0.0, v)
		}
	}

	ge, err := linear.GaussElimination(a, b)
	s.Require().NoError(err)
	s.InDeltaSlice(ge.X, f.X, 1e-12)
}

func (s *FactorSuite) TestCholesky() {
	a := [][]float64{{4, 2}, {2, 3}}
	b := []float64{6, 5}

	f, err := linear.Cholesky(a, b)
	s.Require().NoError(err)
	s.assertProduct(f.L, f.L, true, a)

	ge, err := linear.GaussElimination(a, b)
	s.Require().NoError(err)
	s.InDeltaSlice(ge.X, f.X, 1e-12)
	s.InDeltaSlice([]float64{1, 1}, f.X, 1e-12)
}

func (s *FactorSuite) TestCholeskyIndefinite() {
	_, err := linear.Cholesky([][]float64{{1, 2}, {2, 1}}, []float64{1, 1})
	s.ErrorIs(err, linear.ErrNotPositiveDefinite)
}

func (s *FactorSuite) TestCholeskyAsymmetric() {
	_, err := linear.Cholesky([][]float64{{4, 1}, {2, 3}}, []float64{1, 1})
	s.ErrorIs(err, linear.ErrNotPositiveDefinite)
	s.ErrorIs(err, matrix.ErrAsymmetry)
}

func TestFactorSuite(t *testing.T) {
	suite.Run(t, new(FactorSuite))
}

func TestLUZeroPivot(t *testing.T) {
	t.Parallel()

	_, err := linear.LU([][]float64{{1, 2}, {2, 4}}, []float64{1, 1})
	require.ErrorIs(t, err, linear.ErrSingular)
	assert.Contains(t, err.Error(), "U[1][1]")
}
