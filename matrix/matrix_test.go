// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/capnet/matrix"
)

const eps = 1e-12

// fill builds an n×n Dense from row-major values.
func fill(t *testing.T, n int, vals ...float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, n*n)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, vals[i*n+j]))
		}
	}

	return m
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AccessorsAndBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4))
	require.NoError(t, m.AddAt(1, 2, 1.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddAt(-1, 0, 1), matrix.ErrOutOfRange)

	assert.Equal(t, []float64{0, 0, 5.5}, m.RawRow(1))
	assert.Nil(t, m.RawRow(5))

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, 0))
	v, _ = m.At(1, 2)
	assert.Equal(t, 5.5, v, "clone must not alias the original")
}

func TestMatVec(t *testing.T) {
	m := fill(t, 2, 1, 2, 3, 4)
	y, err := matrix.MatVec(m, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLU_Solve(t *testing.T) {
	m := fill(t, 2, 2, 1, 1, 3)
	x, err := matrix.Solve(m, []float64{3, 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, x[0], eps)
	assert.InDelta(t, 1.4, x[1], eps)
}

func TestLU_PivotingRequired(t *testing.T) {
	// Zero leading pivot: only a row swap makes this solvable.
	m := fill(t, 2, 0, 1, 1, 0)
	f, err := matrix.Factorize(m)
	require.NoError(t, err)
	x, err := f.Solve([]float64{2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, x[0], eps)
	assert.InDelta(t, 2.0, x[1], eps)
	assert.InDelta(t, 1.0, f.PivotRatio(), eps)
}

func TestLU_Singular(t *testing.T) {
	m := fill(t, 2, 1, 2, 2, 4)
	_, err := matrix.Factorize(m)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestLU_Errors(t *testing.T) {
	_, err := matrix.Factorize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.Factorize(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	bad := fill(t, 2, math.NaN(), 0, 0, 1)
	_, err = matrix.Factorize(bad)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	f, err := matrix.Factorize(fill(t, 2, 1, 0, 0, 1))
	require.NoError(t, err)
	_, err = f.Solve([]float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestLU_PivotRatioFlagsIllConditioning(t *testing.T) {
	m := fill(t, 2, 1, 0, 0, 1e-14)
	f, err := matrix.Factorize(m)
	require.NoError(t, err)
	assert.Less(t, f.PivotRatio(), 1e-13)
}

func TestEigen_Symmetric2x2(t *testing.T) {
	m := fill(t, 2, 2, 1, 1, 2)
	vals, vecs, err := matrix.Eigen(m, 1e-14, 100)
	require.NoError(t, err)

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	assert.InDelta(t, 1.0, sorted[0], 1e-10)
	assert.InDelta(t, 3.0, sorted[1], 1e-10)

	// A·v = λ·v for every column.
	for k := 0; k < 2; k++ {
		v := []float64{}
		for i := 0; i < 2; i++ {
			x, err := vecs.At(i, k)
			require.NoError(t, err)
			v = append(v, x)
		}
		av, err := matrix.MatVec(m, v)
		require.NoError(t, err)
		for i := range v {
			assert.InDelta(t, vals[k]*v[i], av[i], 1e-10)
		}
	}
}

func TestEigen_Asymmetric(t *testing.T) {
	m := fill(t, 2, 1, 2, 0, 1)
	_, _, err := matrix.Eigen(m, 1e-12, 10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestEigen_Diagonal(t *testing.T) {
	m := fill(t, 3, 3, 0, 0, 0, 1, 0, 0, 0, 2)
	vals, _, err := matrix.Eigen(m, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, vals)
}

func TestLeastSquares_SingularLaplacian(t *testing.T) {
	// Laplacian of a single edge: rank 1, min-norm solution is ±0.5.
	m := fill(t, 2, 1, -1, -1, 1)
	x, err := matrix.LeastSquares(m, []float64{1, -1}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x[0], 1e-10)
	assert.InDelta(t, -0.5, x[1], 1e-10)
}

func TestLeastSquares_MatchesLUOnRegular(t *testing.T) {
	m := fill(t, 3, 4, -1, 0, -1, 4, -1, 0, -1, 4)
	b := []float64{1, 2, 3}
	lu, err := matrix.Solve(m, b)
	require.NoError(t, err)
	ls, err := matrix.LeastSquares(m, b, 1e-12)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, lu[i], ls[i], 1e-10)
	}
}

func TestLeastSquares_ZeroMatrix(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	x, err := matrix.LeastSquares(m, []float64{1, 1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, x)
}

func TestLeastSquares_Errors(t *testing.T) {
	_, err := matrix.LeastSquares(nil, []float64{1}, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	m := fill(t, 2, 1, 0, 0, 1)
	_, err = matrix.LeastSquares(m, []float64{1}, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.LeastSquares(m, []float64{1, math.Inf(1)}, 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestSymmetricPseudoSolve(t *testing.T) {
	m := fill(t, 2, 1, -1, -1, 1)
	x, err := matrix.SymmetricPseudoSolve(m, []float64{1, -1}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x[0], 1e-10)
	assert.InDelta(t, -0.5, x[1], 1e-10)

	_, err = matrix.SymmetricPseudoSolve(fill(t, 2, 1, 2, 3, 4), []float64{1, 1}, 0)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}
