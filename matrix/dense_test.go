// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmatch/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewSquareAllowsEmpty verifies that order 0 is legal and negatives are not.
func TestNewSquareAllowsEmpty(t *testing.T) {
	m, err := matrix.NewSquare(0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Empty(t, m.Rows2D())

	_, err = matrix.NewSquare(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the finite numeric policy on Set.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(1, 0, math.Inf(-1)), matrix.ErrNaNInf)

	require.NoError(t, m.Set(1, 1, 7.89))
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestNewFromRows covers the empty, ragged, non-finite and happy paths.
func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}, {3, 4}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m, err = matrix.NewFromRows(src)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	// the input is copied, not retained
	src[0][0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.Rows2D())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestNegateAndMaxAbs checks the helpers used by the minimization path.
func TestNegateAndMaxAbs(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, -7}, {3, 2}})
	require.NoError(t, err)

	neg := m.Negate()
	require.Equal(t, [][]float64{{-1, 7}, {-3, -2}}, neg.Rows2D())
	require.Equal(t, 7.0, m.MaxAbs())
	require.Equal(t, 7.0, neg.MaxAbs())

	empty, err := matrix.NewSquare(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, empty.MaxAbs())
}

// TestString verifies the bracketed row rendering.
func TestString(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2.5}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}
