// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmatch/matrix"
	"github.com/stretchr/testify/require"
)

// TestRandomIntSquareDeterministic verifies seed reproducibility and the [lo, hi) range.
func TestRandomIntSquareDeterministic(t *testing.T) {
	a, err := matrix.RandomIntSquare(6, 3, 10, 42)
	require.NoError(t, err)
	b, err := matrix.RandomIntSquare(6, 3, 10, 42)
	require.NoError(t, err)
	require.Equal(t, a.Rows2D(), b.Rows2D())

	for _, row := range a.Rows2D() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, 3.0)
			require.Less(t, v, 10.0)
			require.Equal(t, math.Trunc(v), v)
		}
	}
}

// TestRandomSeedZeroIsDefault checks that seed 0 maps to the fixed default stream.
func TestRandomSeedZeroIsDefault(t *testing.T) {
	a, err := matrix.RandomSquare(4, -1, 1, 0)
	require.NoError(t, err)
	b, err := matrix.RandomSquare(4, -1, 1, 1)
	require.NoError(t, err)
	require.Equal(t, a.Rows2D(), b.Rows2D())
}

// TestRandomSquareConstant covers lo == hi.
func TestRandomSquareConstant(t *testing.T) {
	m, err := matrix.RandomSquare(3, 2.5, 2.5, 7)
	require.NoError(t, err)
	for _, row := range m.Rows2D() {
		for _, v := range row {
			require.Equal(t, 2.5, v)
		}
	}
}

// TestRandomErrors covers invalid sizes and ranges.
func TestRandomErrors(t *testing.T) {
	_, err := matrix.RandomSquare(-1, 0, 1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.RandomSquare(2, 1, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidRange)

	_, err = matrix.RandomSquare(2, math.NaN(), 1, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidRange)

	_, err = matrix.RandomIntSquare(2, 5, 5, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidRange)

	_, err = matrix.RandomIntSquare(-3, 0, 5, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.RandomIntSquare(0, 0, 5, 1)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
}
