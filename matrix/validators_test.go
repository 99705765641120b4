// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvmatch/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil inputs, square, empty and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}
	empty, err := matrix.NewSquare(0)
	require.NoError(t, err)
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"empty", empty, nil},
		{"square 3x3", dense(3, 3), nil},
		{"non-square 2x3", dense(2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// nonFinite is a minimal Matrix that can hold NaN/Inf, bypassing Dense.Set policy.
type nonFinite struct {
	*matrix.Dense
	bad map[[2]int]float64
}

func (m nonFinite) At(i, j int) (float64, error) {
	if v, ok := m.bad[[2]int{i, j}]; ok {
		return v, nil
	}
	return m.Dense.At(i, j)
}

// TestValidateFinite checks that NaN and ±Inf are detected anywhere in the matrix.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	base, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(base))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		m := nonFinite{Dense: base, bad: map[[2]int]float64{{2, 1}: v}}
		require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
	}

	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
