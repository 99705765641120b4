// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// gonum's *mat.Dense cannot represent a 0×0 matrix (its constructor panics on
// zero dimensions), so conversion towards gonum refuses empty inputs while
// conversion from gonum accepts any mat.Matrix whose Dims are non-negative.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxFromGonum = "FromGonum"
	ctxToGonum   = "ToGonum"
)

// FromGonum copies any gonum mat.Matrix into a fresh *Dense.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - ErrNaNInf (wrapped with coordinates) on the first non-finite entry.
//
// Complexity: O(r*c).
func FromGonum(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r < 0 || c < 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromGonum, ErrInvalidDimensions)
	}

	out := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = a.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxFromGonum, i, j, ErrNaNInf)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ToGonum returns an independent *mat.Dense with the same contents.
//
// Errors: ErrInvalidDimensions for empty matrices (not representable in gonum).
// Complexity: O(r*c).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("%s: %w", ctxToGonum, ErrInvalidDimensions)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}
