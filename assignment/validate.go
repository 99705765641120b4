// Package assignment - input validation.
//
// Validation runs before any potential is computed and never truncates or
// pads the matrix. Failures are reported with the assignment sentinels; the
// underlying matrix sentinel is kept in the chain for errors.Is as well.
package assignment

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmatch/matrix"
)

// fromRows converts caller rows into a Dense, mapping matrix sentinels to
// assignment ones and enforcing maxWeight. nil or empty input is the
// order-0 instance.
func fromRows(w [][]float64) (*matrix.Dense, error) {
	m, err := matrix.NewFromRows(w)
	if err != nil {
		return nil, mapMatrixErr(err)
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%w: %d×%d", ErrNonSquare, m.Rows(), m.Cols())
	}
	if err = checkRange(m.Rows(), m.MaxAbs()); err != nil {
		return nil, err
	}

	return m, nil
}

// mapMatrixErr translates matrix-layer sentinels into assignment sentinels
// while keeping the original error in the chain.
func mapMatrixErr(err error) error {
	switch {
	case errors.Is(err, matrix.ErrRaggedRows), errors.Is(err, matrix.ErrNonSquare):
		return fmt.Errorf("%w: %w", ErrNonSquare, err)
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrNaNInf, err)
	case errors.Is(err, matrix.ErrNilMatrix), errors.Is(err, matrix.ErrInvalidDimensions):
		return fmt.Errorf("%w: %w", ErrBadDimension, err)
	default:
		return err
	}
}

// maxWeight returns the largest |W[i][j]| accepted at order n.
//
// With M = max|W|, row potentials stay in [-M, M], column potentials in
// [0, 2nM] and every slack below (2n+2)M, so bounding M by
// MaxFloat64/(4(n+1)) keeps all intermediate sums and the total finite.
func maxWeight(n int) float64 {
	return math.MaxFloat64 / float64(4*(n+1))
}

// checkRange rejects weights too large for the potentials to stay finite.
func checkRange(n int, maxAbs float64) error {
	if limit := maxWeight(n); maxAbs > limit {
		return fmt.Errorf("%w: max|W|=%g exceeds %g at order %d", ErrWeightRange, maxAbs, limit, n)
	}

	return nil
}

// flatten validates m (non-nil, square, finite, within maxWeight) and copies
// it into a row-major slice owned by the solver.
//
// Returns the order n and the flat weights (len n*n).
// Complexity: O(n²).
func flatten(m matrix.Matrix) (int, []float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, nil, mapMatrixErr(err)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return 0, nil, mapMatrixErr(err)
	}
	n := m.Rows()
	if n < 0 {
		return 0, nil, fmt.Errorf("%w: order %d", ErrBadDimension, n)
	}

	w := make([]float64, n*n)

	var (
		i, j   int
		v      float64
		maxAbs float64
		err    error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, nil, fmt.Errorf("%w: %w", ErrBadDimension, err)
			}
			w[i*n+j] = v
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}
	if err = checkRange(n, maxAbs); err != nil {
		return 0, nil, err
	}

	return n, w, nil
}

// validatePermutation checks that match is a bijection on 0..n-1 and returns
// its inverse (row → column).
// Complexity: O(n).
func validatePermutation(match []int, n int) ([]int, error) {
	if len(match) != n {
		return nil, fmt.Errorf("%w: matching has %d entries, want %d", ErrBadDimension, len(match), n)
	}
	inv := make([]int, n)
	for i := range inv {
		inv[i] = -1
	}
	for j, r := range match {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("%w: column %d matched to row %d", ErrNotPermutation, j, r)
		}
		if inv[r] != -1 {
			return nil, fmt.Errorf("%w: row %d matched to columns %d and %d", ErrNotPermutation, r, inv[r], j)
		}
		inv[r] = j
	}

	return inv, nil
}
