// Package assignment - optimality certificates.
//
// A Result is optimal iff its matching is a permutation and its potentials
// are dual feasible with zero slack on every matched pair. Verify checks
// exactly that, so callers can validate results that crossed a process or
// file boundary without re-solving.
package assignment

import (
	"fmt"
	"math"
)

// Total returns Σ_j w[match[j]][j].
//
// Errors: ErrNonSquare, ErrNaNInf, ErrWeightRange, ErrBadDimension (len(match) != n),
// ErrNotPermutation.
// Complexity: O(n²) for validation, O(n) for the sum.
func Total(w [][]float64, match []int) (float64, error) {
	m, err := fromRows(w)
	if err != nil {
		return 0, err
	}
	n := m.Rows()
	if _, err = validatePermutation(match, n); err != nil {
		return 0, err
	}

	var total float64
	for j, i := range match {
		total += w[i][j]
	}

	return total, nil
}

// Verify checks that res is a certified optimum for w within tolerance
// eps·max(1, max|W|) (eps ≥ 0; pass DefaultEpsilon or a looser value).
//
// Checks, in order:
//  1. shape: w square; Match, RowPotential, ColPotential of length n.
//  2. bijection: Match is a permutation (and RowToCol, if set, its inverse).
//  3. dual feasibility: slack ≥ -tol on every pair (sign flipped for Minimize).
//  4. complementary slackness: |slack| ≤ tol on every matched pair.
//  5. total: |Σ W[Match[j]][j] - Total| ≤ n·tol.
//
// Complexity: O(n²).
func Verify(w [][]float64, res Result, eps float64) error {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return fmt.Errorf("%w: epsilon must be finite and non-negative (%v)", ErrOptionViolation, eps)
	}
	m, err := fromRows(w)
	if err != nil {
		return err
	}
	n := m.Rows()

	// 1-2. shape and bijection.
	inv, err := validatePermutation(res.Match, n)
	if err != nil {
		return err
	}
	if res.RowToCol != nil {
		if len(res.RowToCol) != n {
			return fmt.Errorf("%w: RowToCol has %d entries, want %d", ErrBadDimension, len(res.RowToCol), n)
		}
		for i, j := range res.RowToCol {
			if inv[i] != j {
				return fmt.Errorf("%w: RowToCol[%d]=%d, Match implies %d", ErrNotPermutation, i, j, inv[i])
			}
		}
	}
	if len(res.RowPotential) != n || len(res.ColPotential) != n {
		return fmt.Errorf("%w: potentials have %d/%d entries, want %d",
			ErrBadDimension, len(res.RowPotential), len(res.ColPotential), n)
	}

	tol := eps * math.Max(1, m.MaxAbs())
	sign := 1.0
	if res.Objective == Minimize {
		sign = -1.0
	}

	// 3. dual feasibility over every pair.
	var (
		i, j  int
		slack float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			slack = sign * (res.RowPotential[i] + res.ColPotential[j] - w[i][j])
			if slack < -tol {
				return fmt.Errorf("%w: slack(%d,%d)=%g", ErrDualInfeasible, i, j, slack)
			}
		}
	}

	// 4-5. tightness of matched pairs and the reported total.
	var total float64
	for j, i = range res.Match {
		slack = res.RowPotential[i] + res.ColPotential[j] - w[i][j]
		if math.Abs(slack) > tol {
			return fmt.Errorf("%w: matched pair (%d,%d) has slack %g", ErrSlackness, i, j, slack)
		}
		total += w[i][j]
	}
	if math.Abs(total-res.Total) > float64(n)*tol {
		return fmt.Errorf("%w: reported %g, recomputed %g", ErrTotalMismatch, res.Total, total)
	}

	return nil
}
