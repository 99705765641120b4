package assignment

import "errors"

// Sentinel errors for assignment solving and certificate checks.
var (
	// ErrNonSquare is returned when the weight matrix is not n×n
	// (including ragged [][]float64 input).
	ErrNonSquare = errors.New("assignment: weight matrix is not square")

	// ErrBadDimension is returned for a nil matrix, a negative order, or a
	// matching/potential slice whose length disagrees with the matrix order.
	ErrBadDimension = errors.New("assignment: invalid dimension")

	// ErrNaNInf is returned when a weight is NaN or ±Inf.
	ErrNaNInf = errors.New("assignment: NaN or Inf weight")

	// ErrWeightRange is returned when a finite weight is so large that the
	// potentials or the total could overflow: max|W| must not exceed
	// MaxFloat64/(4(n+1)).
	ErrWeightRange = errors.New("assignment: weight magnitude out of range")

	// ErrNonConvergence signals that a row could not be matched within the
	// dual-update bound. On finite input this indicates an internal invariant
	// failure, not a property of the instance.
	ErrNonConvergence = errors.New("assignment: augmentation did not converge")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("assignment: invalid option supplied")

	// ErrCanceled is returned (together with ctx.Err()) when the context
	// passed via WithContext is done before the matching is complete.
	ErrCanceled = errors.New("assignment: solve canceled")

	// ErrNotPermutation is returned when a matching is not a bijection.
	ErrNotPermutation = errors.New("assignment: matching is not a permutation")

	// ErrDualInfeasible is returned when potentials violate dx[i]+dy[j] ≥ W[i][j]
	// (≤ for minimization) beyond the tolerance.
	ErrDualInfeasible = errors.New("assignment: potentials are not dual feasible")

	// ErrSlackness is returned when a matched pair is not tight.
	ErrSlackness = errors.New("assignment: complementary slackness violated")

	// ErrTotalMismatch is returned when a reported total differs from Σ W[Match[j]][j].
	ErrTotalMismatch = errors.New("assignment: total weight mismatch")
)

// Objective selects the optimization direction.
type Objective int

const (
	// Maximize finds the matching with the largest total weight (default).
	Maximize Objective = iota

	// Minimize finds the matching with the smallest total weight.
	// The solver runs on -W and maps the potentials back.
	Minimize
)

// String returns "max" or "min".
func (o Objective) String() string {
	switch o {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a solve.
//
// Invariants for n = len(Match):
//   - Match is a permutation of 0..n-1; Match[j] is the row assigned to column j.
//   - RowToCol is its inverse; RowToCol[Match[j]] == j.
//   - Total == Σ_j W[Match[j]][j] on the caller's (un-negated) weights.
//   - Maximize: RowPotential[i]+ColPotential[j] ≥ W[i][j], equality on matched pairs.
//   - Minimize: RowPotential[i]+ColPotential[j] ≤ W[i][j], equality on matched pairs.
type Result struct {
	Match        []int
	RowToCol     []int
	Total        float64
	RowPotential []float64
	ColPotential []float64
	Objective    Objective

	// DualUpdates counts potential adjustments across all rows.
	DualUpdates int
}

// Pairs returns the matching as (row, col) pairs ordered by row.
func (r Result) Pairs() [][2]int {
	out := make([][2]int, len(r.RowToCol))
	for i, j := range r.RowToCol {
		out[i] = [2]int{i, j}
	}

	return out
}
