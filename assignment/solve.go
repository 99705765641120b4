// Package assignment - public entry points.
//
// This file provides the canonical entry points:
//
//   - Solve: accept [][]float64 weights, convert and delegate to SolveMatrix.
//   - SolveMatrix: accept any matrix.Matrix, validate, run the primal-dual
//     core and assemble the Result.
//
// Design principles:
//   - Deterministic: fixed row insertion order and column scan order.
//   - Strict sentinels: malformed input fails fast with errors from types.go.
//   - No partial results: on error the Result is always the zero value.
package assignment

import (
	"github.com/katalvlaran/lvmatch/matrix"
)

// Solve finds an optimal perfect matching for the square weight matrix w.
//
// Contracts:
//   - w must be n×n (n ≥ 0); nil or empty w is the order-0 instance.
//   - every weight must be finite with |w| ≤ MaxFloat64/(4(n+1)).
//   - the input is copied; w is never mutated.
//
// Errors: ErrNonSquare, ErrNaNInf, ErrWeightRange, ErrOptionViolation, ErrCanceled,
// ErrNonConvergence.
//
// Complexity: O(n³) time worst case, O(n²) space.
func Solve(w [][]float64, opts ...Option) (Result, error) {
	m, err := fromRows(w)
	if err != nil {
		return Result{}, err
	}

	return SolveMatrix(m, opts...)
}

// SolveMatrix is Solve over the matrix.Matrix interface.
//
// Contracts:
//   - m must be non-nil and square; a 0×0 *matrix.Dense is accepted.
//   - entries are read once through At; NaN/±Inf are rejected even when the
//     concrete Matrix does not enforce a finite policy.
//
// Errors: ErrBadDimension (nil), ErrNonSquare, ErrNaNInf, ErrWeightRange, ErrOptionViolation,
// ErrCanceled, ErrNonConvergence.
func SolveMatrix(m matrix.Matrix, opts ...Option) (Result, error) {
	// Stage 1 - options.
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}

	// Stage 2 - validation and private copy.
	n, w, err := flatten(m)
	if err != nil {
		return Result{}, err
	}

	// Stage 3 - degenerate instance.
	if n == 0 {
		return Result{
			Match:        []int{},
			RowToCol:     []int{},
			RowPotential: []float64{},
			ColPotential: []float64{},
			Objective:    o.Objective,
		}, nil
	}

	// Stage 4 - minimization runs on -W.
	if o.Objective == Minimize {
		for k := range w {
			w[k] = -w[k]
		}
	}

	// Stage 5 - primal-dual core.
	s := newSolver(n, w, &o)
	if err = s.run(); err != nil {
		return Result{}, err
	}

	return s.result(o.Objective), nil
}

// result assembles a Result from the terminal solver state, mapping the
// maximization form back to the caller's objective.
func (s *solver) result(obj Objective) Result {
	n := s.n
	res := Result{
		Match:        make([]int, n),
		RowToCol:     make([]int, n),
		RowPotential: make([]float64, n),
		ColPotential: make([]float64, n),
		Objective:    obj,
		DualUpdates:  s.updates,
	}
	copy(res.Match, s.ym)
	copy(res.RowPotential, s.dx)
	copy(res.ColPotential, s.dy)

	var total float64
	for j, i := range s.ym {
		res.RowToCol[i] = j
		total += s.w[i*n+j]
	}

	if obj == Minimize {
		total = -total
		for k := 0; k < n; k++ {
			res.RowPotential[k] = -res.RowPotential[k]
			res.ColPotential[k] = -res.ColPotential[k]
		}
	}
	res.Total = total

	return res
}
