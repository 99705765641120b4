// SPDX-License-Identifier: MIT

// Package matrix provides the dense weight storage consumed by the assignment solver.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with bounds-checked At/Set that never panic.
//   - A finite numeric policy: Set and every constructor reject NaN and ±Inf.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) returning plain
//     sentinel errors so call sites can wrap uniformly.
//   - gonum interop: FromGonum / (*Dense).ToGonum for callers that already hold
//     a gonum.org/v1/gonum/mat matrix.
//   - Seeded generators (RandomSquare, RandomIntSquare) for reproducible inputs
//     in benchmarks, tests and the lvmatch CLI.
//
// Unlike a general linear-algebra container, square matrices of order 0 are a
// legal value here (NewSquare(0)): an empty weight matrix is a valid, degenerate
// assignment instance.
//
// Complexity quicksheet:
//   - NewDense/NewSquare: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
//   - Validators: O(1) shape checks, O(r*c) for ValidateFinite.
package matrix
