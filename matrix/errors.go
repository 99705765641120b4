// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every function returns these sentinels (possibly wrapped with
// call-site context via %w) and tests check them with errors.Is.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Context is attached at the detection site with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative (or non-positive for the strict NewDense constructor).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals that a [][]float64 input has rows of differing length.
	ErrRaggedRows = errors.New("matrix: rows have differing lengths")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidRange indicates a generator range with lo > hi or non-finite bounds.
	ErrInvalidRange = errors.New("matrix: invalid value range")
)
