// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the finite numeric policy (NaN/±Inf rejected) from a single place.
//
// Complexity quicksheet:
//   - NewDense/NewSquare: O(r*c) zero-init; NewFromRows: O(r*c) copy; At/Set: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxFromRows = "NewFromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); zero is legal for square order-0 matrices.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// The public constructor forbids empty dimensions; use NewSquare(0) when an
// empty square matrix is the intended value.
//
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix. n == 0 is allowed and yields an
// empty matrix (a valid degenerate assignment instance).
//
// Errors: ErrInvalidDimensions when n<0.
// Complexity: Time O(n²), Space O(n²).
func NewSquare(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: n, c: n, data: make([]float64, n*n)}, nil
}

// NewFromRows copies a [][]float64 into a fresh Dense.
//
// Implementation:
//   - Stage 1: len(rows)==0 (including nil) yields a 0×0 matrix.
//   - Stage 2: every row must have len(rows[0]); otherwise ErrRaggedRows.
//   - Stage 3: copy values, rejecting NaN/±Inf with ErrNaNInf (wrapped with coordinates).
//
// The input slices are never retained.
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])

	var (
		i, j int
		v    float64
	)
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
	}

	data := make([]float64, r*c)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			data[i*c+j] = v
		}
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors: ErrOutOfRange for bounds; ErrNaNInf for NaN/±Inf values.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with a new buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Rows2D returns a freshly allocated [][]float64 copy of the matrix.
// A 0×0 matrix yields an empty, non-nil slice.
// Complexity: O(r*c).
func (m *Dense) Rows2D() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Negate returns a new matrix holding -m, i.e. the maximization form of a
// cost matrix.
// Complexity: O(r*c).
func (m *Dense) Negate() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for k, v := range m.data {
		out.data[k] = -v
	}

	return out
}

// MaxAbs returns max |a_ij|, or 0 for an empty matrix.
// Complexity: O(r*c).
func (m *Dense) MaxAbs() float64 {
	var best float64
	for _, v := range m.data {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// String renders the matrix one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
