// SPDX-License-Identifier: MIT

// Package matrix - seeded random generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each call builds its own stream.

package matrix

import (
	"math"
	"math/rand"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomSquare returns an n×n matrix with entries drawn uniformly from [lo, hi).
// lo == hi yields a constant matrix.
//
// Errors: ErrInvalidDimensions (n<0), ErrInvalidRange (lo>hi or non-finite bounds).
// Complexity: O(n²).
func RandomSquare(n int, lo, hi float64, seed int64) (*Dense, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return nil, ErrInvalidRange
	}

	m, _ := NewSquare(n)
	rng := rngFromSeed(seed)
	span := hi - lo
	for k := range m.data {
		m.data[k] = lo + rng.Float64()*span
	}

	return m, nil
}

// RandomIntSquare returns an n×n matrix of integers drawn uniformly from [lo, hi).
// Integer weights keep tightness comparisons exact (epsilon may be 0).
//
// Errors: ErrInvalidDimensions (n<0), ErrInvalidRange (lo>=hi).
// Complexity: O(n²).
func RandomIntSquare(n, lo, hi int, seed int64) (*Dense, error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}
	if lo >= hi {
		return nil, ErrInvalidRange
	}

	m, _ := NewSquare(n)
	rng := rngFromSeed(seed)
	span := hi - lo
	for k := range m.data {
		m.data[k] = float64(lo + rng.Intn(span))
	}

	return m, nil
}
