// Package assignment - primal-dual core.
//
// State owned by one solve call (nothing is shared across calls):
//   - dx, dy: row and column potentials, dual feasible at all times.
//   - ym: column → row matching, -1 for unmatched columns.
//   - inS/inT with sRows/tCols: the alternating tree of the current attempt.
//     The member lists make resets O(|S|+|T|) instead of O(n).
//   - stack: explicit DFS frames, reused across attempts.
package assignment

import (
	"fmt"
	"math"
)

// frame is one row on the augmenting-search stack.
//   - row:  the row being expanded.
//   - next: the next column to scan from row.
//   - col:  the column through which the search descended to the next frame.
type frame struct {
	row  int
	next int
	col  int
}

// solver carries the mutable state of a single maximization solve.
type solver struct {
	n   int
	w   []float64 // row-major n×n, maximization form
	tol float64   // absolute tightness tolerance

	dx []float64
	dy []float64
	ym []int

	inS   []bool
	inT   []bool
	sRows []int
	tCols []int
	stack []frame

	updates int
	opts    *Options
}

// newSolver allocates all per-call structures and initializes potentials:
// dx[i] = max_j W[i][j], dy[j] = 0, ym[j] = -1.
// Complexity: O(n²).
func newSolver(n int, w []float64, opts *Options) *solver {
	s := &solver{
		n:     n,
		w:     w,
		dx:    make([]float64, n),
		dy:    make([]float64, n),
		ym:    make([]int, n),
		inS:   make([]bool, n),
		inT:   make([]bool, n),
		sRows: make([]int, 0, n),
		tCols: make([]int, 0, n),
		stack: make([]frame, 0, n),
		opts:  opts,
	}

	var (
		i, j   int
		rowMax float64
		maxAbs float64
	)
	for i = 0; i < n; i++ {
		rowMax = w[i*n]
		for j = 0; j < n; j++ {
			if w[i*n+j] > rowMax {
				rowMax = w[i*n+j]
			}
			if a := math.Abs(w[i*n+j]); a > maxAbs {
				maxAbs = a
			}
		}
		s.dx[i] = rowMax
	}
	for j = 0; j < n; j++ {
		s.ym[j] = -1
	}
	s.tol = opts.Eps * math.Max(1, maxAbs)

	return s
}

// slack returns dx[i] + dy[j] - W[i][j].
func (s *solver) slack(i, j int) float64 {
	return s.dx[i] + s.dy[j] - s.w[i*s.n+j]
}

// tight reports whether (i, j) belongs to the equality subgraph.
func (s *solver) tight(i, j int) bool {
	return s.slack(i, j) <= s.tol
}

// run inserts rows 0..n-1 in order, alternating augmentation attempts and
// potential updates until each row is matched.
func (s *solver) run() error {
	limit := s.opts.updateLimit(s.n)

	var (
		x, attempt, pathLen int
		ok                  bool
		delta               float64
	)
	for x = 0; x < s.n; x++ {
		for attempt = 0; ; attempt++ {
			if err := s.opts.Ctx.Err(); err != nil {
				return fmt.Errorf("%w: row %d: %w", ErrCanceled, x, err)
			}
			if pathLen, ok = s.augment(x); ok {
				s.opts.OnAugment(x, pathLen)
				break
			}
			if attempt >= limit {
				return fmt.Errorf("%w: row %d still unmatched after %d dual updates", ErrNonConvergence, x, attempt)
			}
			if delta, ok = s.frontierSlack(); !ok {
				return fmt.Errorf("%w: row %d has an empty frontier", ErrNonConvergence, x)
			}
			s.shift(delta)
			s.updates++
			s.opts.OnDualUpdate(delta, len(s.sRows), len(s.tCols))
		}
	}

	return nil
}

// resetTree clears S and T in O(|S|+|T|).
func (s *solver) resetTree() {
	for _, i := range s.sRows {
		s.inS[i] = false
	}
	for _, j := range s.tCols {
		s.inT[j] = false
	}
	s.sRows = s.sRows[:0]
	s.tCols = s.tCols[:0]
	s.stack = s.stack[:0]
}

// visitRow adds row i to S and pushes its frame.
func (s *solver) visitRow(i int) {
	s.inS[i] = true
	s.sRows = append(s.sRows, i)
	s.stack = append(s.stack, frame{row: i, next: 0, col: -1})
}

// augment searches the equality subgraph depth-first from root.
//
// Each frame scans its row's columns in index order. A tight column outside
// T joins T; if it is free the path is complete, otherwise the search
// descends into the row currently holding it. A frame with no columns left
// is popped and its parent resumes scanning.
//
// On success every frame k on the stack reassigns ym[col_k] = row_k, which
// flips the alternating path and matches root. Returns the path length.
// On failure S and T are left populated for frontierSlack and shift.
//
// Complexity: O(n²) per attempt (every (row, column) pair is scanned at most once).
func (s *solver) augment(root int) (int, bool) {
	s.resetTree()
	s.visitRow(root)

	var (
		top *frame
		j   int
		k   int
	)
	for len(s.stack) > 0 {
		top = &s.stack[len(s.stack)-1]
		descended := false
		for top.next < s.n {
			j = top.next
			top.next++
			if s.inT[j] || !s.tight(top.row, j) {
				continue
			}
			s.inT[j] = true
			s.tCols = append(s.tCols, j)
			top.col = j

			if s.ym[j] == -1 {
				for k = len(s.stack) - 1; k >= 0; k-- {
					s.ym[s.stack[k].col] = s.stack[k].row
				}
				return len(s.stack), true
			}

			// top may be invalidated by append; nothing reads it past this point.
			s.visitRow(s.ym[j])
			descended = true
			break
		}
		if !descended {
			s.stack = s.stack[:len(s.stack)-1]
		}
	}

	return 0, false
}

// frontierSlack returns min over i∈S, j∉T of slack(i, j).
// ok is false when the frontier is empty (T covers every column), which
// cannot happen while the root is unmatched.
// Complexity: O(|S|·n).
func (s *solver) frontierSlack() (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, i := range s.sRows {
		for j := 0; j < s.n; j++ {
			if s.inT[j] {
				continue
			}
			if d := s.slack(i, j); d < best {
				best = d
				found = true
			}
		}
	}

	return best, found
}

// shift moves delta from the rows in S to the columns in T:
// dx[i] -= delta for i∈S and dy[j] += delta for j∈T.
// Edges inside S×T keep their slack, S×¬T edges lose delta (at least one
// becomes tight), ¬S×T edges gain delta, ¬S×¬T edges are unchanged.
func (s *solver) shift(delta float64) {
	for _, i := range s.sRows {
		s.dx[i] -= delta
	}
	for _, j := range s.tCols {
		s.dy[j] += delta
	}
}
