// Package assignment solves the dense assignment problem with the
// Kuhn–Munkres (Hungarian) primal-dual method.
//
// 🚀 What is the assignment problem?
//
//	Given an n×n weight matrix W between "rows" and "columns", find a
//	one-to-one matching that maximizes Σ W[row][col] (or minimizes it).
//	Typical uses:
//	  • Worker ↔ task allocation
//	  • Detection ↔ track association
//	  • Bipartite pairing with scores or costs
//
// ✨ Key features:
//   - exact optimum, O(n³) worst case, O(n²) memory
//   - maximization (default) or minimization via WithMinimize
//   - explicit-stack augmenting search (no recursion depth limits)
//   - floating-point tightness tolerance (WithEpsilon), exact mode with eps=0
//   - dual potentials returned with every Result and checked by Verify
//   - hooks (WithOnAugment, WithOnDualUpdate) and context cancellation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvmatch/assignment"
//
//	res, err := assignment.Solve([][]float64{
//	  {3, 5},
//	  {6, 2},
//	})
//	// res.Match == []int{1, 0}  (column → row)
//	// res.Total == 11
//
// Algorithm:
//
//	Row potentials start at the row maxima and column potentials at zero,
//	so dx[i]+dy[j] ≥ W[i][j] holds from the start. Rows are inserted one at
//	a time: a depth-first search over tight edges (dx[i]+dy[j] == W[i][j])
//	looks for an augmenting path; when none exists, the minimum slack on the
//	frontier is moved from the visited rows to the visited columns, which
//	creates at least one new tight edge and never breaks feasibility.
//	At termination the matching and the potentials satisfy complementary
//	slackness, which certifies optimality.
//
// Errors:
//
//	Malformed input (non-square, ragged, NaN/Inf) fails before any potential is
//	computed. A complete matching is returned or an error is; partial
//	matchings are never exposed.
package assignment
