// Package lvmatch solves dense linear assignment problems: given an n×n
// weight matrix, pick one column per row so that the total weight is
// maximal (or minimal).
//
// 🚀 What is lvmatch?
//
//	A small, deterministic library built around the primal-dual
//	Kuhn–Munkres method:
//		• assignment/ – Solve, SolveMatrix, Total and Verify
//		• matrix/     – dense square matrices, validators, gonum adapters
//		                and seeded random instances
//		• cmd/lvmatch – command-line solver for YAML/JSON problem files
//
// ✨ Why choose lvmatch?
//
//   - Certified – every Result carries dual potentials that prove optimality
//   - Bounded – O(n³) worst case, with a hard cap on dual updates
//   - Cancelable – context.Context checked between rows
//   - Observable – OnAugment / OnDualUpdate hooks instead of built-in logging
//
// Quick example:
//
//	      c0  c1  c2
//	r0 [  2   3   4 ]
//	r1 [  3   5   5 ]      → r0→c2, r1→c1, r2→c0, total 17
//	r2 [  8   7  10 ]
//
//	res, _ := assignment.Solve(w)
//	fmt.Println(res.Match, res.Total) // [2 1 0] 17
//
//	go get github.com/katalvlaran/lvmatch/assignment
package lvmatch
