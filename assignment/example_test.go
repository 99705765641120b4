package assignment_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/assignment"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two workers, two jobs; W[worker][job] is the expected profit.
//	  worker0: job0=3, job1=5
//	  worker1: job0=6, job1=2
//
// The best plan gives job1 to worker0 and job0 to worker1 (5 + 6 = 11).
//
// Complexity: O(n³) time, O(n²) memory
func ExampleSolve() {
	res, err := assignment.Solve([][]float64{
		{3, 5},
		{6, 2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range res.Pairs() {
		fmt.Printf("worker%d -> job%d\n", p[0], p[1])
	}
	fmt.Println("total:", res.Total)
	// Output:
	// worker0 -> job1
	// worker1 -> job0
	// total: 11
}

// ExampleSolve_minimize assigns drivers to pickups minimizing total minutes.
func ExampleSolve_minimize() {
	minutes := [][]float64{
		{9, 2, 7},
		{6, 4, 3},
		{5, 8, 1},
	}
	res, err := assignment.Solve(minutes, assignment.WithMinimize())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("driver → pickup:", res.RowToCol)
	fmt.Println("minutes:", res.Total)
	// Output:
	// driver → pickup: [1 0 2]
	// minutes: 9
}

// ExampleVerify checks a result's optimality certificate.
func ExampleVerify() {
	w := [][]float64{
		{2, 3, 4},
		{3, 5, 5},
		{8, 7, 10},
	}
	res, _ := assignment.Solve(w)
	fmt.Println("total:", res.Total)
	fmt.Println("certified:", assignment.Verify(w, res, assignment.DefaultEpsilon) == nil)
	// Output:
	// total: 17
	// certified: true
}
