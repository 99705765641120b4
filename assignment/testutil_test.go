package assignment_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmatch/assignment"
	"github.com/katalvlaran/lvmatch/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
)

// scenarioC is the classic 3×3 textbook instance; its optimum (17) needs two
// dual updates while inserting the last row.
var scenarioC = [][]float64{
	{2, 3, 4},
	{3, 5, 5},
	{8, 7, 10},
}

// bruteForce returns the best total over all n! row→column permutations.
// Intended for n ≤ 6 only.
func bruteForce(t *testing.T, w [][]float64, obj assignment.Objective) float64 {
	t.Helper()
	n := len(w)
	if n == 0 {
		return 0
	}
	require.LessOrEqual(t, n, 6, "bruteForce is exponential; keep n small")

	best := math.Inf(-1)
	if obj == assignment.Minimize {
		best = math.Inf(1)
	}
	for _, perm := range combin.Permutations(n, n) {
		var sum float64
		for row, col := range perm {
			sum += w[row][col]
		}
		if (obj == assignment.Maximize && sum > best) || (obj == assignment.Minimize && sum < best) {
			best = sum
		}
	}

	return best
}

// mustIntMatrix generates a seeded integer n×n weight matrix in [lo, hi).
func mustIntMatrix(t testing.TB, n, lo, hi int, seed int64) [][]float64 {
	t.Helper()
	m, err := matrix.RandomIntSquare(n, lo, hi, seed)
	require.NoError(t, err)

	return m.Rows2D()
}

// mustFloatMatrix generates a seeded real n×n weight matrix in [lo, hi).
func mustFloatMatrix(t testing.TB, n int, lo, hi float64, seed int64) [][]float64 {
	t.Helper()
	m, err := matrix.RandomSquare(n, lo, hi, seed)
	require.NoError(t, err)

	return m.Rows2D()
}

// requirePermutation asserts that match is a bijection on 0..n-1.
func requirePermutation(t *testing.T, match []int, n int) {
	t.Helper()
	require.Len(t, match, n)
	seen := make([]bool, n)
	for col, row := range match {
		require.GreaterOrEqualf(t, row, 0, "column %d unmatched", col)
		require.Lessf(t, row, n, "column %d matched out of range", col)
		require.Falsef(t, seen[row], "row %d matched twice", row)
		seen[row] = true
	}
}

// requireCertificate asserts dual feasibility and complementary slackness
// directly on the Result, independent of assignment.Verify.
func requireCertificate(t *testing.T, w [][]float64, res assignment.Result, tol float64) {
	t.Helper()
	n := len(w)
	sign := 1.0
	if res.Objective == assignment.Minimize {
		sign = -1.0
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			slack := sign * (res.RowPotential[i] + res.ColPotential[j] - w[i][j])
			require.GreaterOrEqualf(t, slack, -tol, "dual infeasible at (%d,%d)", i, j)
		}
	}
	for j, i := range res.Match {
		slack := res.RowPotential[i] + res.ColPotential[j] - w[i][j]
		require.InDeltaf(t, 0, slack, tol, "matched pair (%d,%d) not tight", i, j)
	}
}

// nanMatrix is a Matrix that can report a non-finite value at one cell,
// bypassing the Dense finite policy.
type nanMatrix struct {
	*matrix.Dense
	i, j int
	v    float64
}

func (m nanMatrix) At(i, j int) (float64, error) {
	if i == m.i && j == m.j {
		return m.v, nil
	}
	return m.Dense.At(i, j)
}
