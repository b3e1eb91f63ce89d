package repairtime

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	rttest "github.com/arloliu/repairtime/testing"
)

func TestSolution_Allocation(t *testing.T) {
	tests := []struct {
		name string
		sol  Solution
		want []int64
	}{
		{
			name: "exact fit",
			sol:  Solution{Requirement: 10, Capacities: []int64{2, 2, 2, 4}, Total: 10},
			want: []int64{2, 2, 2, 4},
		},
		{
			name: "surplus left on later workers",
			sol:  Solution{Requirement: 5, Capacities: []int64{4, 4, 4}, Total: 12},
			want: []int64{4, 1, 0},
		},
		{
			name: "zero-capacity worker skipped",
			sol:  Solution{Requirement: 3, Capacities: []int64{0, 1, 5}, Total: 6},
			want: []int64{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.sol.Allocation())
		})
	}
}

func TestSolution_Surplus(t *testing.T) {
	sol := Solution{Requirement: 5, Total: 12}
	require.Equal(t, int64(7), sol.Surplus())
}

func TestSolution_AllocationFromSolve(t *testing.T) {
	s, err := NewSolver(nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(31))
	for range 100 {
		p := rttest.RandomProblem(rng, rttest.ProblemLimits{MaxWorkers: 12, MaxRank: 100, MaxRequirement: 2000})

		sol, err := s.Solve(p)
		require.NoError(t, err)
		require.GreaterOrEqual(t, sol.Total, p.Requirement)

		alloc := sol.Allocation()
		require.Len(t, alloc, len(p.Ranks))

		var sum int64
		for i, a := range alloc {
			require.GreaterOrEqual(t, a, int64(0))
			require.LessOrEqual(t, a, sol.Capacities[i])
			sum += a
		}
		require.Equal(t, p.Requirement, sum)
	}
}
