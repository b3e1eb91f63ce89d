package testing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearMinimalTime(t *testing.T) {
	tests := []struct {
		name  string
		ranks []int64
		req   int64
		want  int64
	}{
		{"single rank 1", []int64{1}, 4, 16},
		{"reference crew", []int64{4, 2, 3, 1}, 10, 16},
		{"three workers", []int64{5, 1, 8}, 6, 16},
		{"one unit", []int64{3}, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LinearMinimalTime(tt.ranks, tt.req, 1000)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLinearMinimalTime_Limit(t *testing.T) {
	_, ok := LinearMinimalTime([]int64{1}, 4, 15)
	require.False(t, ok)

	got, ok := LinearMinimalTime([]int64{1}, 4, 16)
	require.True(t, ok)
	require.Equal(t, int64(16), got)
}

func TestRandomProblem(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	limits := ProblemLimits{MaxWorkers: 4, MaxRank: 10, MaxRequirement: 20}

	for range 100 {
		p := RandomProblem(rng, limits)

		require.NoError(t, p.Validate())
		require.LessOrEqual(t, len(p.Ranks), 4)
		require.LessOrEqual(t, p.Requirement, int64(20))
		for _, r := range p.Ranks {
			require.LessOrEqual(t, r, int64(10))
		}
	}
}

func TestRandomProblem_ZeroLimits(t *testing.T) {
	p := RandomProblem(rand.New(rand.NewSource(1)), ProblemLimits{})

	require.Equal(t, []int64{1}, p.Ranks)
	require.Equal(t, int64(1), p.Requirement)
}

func TestRandomProblem_Deterministic(t *testing.T) {
	limits := ProblemLimits{MaxWorkers: 8, MaxRank: 100, MaxRequirement: 50}

	a := RandomProblem(rand.New(rand.NewSource(99)), limits)
	b := RandomProblem(rand.New(rand.NewSource(99)), limits)

	require.Equal(t, a, b)
}
