package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samplecover/coverkit/combi"
	"github.com/samplecover/coverkit/coverage"
)

func TestBuild_RejectsEmptyInputs(t *testing.T) {
	targets, err := combi.Enumerate([]int{1, 2, 3}, 2)
	require.NoError(t, err)

	_, err = coverage.Build(nil, targets, 2)
	require.ErrorIs(t, err, coverage.ErrEmptyCandidates)

	candidates, err := combi.Enumerate([]int{1, 2, 3}, 2)
	require.NoError(t, err)
	_, err = coverage.Build(candidates, nil, 2)
	require.ErrorIs(t, err, coverage.ErrEmptyTargets)
}

func TestBuild_HitsWhenSSubsetEqualsJSubset(t *testing.T) {
	// s == j: a candidate hits a target iff the target's single s-subset (the
	// target itself) is contained in the candidate.
	candidates, err := combi.Enumerate([]int{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	targets, err := combi.Enumerate([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)

	m, err := coverage.Build(candidates, targets, 2)
	require.NoError(t, err)

	// Candidate {1,2,3} must hit target {1,2}.
	var candIdx, targIdx int = -1, -1
	for i, c := range candidates {
		if c[0] == 1 && c[1] == 2 && c[2] == 3 {
			candIdx = i
		}
	}
	for l, tg := range targets {
		if tg[0] == 1 && tg[1] == 2 {
			targIdx = l
		}
	}
	require.GreaterOrEqual(t, candIdx, 0)
	require.GreaterOrEqual(t, targIdx, 0)
	require.True(t, m.Hits(candIdx, targIdx))
}

func TestBuild_FullyCovers(t *testing.T) {
	candidates, err := combi.Enumerate([]int{1, 2, 3, 4}, 3)
	require.NoError(t, err)
	targets, err := combi.Enumerate([]int{1, 2, 3, 4}, 2)
	require.NoError(t, err)

	m, err := coverage.Build(candidates, targets, 2)
	require.NoError(t, err)

	all := make([]int, m.NumCandidates())
	for i := range all {
		all[i] = i
	}
	require.True(t, m.FullyCovers(all))
	require.False(t, m.FullyCovers(nil))
}

func TestBuild_HittingCandidatesNonEmptyForEveryTarget(t *testing.T) {
	candidates, err := combi.Enumerate([]int{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	targets, err := combi.Enumerate([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)

	m, err := coverage.Build(candidates, targets, 2)
	require.NoError(t, err)

	for l := 0; l < m.NumTargets(); l++ {
		require.NotEmpty(t, m.HittingCandidates(l))
	}
}
