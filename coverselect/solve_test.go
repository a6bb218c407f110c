package coverselect_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samplecover/coverkit/coverselect"
)

// hasSSubsetOverlap reports whether combo and target share at least one
// s-element common sub-tuple (the "hit" / "cover" relation).
func hasSSubsetOverlap(combo, target []int, s int) bool {
	set := make(map[int]bool, len(combo))
	for _, v := range combo {
		set[v] = true
	}
	shared := 0
	for _, v := range target {
		if set[v] {
			shared++
		}
	}

	return shared >= s
}

func distinctStrictlyIncreasing(t *testing.T, combos [][]int, k int) {
	t.Helper()
	seen := make(map[string]bool, len(combos))
	for _, c := range combos {
		require.Len(t, c, k)
		for i := 1; i < len(c); i++ {
			require.Less(t, c[i-1], c[i])
		}
		key := fmt.Sprint(c)
		require.False(t, seen[key], "duplicate combo %v", c)
		seen[key] = true
	}
}

// S1: m=45,n=7,k=4,j=4,s=4,t=1 — every 4-subset of a 7-element sample must
// itself be chosen, forcing all C(7,4)=35 combinations.
func TestSolve_S1_AllFourSubsetsOfSeven(t *testing.T) {
	res, err := coverselect.Solve(coverselect.Config{
		M: 45, N: 7, K: 4, J: 4, S: 4, T: 1,
		Samples: []int{1, 2, 3, 4, 5, 6, 7},
	})
	require.NoError(t, err)
	require.Len(t, res.Combos, 35)
	distinctStrictlyIncreasing(t, res.Combos, 4)
}

// S2: m=45,n=8,k=6,j=6,s=6,t=1 — output size = C(8,6) = 28.
func TestSolve_S2_AllSixSubsetsOfEight(t *testing.T) {
	res, err := coverselect.Solve(coverselect.Config{
		M: 45, N: 8, K: 6, J: 6, S: 6, T: 1,
		Samples: []int{1, 2, 3, 4, 5, 6, 7, 8},
	})
	require.NoError(t, err)
	require.Len(t, res.Combos, 28)
}

// S4: m=45,n=9,k=6,j=5,s=3,t=1, approximate mode. Every 5-subset must share
// at least a 3-subset with some chosen 6-subset.
func TestSolve_S4_ApproxCoversEveryTarget(t *testing.T) {
	res, err := coverselect.Solve(coverselect.Config{
		M: 45, N: 9, K: 6, J: 5, S: 3, T: 1,
		Samples: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		Seed:    0,
	})
	require.NoError(t, err)
	require.True(t, res.FullyCovered)

	targets := combinationsOf([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	for _, target := range targets {
		hit := false
		for _, c := range res.Combos {
			if hasSSubsetOverlap(c, target, 3) {
				hit = true
				break
			}
		}
		require.True(t, hit, "target %v not covered", target)
	}
}

// S5: determinism — two runs with the same seed produce identical combos.
func TestSolve_S5_ApproxDeterministic(t *testing.T) {
	cfg := coverselect.Config{
		M: 45, N: 10, K: 5, J: 5, S: 3, T: 1,
		Samples:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		Seed:      0,
		BeamWidth: 1,
	}

	res1, err := coverselect.Solve(cfg)
	require.NoError(t, err)
	res2, err := coverselect.Solve(cfg)
	require.NoError(t, err)

	require.Equal(t, res1.Combos, res2.Combos)
}

// S6: m=45,n=9,k=4,j=4,s=4,t=2 — every 4-subset only equals itself, so no
// target can ever be hit by 2 distinct candidates: InfeasibleInstance.
func TestSolve_S6_ThresholdTwoIsInfeasible(t *testing.T) {
	_, err := coverselect.Solve(coverselect.Config{
		M: 45, N: 9, K: 4, J: 4, S: 4, T: 2,
		Samples: []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
	})
	require.ErrorIs(t, err, coverselect.ErrInfeasibleInstance)
}

func TestSolve_RejectsOutOfRangeParameters(t *testing.T) {
	_, err := coverselect.Solve(coverselect.Config{
		M: 100, N: 7, K: 4, J: 4, S: 4, T: 1,
		Samples: []int{1, 2, 3, 4, 5, 6, 7},
	})
	require.ErrorIs(t, err, coverselect.ErrInvalidParameters)
}

func TestSolve_RejectsMissingSamplesAndRandomSelect(t *testing.T) {
	_, err := coverselect.Solve(coverselect.Config{
		M: 45, N: 7, K: 4, J: 4, S: 4, T: 1,
	})
	require.ErrorIs(t, err, coverselect.ErrConfigurationError)
}

func TestSolve_RandomSelectDrawsNDistinctElements(t *testing.T) {
	res, err := coverselect.Solve(coverselect.Config{
		M: 45, N: 7, K: 4, J: 4, S: 4, T: 1,
		RandomSelect: true,
		Seed:         42,
	})
	require.NoError(t, err)
	require.Len(t, res.Samples, 7)
	for i := 1; i < len(res.Samples); i++ {
		require.Less(t, res.Samples[i-1], res.Samples[i])
	}
}

// combinationsOf is a small local helper (avoids importing combi just for a
// test fixture) producing every r-subset of set.
func combinationsOf(set []int, r int) [][]int {
	n := len(set)
	if r > n {
		return nil
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	for {
		tup := make([]int, r)
		for i, v := range idx {
			tup[i] = set[v]
		}
		out = append(out, tup)

		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for k := i + 1; k < r; k++ {
			idx[k] = idx[k-1] + 1
		}
	}

	return out
}
