package pruner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samplecover/coverkit/combi"
	"github.com/samplecover/coverkit/pruner"
)

func TestPrune_NoCollapseWhenSEqualsK(t *testing.T) {
	// s == k: every candidate's signature is itself, one class per candidate.
	candidates, err := combi.Enumerate([]int{1, 2, 3, 4, 5}, 4)
	require.NoError(t, err)

	res, err := pruner.Prune(candidates, 4)
	require.NoError(t, err)
	require.Len(t, res.Representatives, len(candidates))
}

func TestPrune_ClassBookkeepingIsConsistent(t *testing.T) {
	// Distinct combinations of one size never share their whole set of
	// s-subsets, so no collapse can be forced here. Use k=3, s=2 over a
	// 4-sample and check that class membership bookkeeping is self-consistent:
	// every candidate lands in exactly one class, led by its smallest member.
	candidates, err := combi.Enumerate([]int{1, 2, 3, 4}, 3)
	require.NoError(t, err)

	res, err := pruner.Prune(candidates, 2)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, rep := range res.Representatives {
		members := res.Classes[rep]
		require.Contains(t, members, rep)
		require.Equal(t, rep, members[0], "representative must be the smallest member")
		for _, m := range members {
			require.False(t, seen[m], "candidate %d assigned to two classes", m)
			seen[m] = true
		}
	}
	require.Len(t, seen, len(candidates))
}

func TestPrune_RepresentativeOrderFollowsLexicographicEnumeration(t *testing.T) {
	candidates, err := combi.Enumerate([]int{1, 2, 3, 4, 5, 6}, 4)
	require.NoError(t, err)

	res, err := pruner.Prune(candidates, 4)
	require.NoError(t, err)

	for i := 1; i < len(res.Representatives); i++ {
		require.Less(t, res.Representatives[i-1], res.Representatives[i])
	}
}
