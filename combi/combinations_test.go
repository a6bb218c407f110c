package combi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samplecover/coverkit/combi"
)

func TestCount(t *testing.T) {
	require.Equal(t, 35, combi.Count(7, 4))
	require.Equal(t, 28, combi.Count(8, 6))
	require.Equal(t, 1, combi.Count(5, 0))
	require.Equal(t, 0, combi.Count(3, 4))
	require.Equal(t, 0, combi.Count(3, -1))
}

func TestEnumerate_OrderAndShape(t *testing.T) {
	set := []int{1, 2, 3, 4}
	got, err := combi.Enumerate(set, 2)
	require.NoError(t, err)

	want := []combi.Tuple{
		{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
	}
	require.Equal(t, want, got)

	for _, tup := range got {
		require.True(t, combi.Canonical(tup))
	}
}

func TestEnumerate_CountMatches(t *testing.T) {
	set := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got, err := combi.Enumerate(set, 5)
	require.NoError(t, err)
	require.Len(t, got, combi.Count(len(set), 5))
}

func TestEnumerate_ZeroSize(t *testing.T) {
	got, err := combi.Enumerate([]int{1, 2, 3}, 0)
	require.NoError(t, err)
	require.Equal(t, []combi.Tuple{{}}, got)
}

func TestEnumerate_Rejects(t *testing.T) {
	_, err := combi.Enumerate([]int{3, 1, 2}, 2)
	require.ErrorIs(t, err, combi.ErrUnsorted)

	_, err = combi.Enumerate([]int{1, 1, 2}, 2)
	require.ErrorIs(t, err, combi.ErrUnsorted)

	_, err = combi.Enumerate([]int{1, 2, 3}, 4)
	require.ErrorIs(t, err, combi.ErrSizeOutOfRange)

	_, err = combi.Enumerate([]int{1, 2, 3}, -1)
	require.ErrorIs(t, err, combi.ErrSizeOutOfRange)
}

func TestSignature(t *testing.T) {
	sig, err := combi.Signature(combi.Tuple{1, 2, 3, 4}, 3)
	require.NoError(t, err)
	require.Equal(t, []combi.Tuple{{1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4}}, sig)
}
