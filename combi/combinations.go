package combi

import "sort"

// Count returns C(n, r), the binomial coefficient, computed without
// intermediate overflow for the parameter ranges this module supports
// (n ≤ 25, r ≤ 25).
//
// Complexity: O(r).
func Count(n, r int) int {
	if r < 0 || r > n {
		return 0
	}
	if r > n-r {
		r = n - r // C(n, r) == C(n, n-r); shrink the loop
	}
	var result, i int
	result = 1
	for i = 0; i < r; i++ {
		result = result * (n - i) / (i + 1)
	}

	return result
}

// Enumerate returns every r-element combination of set, in strict
// lexicographic order. set must already be strictly increasing (the caller's
// canonical Sample); Enumerate does not sort it.
//
// The returned order is load-bearing: exactsolve's symmetry-breaking
// constraints and greedysolve's deterministic tie-break both assume index i
// precedes index i+1 in this same order.
//
// Complexity: O(C(len(set), r) * r) time, O(C(len(set), r) * r) space.
func Enumerate(set []int, r int) ([]Tuple, error) {
	n := len(set)
	if r < 0 || r > n {
		return nil, ErrSizeOutOfRange
	}
	if !sort.IntsAreSorted(set) || hasDuplicate(set) {
		return nil, ErrUnsorted
	}
	if r == 0 {
		return []Tuple{{}}, nil
	}

	out := make([]Tuple, 0, Count(n, r))
	idx := make([]int, r)
	var i int
	for i = 0; i < r; i++ {
		idx[i] = i
	}

	for {
		tup := make(Tuple, r)
		for i = 0; i < r; i++ {
			tup[i] = set[idx[i]]
		}
		out = append(out, tup)

		// Advance idx to the next combination in lexicographic order:
		// find the rightmost index that can still be incremented.
		i = r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		var k int
		for k = i + 1; k < r; k++ {
			idx[k] = idx[k-1] + 1
		}
	}

	return out, nil
}

// hasDuplicate reports whether a strictly-non-decreasing slice contains a
// repeated value; used to reject non-canonical sets cheaply.
func hasDuplicate(set []int) bool {
	var i int
	for i = 1; i < len(set); i++ {
		if set[i] == set[i-1] {
			return true
		}
	}

	return false
}

// Canonical reports whether t is strictly increasing, the required form for
// every KCombo/JSubset/SSubset.
func Canonical(t Tuple) bool {
	var i int
	for i = 1; i < len(t); i++ {
		if t[i] <= t[i-1] {
			return false
		}
	}

	return true
}

// Signature computes, for a combo over the full sample, the canonical
// s-element sub-tuples it contains, in lexicographic order. This is the
// primitive pruner.Prune and coverage.Build both use to derive SSubsets from
// a KCombo or JSubset.
func Signature(combo Tuple, s int) ([]Tuple, error) {
	return Enumerate(combo, s)
}
