package greedysolve

import (
	"math/rand"
	"sort"
)

// defaultTrialMultiplier sets the 2-opt trial budget to 5 * |selection|
// when Config.TwoOptMaxIters is left at zero, per the reference policy.
const defaultTrialMultiplier = 5

// refine runs the 2-opt post-improvement pass: up to budget trials, each
// sampling two distinct positions from the current selection uniformly at
// random, forming the tentative selection without them, and accepting the
// shrink if the bitmask union-test still shows full coverage. Grounded on
// tsp.TwoOpt's soft-budget, accept-on-improvement loop shape, adapted from
// "shorten a tour" to "drop two candidates without losing coverage".
func refine(m CoverageMatrix, selection []int, budget int, rng *rand.Rand) []int {
	cur := append([]int(nil), selection...)
	if len(cur) < 3 {
		sort.Ints(cur)

		return cur // need at least 3 members to drop 2 and still cover anything
	}

	if budget <= 0 {
		budget = defaultTrialMultiplier * len(cur)
	}

	for trial := 0; trial < budget && len(cur) >= 3; trial++ {
		i, j := randomDistinctPair(len(cur), rng)
		tentative := removePositions(cur, i, j)
		if fullyCovers(m, tentative) {
			cur = tentative
		}
	}

	sort.Ints(cur)

	return cur
}

// randomDistinctPair draws two distinct indices in [0, n) uniformly at
// random, ordered lo < hi so removePositions need not special-case order.
func randomDistinctPair(n int, rng *rand.Rand) (lo, hi int) {
	lo = rng.Intn(n)
	hi = rng.Intn(n - 1)
	if hi >= lo {
		hi++
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo, hi
}

// removePositions returns a copy of s with the elements at positions lo and
// hi (lo < hi) removed.
func removePositions(s []int, lo, hi int) []int {
	out := make([]int, 0, len(s)-2)
	for idx, v := range s {
		if idx == lo || idx == hi {
			continue
		}
		out = append(out, v)
	}

	return out
}

// fullyCovers reports whether every target is hit by at least one
// candidate in selection, the bitmask union-test of coverage.Matrix.FullyCovers
// re-expressed against the narrow CoverageMatrix interface this package
// depends on.
func fullyCovers(m CoverageMatrix, selection []int) bool {
	numTargets := m.NumTargets()
	for t := 0; t < numTargets; t++ {
		hit := false
		for _, c := range selection {
			if m.Hits(c, t) {
				hit = true

				break
			}
		}
		if !hit {
			return false
		}
	}

	return true
}
