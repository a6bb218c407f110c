package greedysolve

import (
	"math/rand"
	"sort"
)

// beamState is one partial selection tracked by the beam search.
type beamState struct {
	selection    []int
	covered      []bool
	coveredCount int
}

func (b beamState) clone() beamState {
	covered := make([]bool, len(b.covered))
	copy(covered, b.covered)
	selection := make([]int, len(b.selection))
	copy(selection, b.selection)

	return beamState{selection: selection, covered: covered, coveredCount: b.coveredCount}
}

// candidateScore is how much of the still-uncovered target set candidate i
// would newly cover, precomputed once per beam round against a specific
// beamState's covered mask.
type candidateScore struct {
	candidate int
	gain      int
}

// beamSearch runs the greedy max-coverage construction phase: at each
// round, every live beam state tries adding every not-yet-chosen
// candidate, scored by marginal coverage gain; the top beamWidth resulting
// states (by coveredCount, deterministically tie-broken) survive into the
// next round. Construction stops once every surviving state has full
// coverage, or after one round per candidate; a state that is already full
// or can make no further progress is carried forward unchanged.
func beamSearch(m CoverageMatrix, beamWidth int, rng *rand.Rand) beamState {
	numCandidates := m.NumCandidates()
	numTargets := m.NumTargets()

	if beamWidth < 1 {
		beamWidth = 1
	}

	coverage := precomputeCoverage(m)

	states := []beamState{{covered: make([]bool, numTargets)}}

	for round := 0; round < numCandidates; round++ {
		if allFullyCovered(states) {
			break
		}

		var next []beamState
		for _, st := range states {
			if st.coveredCount == numTargets {
				next = append(next, st) // already done; carry forward unchanged
				continue
			}
			scores := scoreCandidates(coverage, st, st.chosen())
			if len(scores) == 0 {
				next = append(next, st) // stuck; nothing left to try
				continue
			}

			// Randomize the order among equal-gain candidates, then pick a
			// deterministic-for-this-seed top slice to branch on.
			shuffleEqualGainGroups(scores, rng)
			limit := beamWidth
			if limit > len(scores) {
				limit = len(scores)
			}
			for _, sc := range scores[:limit] {
				child := st.clone()
				applyCandidate(&child, coverage[sc.candidate], sc.candidate)
				next = append(next, child)
			}
		}

		states = keepTopStates(next, beamWidth)
	}

	return bestState(states, numTargets)
}

// precomputeCoverage returns, for each candidate, the sorted list of
// target indices it hits.
func precomputeCoverage(m CoverageMatrix) [][]int {
	out := make([][]int, m.NumCandidates())
	for c := 0; c < m.NumCandidates(); c++ {
		var covers []int
		for t := 0; t < m.NumTargets(); t++ {
			if m.Hits(c, t) {
				covers = append(covers, t)
			}
		}
		out[c] = covers
	}

	return out
}

func (b beamState) chosen() map[int]bool {
	set := make(map[int]bool, len(b.selection))
	for _, c := range b.selection {
		set[c] = true
	}

	return set
}

func scoreCandidates(coverage [][]int, st beamState, chosen map[int]bool) []candidateScore {
	var scores []candidateScore
	for c, covers := range coverage {
		if chosen[c] {
			continue
		}
		gain := 0
		for _, t := range covers {
			if !st.covered[t] {
				gain++
			}
		}
		if gain > 0 {
			scores = append(scores, candidateScore{candidate: c, gain: gain})
		}
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].gain != scores[j].gain {
			return scores[i].gain > scores[j].gain
		}

		return scores[i].candidate < scores[j].candidate
	})

	return scores
}

// shuffleEqualGainGroups shuffles each contiguous run of equal-gain
// candidates in place, so ties are broken by the seeded RNG rather than by
// raw candidate index, while the gain ordering itself stays intact.
func shuffleEqualGainGroups(scores []candidateScore, rng *rand.Rand) {
	i := 0
	for i < len(scores) {
		j := i + 1
		for j < len(scores) && scores[j].gain == scores[i].gain {
			j++
		}
		group := make([]int, j-i)
		for k := range group {
			group[k] = i + k
		}
		idx := make([]int, j-i)
		for k := range idx {
			idx[k] = scores[i+k].candidate
		}
		shuffleIntsInPlace(idx, rng)
		for k, c := range idx {
			scores[i+k].candidate = c
		}
		i = j
	}
}

// applyCandidate commits candidate into state: marks its covered targets,
// appends it to the selection, and bumps coveredCount.
func applyCandidate(state *beamState, covers []int, candidate int) {
	for _, t := range covers {
		if !state.covered[t] {
			state.covered[t] = true
			state.coveredCount++
		}
	}
	state.selection = append(state.selection, candidate)
}

func keepTopStates(states []beamState, beamWidth int) []beamState {
	sort.SliceStable(states, func(i, j int) bool {
		return states[i].coveredCount > states[j].coveredCount
	})
	seen := make(map[string]bool, len(states))
	var out []beamState
	for _, st := range states {
		key := stateKey(st)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, st)
		if len(out) == beamWidth {
			break
		}
	}

	return out
}

func stateKey(st beamState) string {
	sel := append([]int(nil), st.selection...)
	sort.Ints(sel)
	buf := make([]byte, 0, len(sel)*4)
	for i, v := range sel {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendIntDigits(buf, v)
	}

	return string(buf)
}

func appendIntDigits(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}

func allFullyCovered(states []beamState) bool {
	for _, st := range states {
		if st.coveredCount != len(st.covered) {
			return false
		}
	}

	return true
}

func bestState(states []beamState, numTargets int) beamState {
	best := states[0]
	for _, st := range states[1:] {
		betterCoverage := st.coveredCount > best.coveredCount
		sameCoverageSmaller := st.coveredCount == best.coveredCount && len(st.selection) < len(best.selection)
		if betterCoverage || sameCoverageSmaller {
			best = st
		}
	}

	return best
}
