package coverage

import (
	"sort"

	"github.com/prysmaticlabs/go-bitfield"

	"github.com/samplecover/coverkit/combi"
)

// Build derives the atom universe U (every distinct s-subset contained in
// any candidate or any target), assigns canonical indices to U, and packs
// KRows/JRows as Bitlists over those indices.
//
// Complexity: O((|candidates| + |targets|) * C(k_or_j, s)) to enumerate
// s-subsets, plus O(|U| log |U|) to sort the atom universe.
func Build(candidates, targets []combi.Tuple, s int) (*Matrix, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidates
	}
	if len(targets) == 0 {
		return nil, ErrEmptyTargets
	}

	candidateAtoms := make([][]combi.Tuple, len(candidates))
	targetAtoms := make([][]combi.Tuple, len(targets))

	atomSet := make(map[string]combi.Tuple)
	var i int
	for i = range candidates {
		sig, err := combi.Signature(candidates[i], s)
		if err != nil {
			return nil, err
		}
		candidateAtoms[i] = sig
		for _, a := range sig {
			atomSet[atomKey(a)] = a
		}
	}
	for i = range targets {
		sig, err := combi.Signature(targets[i], s)
		if err != nil {
			return nil, err
		}
		targetAtoms[i] = sig
		for _, a := range sig {
			atomSet[atomKey(a)] = a
		}
	}

	// Canonical (lexicographic) ordering of the atom universe: sort the
	// set of distinct s-subset atoms and assign each an index.
	atoms := make([]combi.Tuple, 0, len(atomSet))
	for _, a := range atomSet {
		atoms = append(atoms, a)
	}
	sort.Slice(atoms, func(x, y int) bool { return lessTuple(atoms[x], atoms[y]) })

	atomIndex := make(map[string]int, len(atoms))
	for idx, a := range atoms {
		atomIndex[atomKey(a)] = idx
	}

	m := &Matrix{
		NumAtoms:  len(atoms),
		atomIndex: atomIndex,
		KRows:     make([]bitfield.Bitlist, len(candidates)),
		JRows:     make([]bitfield.Bitlist, len(targets)),
		s:         s,
	}

	for i = range candidateAtoms {
		m.KRows[i] = rowFrom(candidateAtoms[i], atomIndex, len(atoms))
	}
	for i = range targetAtoms {
		m.JRows[i] = rowFrom(targetAtoms[i], atomIndex, len(atoms))
	}

	return m, nil
}

// rowFrom packs a list of atom tuples into a Bitlist of the given width.
func rowFrom(sig []combi.Tuple, atomIndex map[string]int, width int) bitfield.Bitlist {
	row := bitfield.NewBitlist(uint64(width))
	for _, a := range sig {
		row.SetBitAt(uint64(atomIndex[atomKey(a)]), true)
	}

	return row
}

// lessTuple orders two equal-length int tuples lexicographically.
func lessTuple(a, b combi.Tuple) bool {
	var i int
	for i = 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// Hits reports whether candidate i contributes to target l: true iff
// (K_mask[i] AND J_req[l]) != 0.
func (m *Matrix) Hits(candidate, target int) bool {
	return m.KRows[candidate].Overlaps(m.JRows[target])
}

// FullyCovers reports whether every target is hit by at least one candidate
// in selection. This is the union-test used by 2-opt to validate a
// tentative shrink.
func (m *Matrix) FullyCovers(selection []int) bool {
	if len(selection) == 0 {
		return len(m.JRows) == 0
	}
	union := m.Union(selection)
	var l int
	for l = range m.JRows {
		if !union.Overlaps(m.JRows[l]) {
			return false
		}
	}

	return true
}

// Union ORs together the K-rows named by selection.
func (m *Matrix) Union(selection []int) bitfield.Bitlist {
	union := bitfield.NewBitlist(uint64(m.NumAtoms))
	for _, i := range selection {
		union = union.Or(m.KRows[i])
	}

	return union
}

// NumCandidates returns the number of candidate rows (|K|).
func (m *Matrix) NumCandidates() int { return len(m.KRows) }

// NumTargets returns the number of target rows (|J|).
func (m *Matrix) NumTargets() int { return len(m.JRows) }

// HittingCandidates returns, for target l, every candidate index that hits
// it. Used by exactsolve to build the per-target coverage constraint and to
// detect InfeasibleInstance (an empty result).
func (m *Matrix) HittingCandidates(target int) []int {
	var out []int
	var i int
	for i = 0; i < len(m.KRows); i++ {
		if m.Hits(i, target) {
			out = append(out, i)
		}
	}

	return out
}
