package coverage

import (
	"errors"

	"github.com/prysmaticlabs/go-bitfield"

	"github.com/samplecover/coverkit/combi"
)

// Sentinel errors for malformed coverage-matrix construction.
var (
	// ErrEmptyCandidates indicates no candidate combinations were supplied.
	ErrEmptyCandidates = errors.New("coverage: no candidate combinations supplied")

	// ErrEmptyTargets indicates no target subsets were supplied.
	ErrEmptyTargets = errors.New("coverage: no target subsets supplied")

	// ErrAtomSizeMismatch indicates a candidate or target yielded an
	// s-subset of the wrong arity, signalling caller misuse.
	ErrAtomSizeMismatch = errors.New("coverage: s-subset arity mismatch")
)

// Matrix is the immutable bit-packed candidate/target coverage relation:
// KRows[i] is the set of atom (s-subset) indices contained in candidate i;
// JRows[l] is the set of atom indices required by target l.
type Matrix struct {
	// NumAtoms is |U|, the number of distinct s-subsets referenced by any
	// candidate or target.
	NumAtoms int

	// atomIndex maps a canonical s-subset (as a string key) to its index in
	// [0, NumAtoms). Built once, never mutated after construction.
	atomIndex map[string]int

	// KRows holds one Bitlist per candidate, each of length NumAtoms.
	KRows []bitfield.Bitlist

	// JRows holds one Bitlist per target, each of length NumAtoms.
	JRows []bitfield.Bitlist

	s int // atom arity, retained for diagnostics
}

// atomKey renders a canonical s-subset as a map key. s-subsets are short
// (s ≤ 7) fixed-width int tuples, so a delimited string is cheap and avoids
// the allocation churn of a struct-keyed map with slice equality.
func atomKey(t combi.Tuple) string {
	buf := make([]byte, 0, len(t)*4)
	for i, v := range t {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendInt(buf, v)
	}

	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
