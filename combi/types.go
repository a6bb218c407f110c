package combi

import "errors"

// Sentinel errors for malformed combination requests.
var (
	// ErrUnsorted indicates the input set was not strictly increasing.
	ErrUnsorted = errors.New("combi: set is not strictly increasing")

	// ErrSizeOutOfRange indicates r is negative or exceeds len(set).
	ErrSizeOutOfRange = errors.New("combi: r out of range for set")
)

// Tuple is a canonical (strictly increasing) combination of elements drawn
// from a sample set. Two Tuples are equal iff they hold the same elements in
// the same order, which for a canonical Tuple means the same element set.
type Tuple []int
