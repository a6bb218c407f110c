package greedysolve

import (
	"errors"

	"github.com/samplecover/coverkit/progress"
)

// Sentinel errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrEmptyCandidates indicates no candidates were supplied to choose from.
	ErrEmptyCandidates = errors.New("greedysolve: no candidates supplied")

	// ErrPartialCoverage indicates the search exhausted every candidate
	// without covering every target. It is returned alongside a non-nil
	// Result holding the best (incomplete) selection found, not as a fatal
	// error.
	ErrPartialCoverage = errors.New("greedysolve: candidates cannot fully cover every target")
)

// CoverageMatrix is the subset of coverage.Matrix's API greedysolve depends
// on, narrowed to an interface so tests can substitute a fake matrix.
type CoverageMatrix interface {
	NumCandidates() int
	NumTargets() int
	Hits(candidate, target int) bool
}

// Config configures one approximate-mode search.
type Config struct {
	// Matrix is the prebuilt candidate/target coverage relation.
	Matrix CoverageMatrix

	// BeamWidth bounds how many parallel partial selections the greedy
	// construction phase tracks. BeamWidth <= 1 degrades to plain greedy.
	BeamWidth int

	// Seed controls the deterministic RNG used to break ties during
	// construction and to sample the refinement pass's random pair
	// removals. Seed == 0 uses the package's fixed default seed.
	Seed int64

	// TwoOptMaxIters bounds the number of 2-opt trials (not just accepted
	// moves). Zero/negative defaults to 5 * len(selection), per the
	// reference policy.
	TwoOptMaxIters int

	// Reporter optionally receives progress ticks during the search.
	Reporter *progress.Reporter
}

// Result is the outcome of an approximate search.
type Result struct {
	// Selected holds the chosen candidate indices, ascending.
	Selected []int

	// FullyCovered reports whether Selected covers every target. When
	// false, Solve also returns ErrPartialCoverage.
	FullyCovered bool
}
