package exactsolve

import (
	"errors"
	"time"

	"github.com/samplecover/coverkit/progress"
)

// Sentinel errors. Do not wrap with fmt.Errorf where a sentinel suffices.
var (
	// ErrInfeasibleInstance indicates at least one target is not hit by
	// enough candidates to meet Threshold, so no finite-size cover exists.
	ErrInfeasibleInstance = errors.New("exactsolve: target has no covering candidate")

	// ErrTimeLimit indicates the wall-clock budget elapsed before the
	// search proved optimality (an incumbent may still be reported by the
	// caller via Result.Optimal == false).
	ErrTimeLimit = errors.New("exactsolve: time limit exceeded before proof of optimality")

	// ErrNoIncumbent indicates the time limit elapsed before any feasible
	// cover was found at all.
	ErrNoIncumbent = errors.New("exactsolve: no feasible cover found before time limit")
)

// Config configures one exact-mode search.
type Config struct {
	// Matrix is the prebuilt candidate/target coverage relation (coverage.Build).
	Matrix CoverageMatrix

	// Representatives restricts the search to this subset of candidate
	// indices (pruner.Result.Representatives), in the order symmetry
	// breaking relies on. Required, non-empty.
	Representatives []int

	// Threshold is the minimum number of distinct selected candidates that
	// must hit each target. Values < 1 are treated as 1 (plain set cover).
	Threshold int

	// WarmStart optionally seeds the incumbent with a known feasible cover
	// (indices into Matrix's candidate space, not necessarily
	// representatives) so the search can start pruning immediately.
	WarmStart []int

	// Workers bounds the number of goroutines used to explore disjoint
	// first-level branches in parallel. Workers <= 1 runs single-threaded.
	Workers int

	// TimeLimit bounds wall-clock search time. Zero means unbounded.
	TimeLimit time.Duration

	// Reporter optionally receives progress ticks during the search.
	Reporter *progress.Reporter
}

// Result is the outcome of an exact search.
type Result struct {
	// Selected holds the chosen candidate indices, ascending.
	Selected []int

	// Optimal is true iff the search proved Selected is of minimum size
	// (i.e. it did not exit early on the time budget).
	Optimal bool
}

// CoverageMatrix is the subset of coverage.Matrix's API the solver
// depends on, narrowed to an interface so tests can substitute a fake
// without constructing a real Bitlist-backed matrix.
type CoverageMatrix interface {
	NumCandidates() int
	NumTargets() int
	Hits(candidate, target int) bool
	HittingCandidates(target int) []int
}
