package coverselect

import (
	"errors"
	"time"

	"github.com/samplecover/coverkit/progress"
)

// Sentinel errors. Do not wrap with fmt.Errorf where a sentinel suffices;
// wrapping with %w is reserved for package boundaries (cmd/coverkit,
// internal/httpapi).
var (
	// ErrInvalidParameters indicates a parameter invariant was violated.
	ErrInvalidParameters = errors.New("coverselect: invalid parameters")

	// ErrConfigurationError indicates an inconsistent combination of flags,
	// e.g. neither Samples nor RandomSelect was supplied.
	ErrConfigurationError = errors.New("coverselect: inconsistent configuration")

	// ErrInfeasibleInstance is forwarded from exactsolve when some target
	// has no hitting candidate.
	ErrInfeasibleInstance = errors.New("coverselect: instance is infeasible")

	// ErrSolverFailure is forwarded from exactsolve when the engine returns
	// a non-optimal, non-feasible status (including a timeout with no
	// incumbent at all).
	ErrSolverFailure = errors.New("coverselect: exact solver failed to produce a result")
)

// Config is the programmatic input contract for a covering-design search.
type Config struct {
	// M, N, K, J, S, T are the covering-design parameters.
	M, N, K, J, S, T int

	// Samples is the caller-supplied working universe; required unless
	// RandomSelect is true. Need not be pre-sorted; Solve sorts a copy.
	Samples []int

	// RandomSelect draws N distinct elements from 1..=M using Seed when
	// Samples is absent.
	RandomSelect bool

	// Seed seeds both the random sample draw and greedysolve's 2-opt RNG.
	// Zero uses each package's fixed default seed.
	Seed int64

	// TimeLimit bounds the exact solver's wall-clock budget. Zero defaults
	// to 30 seconds.
	TimeLimit time.Duration

	// Workers bounds exact-mode parallel search goroutines. Zero/negative
	// resolves to the default: max(1, round(1.5 * NumCPU())), fallback 4.
	Workers int

	// BeamWidth bounds greedysolve's top-gain candidate set. Values < 1
	// default to 1 (plain greedy).
	BeamWidth int

	// WarmStart optionally seeds the exact solver's incumbent with a known
	// feasible selection of KCombo tuples (sample-relative, not indices).
	WarmStart []Tuple

	// Reporter optionally receives progress ticks. Nil is a valid no-op
	// reporter (progress.Reporter's zero-value semantics).
	Reporter *progress.Reporter
}

// Tuple mirrors combi.Tuple at the driver boundary so callers don't need to
// import combi just to build a WarmStart hint.
type Tuple = []int

// Result is the covering-design search's output record.
type Result struct {
	M int `json:"m"`
	N int `json:"n"`
	K int `json:"k"`
	J int `json:"j"`
	S int `json:"s"`
	T int `json:"t"`

	Samples       []int   `json:"samples"`
	Combos        [][]int `json:"combos"`
	ExecutionTime float64 `json:"execution_time"`
	Workers       int     `json:"workers"`

	// FullyCovered and Warnings are not part of the wire shape but are
	// useful to Go callers that want PartialCoverage detail without
	// re-parsing Warnings strings from the progress stream.
	FullyCovered bool     `json:"-"`
	Warnings     []string `json:"-"`
}
