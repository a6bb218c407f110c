package greedysolve

import (
	"fmt"
	"sort"
)

// Solve runs the beam-width greedy construction followed by the 2-opt
// random-pair-removal refinement pass described in doc.go, and returns the
// smallest selection found.
func Solve(cfg Config) (Result, error) {
	if cfg.Matrix == nil || cfg.Matrix.NumCandidates() == 0 {
		return Result{}, ErrEmptyCandidates
	}

	rng := rngFromSeed(cfg.Seed)

	if cfg.Reporter != nil {
		cfg.Reporter.Emit(30, "starting greedy beam construction")
	}

	best := beamSearch(cfg.Matrix, cfg.BeamWidth, rng)
	numTargets := cfg.Matrix.NumTargets()

	if best.coveredCount != numTargets {
		if cfg.Reporter != nil {
			cfg.Reporter.Emit(90, "greedy construction could not fully cover every target")
		}

		return Result{Selected: sortedCopy(best.selection), FullyCovered: false}, ErrPartialCoverage
	}

	if cfg.Reporter != nil {
		cfg.Reporter.Emit(60, fmt.Sprintf("greedy construction selected %d candidates; refining", len(best.selection)))
	}

	refined := refine(cfg.Matrix, best.selection, cfg.TwoOptMaxIters, rng)

	if cfg.Reporter != nil {
		cfg.Reporter.Emit(90, fmt.Sprintf("refinement converged at %d candidates", len(refined)))
	}

	return Result{Selected: refined, FullyCovered: true}, nil
}

func sortedCopy(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)

	return out
}
