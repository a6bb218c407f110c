package exactsolve

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Solve runs the exact (s==j) minimum-cover search described in doc.go.
//
// Parallelism: the first-level branch decision (which representative, if
// any, is the smallest-indexed member of the eventual selection) is
// partitioned across up to cfg.Workers goroutines via errgroup. Workers
// share one incumbent, so an improvement on one worker sharpens every
// other worker's pruning immediately.
func Solve(cfg Config) (Result, error) {
	reps := cfg.Representatives
	n := len(reps)
	if n == 0 {
		return Result{}, fmt.Errorf("exactsolve: no representatives supplied")
	}
	numTargets := cfg.Matrix.NumTargets()

	repCoverage := make([][]int, n)
	for i, rep := range reps {
		var covers []int
		for t := 0; t < numTargets; t++ {
			if cfg.Matrix.Hits(rep, t) {
				covers = append(covers, t)
			}
		}
		repCoverage[i] = covers
	}

	threshold := cfg.Threshold
	if threshold < 1 {
		threshold = 1
	}

	if err := checkFeasible(repCoverage, numTargets, threshold); err != nil {
		return Result{}, err
	}

	shared := newIncumbent(cfg.WarmStart)

	W := cfg.Workers
	if W < 1 {
		W = 1
	}
	if W > n {
		W = n
	}

	var deadline time.Time
	useDeadline := cfg.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(cfg.TimeLimit)
	}

	g, _ := errgroup.WithContext(context.Background())
	for p := 0; p < W; p++ {
		p := p
		g.Go(func() error {
			runPartition(p, W, reps, repCoverage, numTargets, threshold, useDeadline, deadline, shared)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; only the shared incumbent matters

	timedOut := useDeadline && time.Now().After(deadline)

	if cfg.Reporter != nil {
		if shared.foundAny {
			cfg.Reporter.Emit(90, fmt.Sprintf("exact search selected %d candidates", shared.size))
		} else {
			cfg.Reporter.Emit(90, "exact search found no feasible cover")
		}
	}

	switch {
	case shared.foundAny && !timedOut:
		return Result{Selected: shared.best, Optimal: true}, nil
	case shared.foundAny && timedOut:
		return Result{Selected: shared.best, Optimal: false}, ErrTimeLimit
	case timedOut:
		return Result{}, ErrNoIncumbent
	default:
		// Feasibility was already confirmed, so an empty result here means
		// the search space was fully exhausted without success, which is
		// impossible for a feasible instance; surface it defensively.
		return Result{}, ErrNoIncumbent
	}
}

// checkFeasible returns ErrInfeasibleInstance if some target is hit by
// fewer than threshold representatives — no selection of representatives,
// however large, could then satisfy that target's coverage constraint.
func checkFeasible(repCoverage [][]int, numTargets, threshold int) error {
	hitCount := make([]int, numTargets)
	for _, covers := range repCoverage {
		for _, t := range covers {
			hitCount[t]++
		}
	}
	for t := 0; t < numTargets; t++ {
		if hitCount[t] < threshold {
			return ErrInfeasibleInstance
		}
	}

	return nil
}

// runPartition explores the slice of the search tree owned by worker p:
// worker p < W-1 owns every cover whose smallest chosen index is p, and the
// last worker owns every cover whose smallest chosen index is >= W-1.
func runPartition(p, W int, reps []int, repCoverage [][]int, numTargets, threshold int, useDeadline bool, deadline time.Time, shared *incumbent) {
	e := &bbEngine{
		numTargets:  numTargets,
		reps:        reps,
		repCoverage: repCoverage,
		useDeadline: useDeadline,
		deadline:    deadline,
		shared:      shared,
	}

	deficit := make([]int, numTargets)
	for i := range deficit {
		deficit[i] = threshold
	}
	totalDeficit := numTargets * threshold

	if p < W-1 {
		// This worker owns every cover whose minimum chosen index is
		// exactly p: force-select reps[p], then branch normally from p+1.
		// Indices [0,p) are implicitly never chosen by construction (the
		// recursion never visits them).
		selection := make([]int, 0, numTargets)
		retired := 0
		for _, t := range repCoverage[p] {
			if deficit[t] > 0 {
				deficit[t]--
				retired++
			}
		}
		selection = append(selection, reps[p])
		e.dfs(p+1, selection, deficit, totalDeficit-retired)

		return
	}

	// Catch-all: every cover whose minimum chosen index is >= W-1. Indices
	// [0, W-1) are implicitly skipped by starting the branch at W-1.
	e.dfs(W-1, make([]int, 0, numTargets), deficit, totalDeficit)
}
