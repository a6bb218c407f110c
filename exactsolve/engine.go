package exactsolve

import (
	"sort"
	"time"
)

// bbEngine holds all search data and policies for one worker's share of the
// search tree. Modeled on tsp.bbEngine: a dedicated struct instead of
// closures, so dependencies stay explicit.
type bbEngine struct {
	numTargets int

	// reps is the full representative list (ascending candidate index);
	// repCoverage[i] holds the target indices representative reps[i] hits.
	reps        []int
	repCoverage [][]int

	// lo/hi are not set or read; the first-level branch is partitioned
	// between engines by runPartition instead.
	lo, hi int

	useDeadline bool
	deadline    time.Time
	steps       int

	shared *incumbent
}

// incumbent is the mutex-guarded best-known cover shared by every worker
// engine, so an improvement found by one worker immediately sharpens every
// other worker's pruning threshold.
type incumbent struct {
	mu       chan struct{} // binary semaphore; avoids importing sync for a single critical section
	size     int           // len(best); starts at the 1<<30 "no cover yet" sentinel
	best     []int
	foundAny bool
}

func newIncumbent(warmStart []int) *incumbent {
	ic := &incumbent{mu: make(chan struct{}, 1), size: 1 << 30}
	ic.mu <- struct{}{}
	if len(warmStart) > 0 {
		sel := append([]int(nil), warmStart...)
		sort.Ints(sel)
		ic.best = sel
		ic.size = len(sel)
		ic.foundAny = true
	}
	return ic
}

func (ic *incumbent) snapshotSize() int {
	<-ic.mu
	s := ic.size
	ic.mu <- struct{}{}
	return s
}

func (ic *incumbent) tryImprove(selection []int) {
	<-ic.mu
	if len(selection) < ic.size {
		ic.size = len(selection)
		ic.best = append([]int(nil), selection...)
		ic.foundAny = true
	}
	ic.mu <- struct{}{}
}

// deadlineCheck performs a rare deadline test, every 4096 node events.
func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// lowerBound returns depth + ceil(totalDeficit / maxHit), the admissible
// greedy-cover bound described in doc.go: no single further pick can retire
// more than maxHit deficit units (one unit per still-short target it hits,
// regardless of how many units that target is still short by), so at least
// that many picks remain. from is the first representative index (into
// e.reps) still eligible to be chosen next. deficit[t] is the number of
// additional representatives still needed to hit target t at least
// Config.Threshold times in total.
func (e *bbEngine) lowerBound(depth, totalDeficit, from int, deficit []int) int {
	if totalDeficit == 0 {
		return depth
	}
	maxHit := 0
	for i := from; i < len(e.reps); i++ {
		hit := 0
		for _, t := range e.repCoverage[i] {
			if deficit[t] > 0 {
				hit++
			}
		}
		if hit > maxHit {
			maxHit = hit
		}
		if maxHit >= totalDeficit {
			break // cannot do better than retiring everything in one step
		}
	}
	if maxHit == 0 {
		return 1 << 30 // unreachable completion; >= any incumbent size, forces prune
	}

	extra := (totalDeficit + maxHit - 1) / maxHit
	return depth + extra
}

// timedOut reports whether this engine's own deadline elapsed.
func (e *bbEngine) timedOut() bool {
	return e.useDeadline && time.Now().After(e.deadline)
}

// dfs explores reps[idx:] from the given state, pruning by lowerBound
// against the shared incumbent and committing improvements as they're found.
// deficit[t] counts remaining hits target t still needs; totalDeficit is its
// sum, tracked incrementally so dfs never has to re-scan deficit on entry.
func (e *bbEngine) dfs(idx int, selection []int, deficit []int, totalDeficit int) {
	if e.deadlineCheck() {
		return
	}
	if totalDeficit == 0 {
		e.shared.tryImprove(selection)
		return
	}
	if idx >= len(e.reps) {
		return
	}

	best := e.shared.snapshotSize()
	if lb := e.lowerBound(len(selection), totalDeficit, idx, deficit); lb >= best {
		return
	}

	// Branch 1: take reps[idx].
	covered := e.repCoverage[idx]
	var retired []int
	for _, t := range covered {
		if deficit[t] > 0 {
			deficit[t]--
			retired = append(retired, t)
		}
	}
	selection = append(selection, e.reps[idx])
	e.dfs(idx+1, selection, deficit, totalDeficit-len(retired))
	selection = selection[:len(selection)-1]
	for _, t := range retired {
		deficit[t]++
	}

	// Branch 2: skip reps[idx]. Only worth trying if the remaining tail
	// could still possibly cover everything; the lowerBound check at the
	// top of the next call handles that.
	e.dfs(idx+1, selection, deficit, totalDeficit)
}
