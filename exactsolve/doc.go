// Package exactsolve implements the s==j exact minimum-cover search: a
// depth-first Branch-and-Bound (BnB) over pruned candidate representatives,
// with an admissible greedy-cover lower bound, deterministic branching, a
// soft wall-clock deadline, and W-worker parallelism over the first-level
// branch.
//
// The engine is a dedicated struct (not closures) holding dense
// precomputed state, sparse deadline checks, and an admissible lower bound
// that prunes whenever LB >= incumbent. The bound comes from the classic
// greedy LP-relaxation argument: no single remaining candidate can cover
// more than maxHit of what is still uncovered, so at least
// ceil(uncovered / maxHit) further picks are required. This is the
// Go-idiomatic relative of the Lagrangian-dual subgradient bound used by
// set-cover solvers in the wild (see DESIGN.md).
//
// Threshold generalizes plain set cover to multiplicity t: each target
// must be hit by at least Config.Threshold distinct selected candidates,
// not merely one. The search tracks, per target, a deficit (how many more
// hits it still needs) instead of a boolean covered/uncovered flag; the
// lower bound and branching logic are otherwise unchanged, since a single
// candidate can retire at most one deficit unit per target it hits
// regardless of how large that target's remaining deficit is.
//
// Symmetry is broken the way combinatorial subset search always is:
// candidates are chosen in strictly increasing representative-index
// order, so {a,b} and {b,a} are never both explored. Candidates are
// pre-collapsed by pruner.Prune so that coverage-equivalent candidates
// share one representative, which is what makes this symmetry breaking
// sound.
package exactsolve
