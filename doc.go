// Package coverkit computes, for a universe of labelled elements, a
// minimum-size family of fixed-size selector combinations such that every
// fixed-size target subset is "covered" according to a two-level covering
// rule: a candidate k-combination covers a j-subset target iff they share
// at least an s-subset.
//
// Given parameters (m, n, k, j, s, t) and an n-element sample drawn from
// 1..m, coverselect.Solve picks as few k-subsets of the sample as possible
// so that every j-subset of the sample is hit by at least t of the chosen
// k-subsets (exact mode, s == j) or by at least one (approximate mode,
// s < j).
//
// Subpackages, leaves first:
//
//	combi/       — lexicographic C(set, r) generation, canonical ordering
//	coverage/    — bitmask K_mask/J_req coverage matrix over s-subset atoms
//	pruner/      — candidate equivalence-class collapsing (exact mode only)
//	exactsolve/  — branch-and-bound 0/1 minimisation with symmetry breaking
//	greedysolve/ — greedy max-coverage + beam + 2-opt heuristic
//	progress/    — structured progress events (callback + text-stream sinks)
//	coverselect/ — the driver: validation, sample materialisation, dispatch
//
// cmd/coverkit, internal/httpapi and internal/store are the external
// collaborators (CLI, HTTP surface, result persistence) that sit around
// this core without the core depending on any of them.
package coverkit
