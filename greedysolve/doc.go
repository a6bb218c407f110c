// Package greedysolve implements the s<j approximate cover search: a
// beam-width greedy max-coverage construction followed by a deterministic
// first-improvement local-search shrink pass, seeded by a reproducible RNG
// for tie-breaking.
//
// The construction phase scores candidates by bitfield.Bitlist overlap
// against the remaining uncovered mask, widened into a beam of B parallel
// partial selections instead of one, so ties at the top of the greedy
// choice don't commit the whole search to a single unlucky branch.
//
// The refinement phase is a bounded random-pair-removal 2-opt pass: up to
// 5*|selection| trials (configurable via Config.TwoOptMaxIters), each
// sampling two distinct positions from the current selection, testing the
// selection without them against the bitmask coverage matrix, and keeping
// the shrink whenever full coverage survives it. Tie-breaking during
// construction and the position sampling during refinement share one
// seeded *rand.Rand so a given Seed reproduces an identical run.
package greedysolve
