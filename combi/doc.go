// Package combi generates fixed-size combinations of a sorted integer sample
// in strict lexicographic order. Every downstream package (coverage, pruner,
// exactsolve, greedysolve) depends on this order being stable: symmetry
// breaking in exactsolve and the deterministic tie-break in greedysolve both
// assume candidates are indexed by their position in this enumeration.
package combi
