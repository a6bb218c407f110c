// Package pruner collapses k-combinations that are interchangeable under the
// exact-mode objective (s == j) into equivalence classes, keeping one
// representative per class. Two candidates are equivalent iff they contain
// exactly the same set of s-subsets — their contribution to every coverage
// constraint is then identical, so only one need be a decision variable.
//
// Only exactsolve calls this package; greedysolve (s < j) searches the full
// candidate set because its gain function already treats partial overlaps
// correctly without needing the decision-variable count reduced.
package pruner
