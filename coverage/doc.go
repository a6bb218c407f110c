// Package coverage builds the bit-packed coverage matrix that both the
// exact and the approximate solver search over.
//
// Every candidate k-combination and every target j-subset is reduced to the
// set of s-subset indices it contains. The union of all such s-subsets
// referenced by any candidate or target is the atom universe U; each
// candidate/target becomes one row of U bits, stored as a
// github.com/prysmaticlabs/go-bitfield Bitlist. A candidate "hits" a target
// iff their rows overlap — an O(|U|/64) bitwise AND instead of an O(s) set
// intersection, which is what lets the greedy and 2-opt stages re-test full
// coverage on every candidate swap without re-deriving s-subsets.
package coverage
