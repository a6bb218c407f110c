package pruner

import (
	"sort"

	"github.com/samplecover/coverkit/combi"
)

// Result is the outcome of pruning: Representatives holds one KCombo index
// per equivalence class, in the order those classes' smallest members first
// appear in the original lexicographic candidate enumeration. Classes maps
// each representative's original index to every original index (including
// itself) collapsed into its class, sorted ascending.
//
// The Representatives order is load-bearing: exactsolve's symmetry-breaking
// constraints are built over *this* order, so an implementation must
// preserve the pruned ordering it emits for the breaking to remain sound.
type Result struct {
	Representatives []int
	Classes         map[int][]int
}

// Prune groups candidates (indexed 0..len(candidates)) by their s-subset
// signature (combi.Signature(candidate, s), sorted) and keeps the
// lexicographically-smallest-indexed member of each class as its
// representative.
//
// Complexity: O(|candidates| * C(k, s) * s) to build signatures plus
// O(|candidates| log |candidates|) to bucket them.
func Prune(candidates []combi.Tuple, s int) (Result, error) {
	type bucketKey = string

	order := make([]int, len(candidates)) // original indices, in input order
	keys := make([]bucketKey, len(candidates))
	for i := range candidates {
		order[i] = i
		sig, err := combi.Signature(candidates[i], s)
		if err != nil {
			return Result{}, err
		}
		keys[i] = signatureKey(sig)
	}

	buckets := make(map[bucketKey][]int, len(candidates))
	for _, i := range order {
		buckets[keys[i]] = append(buckets[keys[i]], i)
	}

	// Representatives must appear in the order their class first occurs in
	// the original lexicographic enumeration, not map iteration order.
	seen := make(map[bucketKey]bool, len(buckets))
	res := Result{Classes: make(map[int][]int, len(buckets))}
	for i := 0; i < len(candidates); i++ {
		k := keys[i]
		if seen[k] {
			continue
		}
		seen[k] = true
		members := append([]int(nil), buckets[k]...)
		sort.Ints(members)
		rep := members[0]
		res.Representatives = append(res.Representatives, rep)
		res.Classes[rep] = members
	}

	return res, nil
}

// signatureKey renders a sorted list of s-subsets as a single comparable
// string, used as the equivalence-class bucket key.
func signatureKey(sig []combi.Tuple) bucketKeyBuilder {
	var b bucketKeyBuilder
	for i, t := range sig {
		if i > 0 {
			b += ";"
		}
		for j, v := range t {
			if j > 0 {
				b += ","
			}
			b += itoa(v)
		}
	}

	return b
}

type bucketKeyBuilder = string

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [12]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}
