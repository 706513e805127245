// SPDX-License-Identifier: MIT
//
// File: commute.go
// Role: Index sorting with sign tracking and the anticommutation of an
//       annihilator string past a creator string.
// Invariants:
//   - Inputs are never mutated; every result owns its slices.

package fermions

import "slices"

const panicNegativeMode = "fermions: mode index must be non-negative"

// contraction is one term of a reordered product: the creators that moved
// to the front, the annihilators left behind, and the accumulated sign.
type contraction struct {
	creators     []int
	annihilators []int
	sign         float64
}

// paritySign returns +1 for even n, -1 for odd n.
func paritySign(n int) float64 {
	if n%2 == 0 {
		return 1
	}
	return -1
}

// sortAndSignal bubble-sorts a copy of idx and counts the transpositions.
// double is true when two entries are equal.
func sortAndSignal(idx []int) (sorted []int, double bool, swaps int) {
	sorted = slices.Clone(idx)
	for outer := range sorted {
	scan:
		for inner := outer - 1; inner >= 0; inner-- {
			switch {
			case sorted[inner] > sorted[inner+1]:
				sorted[inner], sorted[inner+1] = sorted[inner+1], sorted[inner]
				swaps++
			case sorted[inner] == sorted[inner+1]:
				double = true
				break scan
			default:
				break scan
			}
		}
	}
	return sorted, double, swaps
}

// without returns s minus the element at i.
func without(s []int, i int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// contract rewrites a_{left} c†_{right} as a sum of creator-first strings.
// The last annihilator a_x is moved right through the creators one step at
// a time using a_x c†_j = δ_xj - c†_j a_x: passing k creators costs (-1)^k,
// a matching creator at position k contributes the contracted term with
// that sign, and passing all of them leaves a_x at the end. The remaining
// annihilators are then contracted recursively against the creators that
// are left. Sides of the results are in operator order, not sorted; the
// caller normal-orders them and applies the parity of that sort.
func contract(left, right []int) []contraction {
	if len(left) == 0 {
		return []contraction{{creators: slices.Clone(right), sign: 1}}
	}
	last := len(left) - 1
	x, rest := left[last], left[:last]

	var out []contraction
	if k := slices.Index(right, x); k >= 0 {
		for _, r := range contract(rest, without(right, k)) {
			out = append(out, contraction{creators: r.creators, annihilators: r.annihilators, sign: r.sign * paritySign(k)})
		}
	}
	passed := paritySign(len(right))
	for _, r := range contract(rest, right) {
		out = append(out, contraction{
			creators:     r.creators,
			annihilators: append(slices.Clone(r.annihilators), x),
			sign:         r.sign * passed,
		})
	}
	return out
}

// checkIncreasing validates one side of a product.
func checkIncreasing(idx []int) error {
	for n, i := range idx {
		if i < 0 {
			panic(panicNegativeMode)
		}
		if n == 0 {
			continue
		}
		switch {
		case idx[n-1] == i:
			return errDoubles(idx)
		case idx[n-1] > i:
			return errOrder(idx)
		}
	}
	return nil
}
