// SPDX-License-Identifier: MIT
//
// File: commute.go
// Role: Normal ordering of an annihilator string followed by a creator
//       string.
// Rule:
//   - Per mode with m annihilators and n creators,
//     b^m b†^n = Σ_k P(m,k)·C(n,k) b†^(n-k) b^(m-k), k = 0..min(m,n),
//     one term per number of contracted pairs.
//   - Modes are independent; the expansion is the cartesian product over
//     modes.

package bosons

import (
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

const panicNegativeMode = "bosons: mode index must be non-negative"

// contraction is one normal-ordered term: creators, annihilators and the
// number of contraction patterns producing it.
type contraction struct {
	creators     []int
	annihilators []int
	weight       float64
}

// contract expands b_{left} b†_{right}. Both inputs must be sorted.
func contract(left, right []int) []contraction {
	out := []contraction{{weight: 1}}
	for _, mode := range union(left, right) {
		m, n := count(left, mode), count(right, mode)
		next := make([]contraction, 0, len(out)*(min(m, n)+1))
		for _, t := range out {
			for k := 0; k <= min(m, n); k++ {
				next = append(next, contraction{
					creators:     repeat(slices.Clone(t.creators), mode, n-k),
					annihilators: repeat(slices.Clone(t.annihilators), mode, m-k),
					weight:       t.weight * float64(combin.NumPermutations(m, k)*combin.Binomial(n, k)),
				})
			}
		}
		out = next
	}
	return out
}

// union returns the distinct values of two sorted lists in order.
func union(a, b []int) []int {
	out := append(slices.Clone(a), b...)
	slices.Sort(out)
	return slices.Compact(out)
}

func count(s []int, v int) int {
	n := 0
	for _, x := range s {
		if x == v {
			n++
		}
	}
	return n
}

func repeat(s []int, v, n int) []int {
	for ; n > 0; n-- {
		s = append(s, v)
	}
	return s
}

// sorted returns a sorted copy of idx; panics on a negative index.
func sorted(idx []int) []int {
	out := slices.Clone(idx)
	slices.Sort(out)
	if len(out) > 0 && out[0] < 0 {
		panic(panicNegativeMode)
	}
	return out
}

func remap(idx []int, mapping map[int]int) []int {
	out := make([]int, len(idx))
	for n, i := range idx {
		out[n] = i
		if j, ok := mapping[i]; ok {
			out[n] = j
		}
	}
	return out
}
