// SPDX-License-Identifier: MIT
//
// File: sites.go
// Role: Sorted (index, op) lists shared by the three spin product types.
// Invariants:
//   - indices strictly increasing;
//   - no site holds the identity (the zero value of the alphabet).
// Policy:
//   - Lists are copy-on-write; every mutator returns a fresh slice.

package spins

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/qalgebra/core"
)

const panicNegativeIndex = "spins: site index must be non-negative"

// symbol is the constraint shared by the alphabets.
type symbol interface {
	~uint8
	String() string
}

type site[A symbol] struct {
	index int
	op    A
}

type sites[A symbol] []site[A]

// find returns the position of index i, or the insertion point and false.
func (s sites[A]) find(i int) (int, bool) {
	pos := sort.Search(len(s), func(n int) bool { return s[n].index >= i })
	return pos, pos < len(s) && s[pos].index == i
}

func (s sites[A]) get(i int) A {
	if pos, ok := s.find(i); ok {
		return s[pos].op
	}
	var id A
	return id
}

// set places op at i; the identity removes the site.
func (s sites[A]) set(i int, op A) sites[A] {
	if i < 0 {
		panic(panicNegativeIndex)
	}
	pos, ok := s.find(i)
	var id A
	out := make(sites[A], 0, len(s)+1)
	out = append(out, s[:pos]...)
	if op != id {
		out = append(out, site[A]{index: i, op: op})
	}
	if ok {
		pos++
	}
	return append(out, s[pos:]...)
}

func (s sites[A]) indices() []int {
	out := make([]int, len(s))
	for n := range s {
		out[n] = s[n].index
	}
	return out
}

// numberSpins is the highest index + 1, or 0.
func (s sites[A]) numberSpins() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].index + 1
}

// remap moves every site through mapping; unmapped indices stay put.
// Two sites landing on one index fail with ErrProductIndexAlreadyOccupied.
func (s sites[A]) remap(mapping map[int]int) (sites[A], error) {
	out := make(sites[A], len(s))
	for n, st := range s {
		if to, ok := mapping[st.index]; ok {
			if to < 0 {
				panic(panicNegativeIndex)
			}
			st.index = to
		}
		out[n] = st
	}
	sort.Slice(out, func(i, j int) bool { return out[i].index < out[j].index })
	for n := 1; n < len(out); n++ {
		if out[n].index == out[n-1].index {
			return nil, fmt.Errorf("remap: index %d: %w", out[n].index, core.ErrProductIndexAlreadyOccupied)
		}
	}
	return out, nil
}

// concat merges two lists acting on disjoint sites.
func (s sites[A]) concat(o sites[A]) (sites[A], error) {
	out := s
	for _, st := range o {
		if _, ok := s.find(st.index); ok {
			return nil, fmt.Errorf("Concatenate: index %d: %w", st.index, core.ErrProductIndexAlreadyOccupied)
		}
		out = out.set(st.index, st.op)
	}
	return out, nil
}

func (s sites[A]) equal(o sites[A]) bool {
	if len(s) != len(o) {
		return false
	}
	for n := range s {
		if s[n] != o[n] {
			return false
		}
	}
	return true
}

// compare orders by length, then by (index, op) lexicographically.
func (s sites[A]) compare(o sites[A]) int {
	if len(s) != len(o) {
		if len(s) < len(o) {
			return -1
		}
		return 1
	}
	for n := range s {
		switch {
		case s[n].index < o[n].index:
			return -1
		case s[n].index > o[n].index:
			return 1
		case s[n].op < o[n].op:
			return -1
		case s[n].op > o[n].op:
			return 1
		}
	}
	return 0
}

func (s sites[A]) format() string {
	if len(s) == 0 {
		return core.IdentityText
	}
	var b strings.Builder
	for _, st := range s {
		b.WriteString(strconv.Itoa(st.index))
		b.WriteString(st.op.String())
	}
	return b.String()
}

// zip walks both lists in index order; a missing side reads as identity.
func zip[A symbol](l, r sites[A], f func(index int, a, b A)) {
	var id A
	i, j := 0, 0
	for i < len(l) || j < len(r) {
		switch {
		case j == len(r) || (i < len(l) && l[i].index < r[j].index):
			f(l[i].index, l[i].op, id)
			i++
		case i == len(l) || r[j].index < l[i].index:
			f(r[j].index, id, r[j].op)
			j++
		default:
			f(l[i].index, l[i].op, r[j].op)
			i++
			j++
		}
	}
}

// parseSites reads "<index><op>..." text. "" and "I" are the identity;
// identity sites are dropped.
//
// Errors:
//   - ErrFromStringFailed: text not starting with a digit, missing op or a
//     repeated index.
//   - ErrIncorrectPauliEntry (from parse): unknown op.
func parseSites[A symbol](s string, parse func(string) (A, error)) (sites[A], error) {
	s = strings.TrimSpace(s)
	if s == "" || s == core.IdentityText {
		return nil, nil
	}
	var id A
	var out sites[A]
	seen := make(map[int]bool)
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == i {
			return nil, fmt.Errorf("parse %q: expected index at %d: %w", s, i, core.ErrFromStringFailed)
		}
		idx, err := strconv.Atoi(s[i:j])
		if err != nil {
			return nil, fmt.Errorf("parse %q: %v: %w", s, err, core.ErrFromStringFailed)
		}
		k := j
		for k < len(s) && !isDigit(s[k]) {
			k++
		}
		if k == j {
			return nil, fmt.Errorf("parse %q: missing operator after %d: %w", s, idx, core.ErrFromStringFailed)
		}
		op, err := parse(s[j:k])
		if err != nil {
			return nil, err
		}
		// identity sites count as occupied too
		if seen[idx] {
			return nil, fmt.Errorf("parse %q: index %d repeated: %w", s, idx, core.ErrFromStringFailed)
		}
		seen[idx] = true
		if op != id {
			out = append(out, site[A]{index: idx, op: op})
		}
		i = k
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].index < out[b].index })
	return out, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// expand rewrites every site through conv and returns the cartesian
// expansion, identity results dropped.
func expand[A, B symbol](src sites[A], conv func(A) []Weighted[B]) ([]sites[B], []complex128) {
	var id B
	lists := []sites[B]{nil}
	weights := []complex128{1}
	for _, st := range src {
		opts := conv(st.op)
		nextL := make([]sites[B], 0, len(lists)*len(opts))
		nextW := make([]complex128, 0, len(lists)*len(opts))
		for n := range lists {
			for _, o := range opts {
				l := lists[n]
				if o.Op != id {
					l = append(append(make(sites[B], 0, len(l)+1), l...), site[B]{index: st.index, op: o.Op})
				}
				nextL = append(nextL, l)
				nextW = append(nextW, weights[n]*o.Weight)
			}
		}
		lists, weights = nextL, nextW
	}
	return lists, weights
}
