// SPDX-License-Identifier: MIT
//
// File: ladder.go
// Role: Text grammar shared by boson and fermion products:
//       "c<i>" creator tokens followed by "a<i>" annihilator tokens, "I" for
//       the empty product.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Ladder token letters.
const (
	CreatorLetter     = 'c'
	AnnihilatorLetter = 'a'
	IdentityText      = "I"
)

// ParseLadder splits s into creator and annihilator indices in written order.
// No sorting or duplicate checks are applied; product constructors do that.
//
// Errors:
//   - ErrFromStringFailed: unknown letter, missing or non-integer index.
//   - ErrIndicesNotNormalOrdered: a creator token after an annihilator token.
func ParseLadder(s string) (creators, annihilators []int, err error) {
	s = strings.TrimSpace(s)
	if s == "" || s == IdentityText {
		return nil, nil, nil
	}
	seenAnnihilator := false
	for i := 0; i < len(s); {
		letter := s[i]
		if letter != CreatorLetter && letter != AnnihilatorLetter {
			return nil, nil, fmt.Errorf("ParseLadder(%q): letter %q is neither 'c' nor 'a': %w", s, letter, ErrFromStringFailed)
		}
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j == i+1 {
			return nil, nil, fmt.Errorf("ParseLadder(%q): missing index at %d: %w", s, i, ErrFromStringFailed)
		}
		idx, convErr := strconv.Atoi(s[i+1 : j])
		if convErr != nil {
			return nil, nil, fmt.Errorf("ParseLadder(%q): %v: %w", s, convErr, ErrFromStringFailed)
		}
		if letter == CreatorLetter {
			if seenAnnihilator {
				return nil, nil, fmt.Errorf("ParseLadder(%q): creator %d after annihilator: %w", s, idx, ErrIndicesNotNormalOrdered)
			}
			creators = append(creators, idx)
		} else {
			seenAnnihilator = true
			annihilators = append(annihilators, idx)
		}
		i = j
	}

	return creators, annihilators, nil
}

// FormatLadder renders creators then annihilators; "I" when both are empty.
func FormatLadder(creators, annihilators []int) string {
	if len(creators) == 0 && len(annihilators) == 0 {
		return IdentityText
	}
	var b strings.Builder
	for _, c := range creators {
		b.WriteByte(CreatorLetter)
		b.WriteString(strconv.Itoa(c))
	}
	for _, a := range annihilators {
		b.WriteByte(AnnihilatorLetter)
		b.WriteString(strconv.Itoa(a))
	}
	return b.String()
}

// NumberOfModes returns max(index)+1 over both sides, or 0.
func NumberOfModes(creators, annihilators []int) int {
	n := 0
	for _, c := range creators {
		n = max(n, c+1)
	}
	for _, a := range annihilators {
		n = max(n, a+1)
	}
	return n
}

// EqualInts reports element-wise equality.
func EqualInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CompareInts orders two index lists by length, then lexicographically.
func CompareInts(a, b []int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// ConjugateOrientation reports whether sorted ladder sides are in the
// orientation of a Hermitian key's adjoint. Zipped from the lowest index,
// the first unequal pair decides (annihilator < creator is conjugate); if
// every zipped pair is equal, creators outnumbering annihilators is
// conjugate.
func ConjugateOrientation(creators, annihilators []int) bool {
	equal := 0
	for n := 0; n < len(creators) && n < len(annihilators); n++ {
		if annihilators[n] < creators[n] {
			return true
		}
		if annihilators[n] > creators[n] {
			return false
		}
		equal++
	}
	return len(creators) > equal && len(annihilators) == equal
}
