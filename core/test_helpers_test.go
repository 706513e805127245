// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for qalgebra/core.
//
// Purpose:
//   - Provide a tiny string-backed key type so the engine is tested without
//     any particle algebra.
//   - Keep values and fixtures deterministic.

package core_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// label is a test key: its conjugate is the reversed text, it is naturally
// Hermitian when it is a palindrome, and "I" (or "") is the identity.
type label string

func (l label) String() string { return string(l) }

func (l label) HermitianConjugate() (label, float64) {
	r := []rune(string(l))
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return label(r), 1
}

func (l label) IsNaturalHermitian() bool {
	c, _ := l.HermitianConjugate()
	return c == l
}

func (l label) IsEmpty() bool { return l == "" || l == "I" }

// Common keys used across core tests.
const (
	LabelID  label = "I"
	LabelA   label = "a"
	LabelB   label = "b"
	LabelAB  label = "ab"
	LabelBA  label = "ba"
	LabelABA label = "aba"
)

// parseLabel rejects the pair separator so decode errors can be provoked.
func parseLabel(s string) (label, error) {
	if strings.ContainsAny(s, "|!") {
		return "", fmt.Errorf("parseLabel(%q): %w", s, core.ErrFromStringFailed)
	}
	return label(s), nil
}

// labelShape bounds the text length in a single spin slot.
var labelShape = core.Shape[label]{
	Usage: func(l label) []int {
		if l.IsEmpty() {
			return []int{0}
		}
		return []int{len(l)}
	},
	Slots: []core.Slot{core.SpinSlot},
}

// mulLabel concatenates texts with weight 1.
func mulLabel(a, b label) ([]core.Term[label], error) {
	switch {
	case a.IsEmpty():
		return []core.Term[label]{core.NewTerm(b, 1, 0)}, nil
	case b.IsEmpty():
		return []core.Term[label]{core.NewTerm(a, 1, 0)}, nil
	}
	return []core.Term[label]{core.NewTerm(a+b, 1, 0)}, nil
}

// cx is shorthand for a numeric coefficient.
func cx(re, im float64) calculator.Complex { return calculator.NewComplex(re, im) }

// mustSet stores v under k and fails the test on error.
func mustSet(t *testing.T, o *core.Operator[label], k label, v calculator.Complex) {
	t.Helper()
	_, _, err := o.Set(k, v)
	require.NoError(t, err, "Set(%s)", k)
}

// opOf builds a general operator from entries, inserted in order.
func opOf(t *testing.T, entries map[label]calculator.Complex, order ...label) *core.Operator[label] {
	t.Helper()
	o := core.NewOperator[label]()
	for _, k := range order {
		mustSet(t, o, k, entries[k])
	}
	return o
}

// requireValue asserts the exact stored value of k.
func requireValue(t *testing.T, o *core.Operator[label], k label, want calculator.Complex) {
	t.Helper()
	got := o.Get(k)
	require.True(t, want.Equal(got), "Get(%s) = %s, want %s", k, got, want)
}
