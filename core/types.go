// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Key capability contract and the small value types passed between
//       products and containers.
// AI-HINT (file):
//   - Term is the unit of every multiplication result: key plus weight.
//   - Pair is the key of noise containers; its identity is "left|right".

package core

import (
	"github.com/katalvlaran/qalgebra/calculator"
)

// Key is the capability set an index product must provide to key a container.
//
// Contract:
//   - String() is canonical: two keys are equal iff their texts are equal.
//   - HermitianConjugate() returns the adjoint and a real phase (±1) that
//     multiplies the paired coefficient; applying it twice yields the key
//     again with phases multiplying to 1.
//   - IsNaturalHermitian() is true iff the adjoint is the key itself with phase +1.
//   - IsEmpty() is true for the multiplicative identity.
type Key[K any] interface {
	String() string
	HermitianConjugate() (K, float64)
	IsNaturalHermitian() bool
	IsEmpty() bool
}

// Term is a weighted key, the result unit of product multiplication and
// single-term transforms.
type Term[K any] struct {
	Key   K
	Value calculator.Complex
}

// NewTerm is shorthand for a Term with a numeric weight.
func NewTerm[K any](key K, re, im float64) Term[K] {
	return Term[K]{Key: key, Value: calculator.NewComplex(re, im)}
}

// Pair is a (left, right) Lindblad key.
type Pair[K Key[K]] struct {
	Left  K
	Right K
}

// PairSeparator separates the halves of a Pair in its identity text. No product
// grammar uses it.
const PairSeparator = "|"

// String returns "left|right".
func (p Pair[K]) String() string { return p.Left.String() + PairSeparator + p.Right.String() }

// Unbounded marks an unset System bound: the bound grows with content.
const Unbounded = -1
