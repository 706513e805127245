// SPDX-License-Identifier: MIT
//
// File: methods_arith.go
// Role: Operator arithmetic (negation, sums, scalar and bilinear products)
//       and conversions between the general and Hermitian kinds.
// Atomicity:
//   - Every fallible operation builds its result on a fresh container; the
//     operands are never mutated.
// AI-HINT (file):
//   - Multiply is the single bilinear fold used by every particle kind; the
//     kind-specific part is the product rule passed as mul.

package core

import (
	"github.com/katalvlaran/qalgebra/calculator"
)

// Neg returns -o.
// Complexity: O(n).
func (o *Operator[K]) Neg() *Operator[K] {
	out := o.Clone()
	for i := range out.vals {
		out.vals[i] = out.vals[i].Neg()
	}

	return out
}

// Add returns o + other folded through AddOperatorProduct. The result has
// the kind of o. On error neither operand is changed and nil is returned.
// Complexity: O(n + m).
func (o *Operator[K]) Add(other *Operator[K]) (*Operator[K], error) {
	out := o.Clone()
	for i := range other.keys {
		if err := out.AddOperatorProduct(other.keys[i], other.vals[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Sub returns o - other. Same contract as Add.
func (o *Operator[K]) Sub(other *Operator[K]) (*Operator[K], error) {
	out := o.Clone()
	for i := range other.keys {
		if err := out.AddOperatorProduct(other.keys[i], other.vals[i].Neg()); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Scale returns o·c.
//
// Errors:
//   - ErrNonHermitianOperator: o is Hermitian-constrained and Im(c) != 0.
//
// Complexity: O(n).
func (o *Operator[K]) Scale(c calculator.Complex) (*Operator[K], error) {
	if o.hermitian && !c.Im.IsZero() {
		o.log.Debug().Str("factor", c.String()).Msg("complex scaling of hermitian operator rejected")
		return nil, ErrNonHermitianOperator
	}
	out := o.EmptyClone(len(o.keys))
	for i := range o.keys {
		v := o.vals[i].Mul(c)
		if !v.IsZero() {
			out.insert(o.keys[i], v)
		}
	}

	return out, nil
}

// ScaleReal returns o·f. Valid for both kinds.
func (o *Operator[K]) ScaleReal(f calculator.Float) *Operator[K] {
	out := o.EmptyClone(len(o.keys))
	for i := range o.keys {
		v := o.vals[i].Scale(f)
		if !v.IsZero() {
			out.insert(o.keys[i], v)
		}
	}

	return out
}

// Multiply folds the bilinear expansion of left·right into out.
//
// Implementation:
//   - Stage 1: for every (kl, vl) in left and (kr, vr) in right, mul(kl, kr)
//     returns the weighted result keys.
//   - Stage 2: each term adds vl·vr·weight to a working copy of out.
//   - Stage 3: on success the working copy replaces the content of out.
//
// Errors:
//   - any error returned by mul or by the Hermitian policy of out; out is
//     unchanged in that case.
//
// Complexity: O(n·m·t) where t bounds the terms per key pair.
func Multiply[A Key[A], B Key[B], R Key[R]](
	out *Operator[R],
	left *Operator[A],
	right *Operator[B],
	mul func(A, B) ([]Term[R], error),
) error {
	out.log.Trace().Int("left", left.Len()).Int("right", right.Len()).Msg("multiply")
	work := out.Clone()
	for i := range left.keys {
		for j := range right.keys {
			terms, err := mul(left.keys[i], right.keys[j])
			if err != nil {
				return err
			}
			base := left.vals[i].Mul(right.vals[j])
			for _, t := range terms {
				if err = work.AddOperatorProduct(t.Key, base.Mul(t.Value)); err != nil {
					return err
				}
			}
		}
	}
	*out = *work

	return nil
}

// MultiplyScalar returns a container built by mapping every entry through
// mul: each (key, value) contributes the returned terms. It is the shape
// shared by Hamiltonian × complex scalar and single-term transforms.
func MultiplyScalar[A Key[A], R Key[R]](
	out *Operator[R],
	src *Operator[A],
	mul func(A, calculator.Complex) []Term[R],
) error {
	work := out.Clone()
	for i := range src.keys {
		for _, t := range mul(src.keys[i], src.vals[i]) {
			if err := work.AddOperatorProduct(t.Key, t.Value); err != nil {
				return err
			}
		}
	}
	*out = *work

	return nil
}

// ToHamiltonian copies src into a Hermitian-constrained container. check,
// when non-nil, validates every key first (for example that it is in
// canonical Hermitian form).
//
// Errors:
//   - the first error of check, or ErrNonHermitianOperator for a natural key
//     with a non-zero imaginary part.
func ToHamiltonian[K Key[K]](src *Operator[K], check func(K) error) (*Operator[K], error) {
	out := newOperator[K](true, Options{capacity: len(src.keys), logger: src.log})
	out.guard = src.guard
	for i := range src.keys {
		if check != nil {
			if err := check(src.keys[i]); err != nil {
				return nil, keyErrorf("ToHamiltonian", src.keys[i].String(), err)
			}
		}
		if err := out.AddOperatorProduct(src.keys[i], src.vals[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// ToOperator expands a Hermitian-constrained container into the general
// kind over the same key type: every non-natural key k with value v also
// contributes conj(v)·phase to its conjugate. A general container is
// returned as a clone.
func ToOperator[K Key[K]](h *Operator[K]) *Operator[K] {
	if !h.hermitian {
		return h.Clone()
	}
	out := newOperator[K](false, Options{capacity: 2 * len(h.keys), logger: h.log})
	out.guard = h.guard
	for i := range h.keys {
		mustAdd(out, h.keys[i], h.vals[i])
		if !h.keys[i].IsNaturalHermitian() {
			ck, phase := h.keys[i].HermitianConjugate()
			mustAdd(out, ck, h.vals[i].Conj().ScaleFloat(phase))
		}
	}

	return out
}

// Convert maps every entry of src through conv and folds the terms into a
// fresh general container. conv must only produce keys out accepts.
func Convert[A Key[A], R Key[R]](src *Operator[A], conv func(A) []Term[R], opts ...Option) *Operator[R] {
	out := NewOperator[R](opts...)
	for i := range src.keys {
		for _, t := range conv(src.keys[i]) {
			mustAdd(out, t.Key, src.vals[i].Mul(t.Value))
		}
	}

	return out
}

// mustAdd is AddOperatorProduct for call sites where failure is an
// internal defect.
func mustAdd[K Key[K]](o *Operator[K], k K, v calculator.Complex) {
	if err := o.AddOperatorProduct(k, v); err != nil {
		Internalf("add %s: %v", k.String(), err)
	}
}

// MustAdd exposes mustAdd to the particle packages.
func MustAdd[K Key[K]](o *Operator[K], k K, v calculator.Complex) { mustAdd(o, k, v) }
