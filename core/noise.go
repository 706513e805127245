// SPDX-License-Identifier: MIT
//
// File: noise.go
// Role: Lindblad noise operators: Operator[Pair[K]] with the identity-half
//       guard and the cartesian construction from two full operators.
// AI-HINT (file):
//   - A noise operator is an Operator keyed by Pair[K]; all CRUD and
//     arithmetic come from Operator. Only the guard differs.
//   - The guard is installed by NewNoiseOperator and survives Clone.

package core

import "github.com/katalvlaran/qalgebra/calculator"

// HermitianConjugate conjugates both halves; the phase is the product of
// the half phases.
func (p Pair[K]) HermitianConjugate() (Pair[K], float64) {
	l, pl := p.Left.HermitianConjugate()
	r, pr := p.Right.HermitianConjugate()
	return Pair[K]{Left: l, Right: r}, pl * pr
}

// IsNaturalHermitian reports whether both halves are naturally Hermitian.
func (p Pair[K]) IsNaturalHermitian() bool {
	return p.Left.IsNaturalHermitian() && p.Right.IsNaturalHermitian()
}

// IsEmpty reports whether both halves are the identity.
func (p Pair[K]) IsEmpty() bool { return p.Left.IsEmpty() && p.Right.IsEmpty() }

// LindbladGuard rejects pairs with an identity half.
func LindbladGuard[K Key[K]](p Pair[K]) error {
	if p.Left.IsEmpty() || p.Right.IsEmpty() {
		return ErrInvalidLindbladTerms
	}
	return nil
}

// NewNoiseOperator returns an empty pair-keyed container whose Set rejects
// identity halves with ErrInvalidLindbladTerms. extra, when non-nil, is run
// on both halves after the identity check (mixed arity checks use it).
func NewNoiseOperator[K Key[K]](extra func(K) error, opts ...Option) *Operator[Pair[K]] {
	o := NewOperator[Pair[K]](opts...)
	if extra == nil {
		return o.WithKeyGuard(LindbladGuard[K])
	}
	return o.WithKeyGuard(func(p Pair[K]) error {
		if err := LindbladGuard(p); err != nil {
			return err
		}
		if err := extra(p.Left); err != nil {
			return err
		}
		return extra(p.Right)
	})
}

// AddNoiseFromFullOperators adds value·v_l·conj(v_r) to (k_l, k_r) for every
// entry k_l of left and k_r of right. Pairs with an identity half are
// skipped. On error out is unchanged.
//
// Errors:
//   - ErrInvalidLindbladTerms: left or right has no entries.
//
// Complexity: O(|left|·|right|).
func AddNoiseFromFullOperators[K Key[K]](out *Operator[Pair[K]], left, right *Operator[K], value calculator.Complex) error {
	if left.IsEmpty() || right.IsEmpty() {
		return ErrInvalidLindbladTerms
	}
	work := out.Clone()
	for i := range left.keys {
		for j := range right.keys {
			p := Pair[K]{Left: left.keys[i], Right: right.keys[j]}
			if p.Left.IsEmpty() || p.Right.IsEmpty() {
				continue
			}
			v := value.Mul(left.vals[i]).Mul(right.vals[j].Conj())
			if err := work.AddOperatorProduct(p, v); err != nil {
				return err
			}
		}
	}
	*out = *work

	return nil
}

// PairShape lifts a per-key usage function to pairs: each slot is the
// maximum over both halves.
func PairShape[K Key[K]](usage func(K) []int) func(Pair[K]) []int {
	return func(p Pair[K]) []int {
		l := usage(p.Left)
		r := usage(p.Right)
		out := make([]int, len(l))
		for i := range l {
			out[i] = max(l[i], r[i])
		}
		return out
	}
}

// ConvertNoise maps both halves of every entry of src through conv and adds
// value·w_l·conj(w_r) for every pair of result terms into out. Result
// pairs with an identity half are dropped.
//
// Complexity: O(n·t²) where t bounds the terms per converted half.
func ConvertNoise[A Key[A], R Key[R]](out *Operator[Pair[R]], src *Operator[Pair[A]], conv func(A) []Term[R]) {
	for i := range src.keys {
		lt := conv(src.keys[i].Left)
		rt := conv(src.keys[i].Right)
		for _, l := range lt {
			for _, r := range rt {
				if l.Key.IsEmpty() || r.Key.IsEmpty() {
					continue
				}
				v := src.vals[i].Mul(l.Value).Mul(r.Value.Conj())
				mustAdd(out, Pair[R]{Left: l.Key, Right: r.Key}, v)
			}
		}
	}
}
