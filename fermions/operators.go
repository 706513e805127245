// SPDX-License-Identifier: MIT
//
// File: operators.go
// Role: Fermionic containers, their products and the conversions between
//       the general and Hermitian kinds.
// AI-HINT (file):
//   - FermionHamiltonian is keyed by HermitianFermionProduct, so it is a
//     different Go type from FermionOperator; core.ToOperator does not apply.

package fermions

import (
	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// Container aliases.
type (
	FermionOperator              = core.Operator[FermionProduct]
	FermionHamiltonian           = core.Operator[HermitianFermionProduct]
	FermionLindbladNoiseOperator = core.Operator[core.Pair[FermionProduct]]
)

// NewFermionOperator returns an empty general operator.
func NewFermionOperator(opts ...core.Option) *FermionOperator {
	return core.NewOperator[FermionProduct](opts...)
}

// NewFermionHamiltonian returns an empty Hermitian-constrained operator.
// Values of naturally Hermitian keys (creators == annihilators) must be real.
func NewFermionHamiltonian(opts ...core.Option) *FermionHamiltonian {
	return core.NewHamiltonian[HermitianFermionProduct](opts...)
}

// NewFermionLindbladNoiseOperator returns an empty noise operator.
func NewFermionLindbladNoiseOperator(opts ...core.Option) *FermionLindbladNoiseOperator {
	return core.NewNoiseOperator[FermionProduct](nil, opts...)
}

// FermionHamiltonianFromOperator reads every key of o as a Hermitian key.
//
// Errors:
//   - ErrCreatorsAnnihilatorsMinimumIndex: a key is in conjugate orientation.
//   - ErrNonHermitianOperator: a natural key carries an imaginary part.
func FermionHamiltonianFromOperator(o *FermionOperator) (*FermionHamiltonian, error) {
	log := o.Logger()
	out := NewFermionHamiltonian(core.WithCapacity(o.Len()), core.WithLogger(log))
	for k, v := range o.All() {
		h, err := canonicalHermitian(k)
		if err != nil {
			log.Debug().Str("key", k.String()).Err(err).Msg("not a hamiltonian key")
			return nil, err
		}
		if err = out.AddOperatorProduct(h, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FermionOperatorFromHamiltonian expands h: every non-natural key
// contributes its conjugate with the conjugated value times the sign.
func FermionOperatorFromHamiltonian(h *FermionHamiltonian) *FermionOperator {
	out := NewFermionOperator(core.WithCapacity(2*h.Len()), core.WithLogger(h.Logger()))
	for k, v := range h.All() {
		p := k.Product()
		core.MustAdd(out, p, v)
		if !k.IsNaturalHermitian() {
			c, sign := p.HermitianConjugate()
			core.MustAdd(out, c, v.Conj().ScaleFloat(sign))
		}
	}
	return out
}

// MulFermion returns l·r.
func MulFermion(l, r *FermionOperator) *FermionOperator {
	out := NewFermionOperator(core.WithLogger(l.Logger()))
	if err := core.Multiply(out, l, r, mulFermion); err != nil {
		core.Internalf("MulFermion: %v", err)
	}
	return out
}

// MulFermionHamiltonian returns the general operator l·r. Both operands
// are expanded with FermionOperatorFromHamiltonian first, so complex
// coefficients of non-natural keys pair with their conjugates.
func MulFermionHamiltonian(l, r *FermionHamiltonian) *FermionOperator {
	return MulFermion(FermionOperatorFromHamiltonian(l), FermionOperatorFromHamiltonian(r))
}

// MulFermionOperatorHamiltonian returns l·r for a general left operand.
func MulFermionOperatorHamiltonian(l *FermionOperator, r *FermionHamiltonian) *FermionOperator {
	return MulFermion(l, FermionOperatorFromHamiltonian(r))
}

// MulFermionHamiltonianOperator returns l·r for a Hamiltonian left operand.
func MulFermionHamiltonianOperator(l *FermionHamiltonian, r *FermionOperator) *FermionOperator {
	return MulFermion(FermionOperatorFromHamiltonian(l), r)
}

// MulFermionHamiltonianComplex returns the general operator h·c.
func MulFermionHamiltonianComplex(h *FermionHamiltonian, c calculator.Complex) *FermionOperator {
	out, err := FermionOperatorFromHamiltonian(h).Scale(c)
	if err != nil {
		core.Internalf("MulFermionHamiltonianComplex: %v", err)
	}
	return out
}

// ladderKey is satisfied by both fermionic key types.
type ladderKey[K any] interface {
	core.Key[K]
	NumberCreators() int
	NumberAnnihilators() int
	CurrentNumberModes() int
}

// SeparateIntoNTerms splits o into the entries with exactly (creators,
// annihilators) operators and the rest.
func SeparateIntoNTerms[K ladderKey[K]](o *core.Operator[K], creators, annihilators int) (*core.Operator[K], *core.Operator[K]) {
	return o.Separate(func(k K) bool {
		return k.NumberCreators() == creators && k.NumberAnnihilators() == annihilators
	})
}

// SeparateNoiseIntoNTerms splits a noise operator by the operator counts
// of both halves, given as (creators, annihilators) pairs.
func SeparateNoiseIntoNTerms(o *FermionLindbladNoiseOperator, left, right [2]int) (*FermionLindbladNoiseOperator, *FermionLindbladNoiseOperator) {
	return o.Separate(func(p core.Pair[FermionProduct]) bool {
		return p.Left.NumberCreators() == left[0] && p.Left.NumberAnnihilators() == left[1] &&
			p.Right.NumberCreators() == right[0] && p.Right.NumberAnnihilators() == right[1]
	})
}

// CurrentNumberModes is the highest mode index + 1 over all keys of o.
func CurrentNumberModes[K ladderKey[K]](o *core.Operator[K]) int {
	n := 0
	for k := range o.All() {
		n = max(n, k.CurrentNumberModes())
	}
	return n
}

// RemapModes moves every key of o through mapping, applying reordering
// signs.
//
// Errors:
//   - ErrIndicesContainDoubles: mapping is not injective on a key.
func RemapModes(o *FermionOperator, mapping map[int]int) (*FermionOperator, error) {
	out := o.EmptyClone(o.Len())
	for k, v := range o.All() {
		p, sign, err := k.RemapModes(mapping)
		if err != nil {
			return nil, err
		}
		core.MustAdd(out, p, v.ScaleFloat(sign))
	}
	return out, nil
}

// RemapHamiltonianModes is RemapModes for Hamiltonians; keys that flip
// orientation take the coefficient of the adjoint.
func RemapHamiltonianModes(h *FermionHamiltonian, mapping map[int]int) (*FermionHamiltonian, error) {
	out := h.EmptyClone(h.Len())
	for k, v := range h.All() {
		nk, nv, err := k.RemapModes(mapping, v)
		if err != nil {
			return nil, err
		}
		if err = out.AddOperatorProduct(nk, nv); err != nil {
			return nil, err
		}
	}
	return out, nil
}
