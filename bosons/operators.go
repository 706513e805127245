// SPDX-License-Identifier: MIT
//
// File: operators.go
// Role: Bosonic containers, their products and conversions.

package bosons

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// Container aliases.
type (
	BosonOperator              = core.Operator[BosonProduct]
	BosonHamiltonian           = core.Operator[HermitianBosonProduct]
	BosonLindbladNoiseOperator = core.Operator[core.Pair[BosonProduct]]
)

// NewBosonOperator returns an empty general operator.
func NewBosonOperator(opts ...core.Option) *BosonOperator {
	return core.NewOperator[BosonProduct](opts...)
}

// NewBosonHamiltonian returns an empty Hermitian-constrained operator.
func NewBosonHamiltonian(opts ...core.Option) *BosonHamiltonian {
	return core.NewHamiltonian[HermitianBosonProduct](opts...)
}

// NewBosonLindbladNoiseOperator returns an empty noise operator.
func NewBosonLindbladNoiseOperator(opts ...core.Option) *BosonLindbladNoiseOperator {
	return core.NewNoiseOperator[BosonProduct](nil, opts...)
}

// BosonHamiltonianFromOperator reads every key of o as a Hermitian key.
//
// Errors:
//   - ErrCreatorsAnnihilatorsMinimumIndex: a key is in conjugate orientation.
//   - ErrNonHermitianOperator: a natural key carries an imaginary part.
func BosonHamiltonianFromOperator(o *BosonOperator) (*BosonHamiltonian, error) {
	log := o.Logger()
	out := NewBosonHamiltonian(core.WithCapacity(o.Len()), core.WithLogger(log))
	for k, v := range o.All() {
		if core.ConjugateOrientation(k.creators, k.annihilators) {
			log.Debug().Str("key", k.String()).Msg("not a hamiltonian key")
			return nil, fmt.Errorf("key %s: %w", k, core.ErrCreatorsAnnihilatorsMinimumIndex)
		}
		h := HermitianBosonProduct{creators: k.Creators(), annihilators: k.Annihilators()}
		if err := out.AddOperatorProduct(h, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// BosonOperatorFromHamiltonian expands h; non-natural keys add their
// adjoint with the conjugated value.
func BosonOperatorFromHamiltonian(h *BosonHamiltonian) *BosonOperator {
	out := NewBosonOperator(core.WithCapacity(2*h.Len()), core.WithLogger(h.Logger()))
	for k, v := range h.All() {
		p := k.Product()
		core.MustAdd(out, p, v)
		if !k.IsNaturalHermitian() {
			c, _ := p.HermitianConjugate()
			core.MustAdd(out, c, v.Conj())
		}
	}
	return out
}

// MulBoson returns l·r.
func MulBoson(l, r *BosonOperator) *BosonOperator {
	out := NewBosonOperator(core.WithLogger(l.Logger()))
	if err := core.Multiply(out, l, r, mulBoson); err != nil {
		core.Internalf("MulBoson: %v", err)
	}
	return out
}

// MulBosonHamiltonian returns the general operator l·r.
func MulBosonHamiltonian(l, r *BosonHamiltonian) *BosonOperator {
	return MulBoson(BosonOperatorFromHamiltonian(l), BosonOperatorFromHamiltonian(r))
}

func MulBosonOperatorHamiltonian(l *BosonOperator, r *BosonHamiltonian) *BosonOperator {
	return MulBoson(l, BosonOperatorFromHamiltonian(r))
}

func MulBosonHamiltonianOperator(l *BosonHamiltonian, r *BosonOperator) *BosonOperator {
	return MulBoson(BosonOperatorFromHamiltonian(l), r)
}

// MulBosonHamiltonianComplex returns the general operator h·c.
func MulBosonHamiltonianComplex(h *BosonHamiltonian, c calculator.Complex) *BosonOperator {
	out, err := BosonOperatorFromHamiltonian(h).Scale(c)
	if err != nil {
		core.Internalf("MulBosonHamiltonianComplex: %v", err)
	}
	return out
}

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

// SeparateNoiseIntoNTerms splits a noise operator by the (creators,
// annihilators) counts of both halves.
func SeparateNoiseIntoNTerms(o *BosonLindbladNoiseOperator, left, right [2]int) (*BosonLindbladNoiseOperator, *BosonLindbladNoiseOperator) {
	return o.Separate(func(p core.Pair[BosonProduct]) bool {
		return p.Left.NumberCreators() == left[0] && p.Left.NumberAnnihilators() == left[1] &&
			p.Right.NumberCreators() == right[0] && p.Right.NumberAnnihilators() == right[1]
	})
}

func CurrentNumberModes[K ladderKey[K]](o *core.Operator[K]) int {
	n := 0
	for k := range o.All() {
		n = max(n, k.CurrentNumberModes())
	}
	return n
}

// RemapModes moves every key of o through mapping. Keys that collide are
// summed.
func RemapModes(o *BosonOperator, mapping map[int]int) *BosonOperator {
	out := o.EmptyClone(o.Len())
	for k, v := range o.All() {
		core.MustAdd(out, k.RemapModes(mapping), v)
	}
	return out
}

// RemapHamiltonianModes is RemapModes for Hamiltonians; keys that flip
// orientation take the conjugated coefficient.
func RemapHamiltonianModes(h *BosonHamiltonian, mapping map[int]int) (*BosonHamiltonian, error) {
	out := h.EmptyClone(h.Len())
	for k, v := range h.All() {
		nk, nv := k.RemapModes(mapping, v)
		if err := out.AddOperatorProduct(nk, nv); err != nil {
			return nil, err
		}
	}
	return out, nil
}
