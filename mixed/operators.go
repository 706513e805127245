// SPDX-License-Identifier: MIT
//
// File: operators.go
// Role: Mixed containers, their products and conversions.
// AI-HINT (file):
//   - Every mixed container is built for one Layout; keys of another
//     layout fail with ErrMismatchedNumberSubsystems (key guard).
//   - The layout travels with clones and payloads (core.WithSubsystems).

package mixed

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// Container aliases.
type (
	MixedOperator              = core.Operator[MixedProduct]
	MixedHamiltonian           = core.Operator[HermitianMixedProduct]
	MixedPlusMinusOperator     = core.Operator[MixedPlusMinusProduct]
	MixedLindbladNoiseOperator = core.Operator[core.Pair[MixedDecoherenceProduct]]
)

// NewMixedOperator returns an empty general operator over layout l.
func NewMixedOperator(l Layout, opts ...core.Option) *MixedOperator {
	return core.NewOperator[MixedProduct](append(opts, l.option())...).WithKeyGuard(guardFor[MixedProduct](l))
}

// NewMixedHamiltonian returns an empty Hermitian-constrained operator over l.
func NewMixedHamiltonian(l Layout, opts ...core.Option) *MixedHamiltonian {
	return core.NewHamiltonian[HermitianMixedProduct](append(opts, l.option())...).WithKeyGuard(guardFor[HermitianMixedProduct](l))
}

// NewMixedPlusMinusOperator returns an empty plus/minus operator over l.
func NewMixedPlusMinusOperator(l Layout, opts ...core.Option) *MixedPlusMinusOperator {
	return core.NewOperator[MixedPlusMinusProduct](append(opts, l.option())...).WithKeyGuard(guardFor[MixedPlusMinusProduct](l))
}

// NewMixedLindbladNoiseOperator returns an empty noise operator over l.
// Both halves of every key must have layout l.
func NewMixedLindbladNoiseOperator(l Layout, opts ...core.Option) *MixedLindbladNoiseOperator {
	return core.NewNoiseOperator(guardFor[MixedDecoherenceProduct](l), append(opts, l.option())...)
}

// MixedHamiltonianFromOperator reads every key of o as a Hermitian key.
//
// Errors:
//   - ErrCreatorsAnnihilatorsMinimumIndex: a key is in conjugate orientation.
//   - ErrNonHermitianOperator: a natural key carries an imaginary part.
func MixedHamiltonianFromOperator(o *MixedOperator) (*MixedHamiltonian, error) {
	log := o.Logger()
	out := NewMixedHamiltonian(LayoutOf(o), core.WithCapacity(o.Len()), core.WithLogger(log))
	for k, v := range o.All() {
		if k.conjugateOriented() {
			log.Debug().Str("key", k.String()).Msg("not a hamiltonian key")
			return nil, fmt.Errorf("key %s: %w", k, core.ErrCreatorsAnnihilatorsMinimumIndex)
		}
		if err := out.AddOperatorProduct(HermitianMixedProduct{k.tuple}, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MixedOperatorFromHamiltonian expands h; non-natural keys add their
// adjoint with the conjugated value times the phase.
func MixedOperatorFromHamiltonian(h *MixedHamiltonian) *MixedOperator {
	out := NewMixedOperator(LayoutOf(h), core.WithCapacity(2*h.Len()), core.WithLogger(h.Logger()))
	for k, v := range h.All() {
		p := k.Product()
		core.MustAdd(out, p, v)
		if !k.IsNaturalHermitian() {
			c, phase := p.HermitianConjugate()
			core.MustAdd(out, c, v.Conj().ScaleFloat(phase))
		}
	}
	return out
}

// MulMixed returns l·r.
//
// Errors:
//   - ErrMismatchedNumberSubsystems: the layouts of l and r differ.
func MulMixed(l, r *MixedOperator) (*MixedOperator, error) {
	layout := LayoutOf(l)
	if err := layout.check(LayoutOf(r)); err != nil {
		return nil, err
	}
	out := NewMixedOperator(layout, core.WithLogger(l.Logger()))
	if err := core.Multiply(out, l, r, mulMixed); err != nil {
		return nil, err
	}
	return out, nil
}

// MulMixedHamiltonian returns the general operator l·r.
func MulMixedHamiltonian(l, r *MixedHamiltonian) (*MixedOperator, error) {
	return MulMixed(MixedOperatorFromHamiltonian(l), MixedOperatorFromHamiltonian(r))
}

func MulMixedOperatorHamiltonian(l *MixedOperator, r *MixedHamiltonian) (*MixedOperator, error) {
	return MulMixed(l, MixedOperatorFromHamiltonian(r))
}

func MulMixedHamiltonianOperator(l *MixedHamiltonian, r *MixedOperator) (*MixedOperator, error) {
	return MulMixed(MixedOperatorFromHamiltonian(l), r)
}

// MulMixedHamiltonianComplex returns the general operator h·c.
func MulMixedHamiltonianComplex(h *MixedHamiltonian, c calculator.Complex) *MixedOperator {
	out, err := MixedOperatorFromHamiltonian(h).Scale(c)
	if err != nil {
		core.Internalf("MulMixedHamiltonianComplex: %v", err)
	}
	return out
}

// MixedOperatorToPlusMinus rewrites o in the plus/minus spin alphabet.
func MixedOperatorToPlusMinus(o *MixedOperator) *MixedPlusMinusOperator {
	out := NewMixedPlusMinusOperator(LayoutOf(o), core.WithLogger(o.Logger()))
	convertInto(out, o, MixedProduct.ToMixedPlusMinusProduct)
	return out
}

// MixedPlusMinusToOperator rewrites o in the Pauli spin alphabet.
func MixedPlusMinusToOperator(o *MixedPlusMinusOperator) *MixedOperator {
	out := NewMixedOperator(LayoutOf(o), core.WithLogger(o.Logger()))
	convertInto(out, o, MixedPlusMinusProduct.ToMixedProduct)
	return out
}

// convertInto adds value·w for every converted term of every entry of src.
func convertInto[A core.Key[A], R core.Key[R]](out *core.Operator[R], src *core.Operator[A], conv func(A) []core.Term[R]) {
	for k, v := range src.All() {
		for _, t := range conv(k) {
			core.MustAdd(out, t.Key, v.Mul(t.Value))
		}
	}
}

// AddNoiseFromFullOperators adds value·v_l·conj(v_r) under (l, r) for every
// pair of keys of left and right, rewritten in the decoherence alphabet.
// Pairs with an identity half are skipped. On error out is unchanged.
//
// Errors:
//   - ErrMismatchedNumberSubsystems: left or right has another layout.
//   - ErrInvalidLindbladTerms: left or right has no entries.
func AddNoiseFromFullOperators(out *MixedLindbladNoiseOperator, left, right *MixedOperator, value calculator.Complex) error {
	layout := LayoutOf(out)
	if err := layout.check(LayoutOf(left)); err != nil {
		return err
	}
	if err := layout.check(LayoutOf(right)); err != nil {
		return err
	}
	full := core.NewNoiseOperator[MixedProduct](nil, core.WithLogger(out.Logger()))
	if err := core.AddNoiseFromFullOperators(full, left, right, value); err != nil {
		return err
	}
	work := out.Clone()
	core.ConvertNoise(work, full, MixedProduct.ToMixedDecoherenceProduct)
	*out = *work
	return nil
}

// Counts is the per-subsystem operator count used by separation: the
// number of spin operators per spin subsystem and (creators, annihilators)
// per boson and fermion subsystem.
type Counts struct {
	Spins    []int
	Bosons   [][2]int
	Fermions [][2]int
}

// SeparateIntoNTerms splits o into the entries with exactly the counts n
// and the rest.
func SeparateIntoNTerms(o *MixedOperator, n Counts) (matched, rest *MixedOperator) {
	return o.Separate(func(k MixedProduct) bool { return k.hasCounts(n) })
}

// SeparateNoiseIntoNTerms splits noise by the counts of both halves.
func SeparateNoiseIntoNTerms(o *MixedLindbladNoiseOperator, left, right Counts) (matched, rest *MixedLindbladNoiseOperator) {
	return o.Separate(func(p core.Pair[MixedDecoherenceProduct]) bool {
		return p.Left.hasCounts(left) && p.Right.hasCounts(right)
	})
}

// CurrentNumberSpins returns, per spin subsystem, the largest site count
// used by any key of o.
func CurrentNumberSpins[K layoutKey[K]](o *core.Operator[K]) []int {
	return slotMax(o, 0, LayoutOf(o).Spins)
}

// CurrentNumberBosonicModes returns the per-subsystem boson mode counts.
func CurrentNumberBosonicModes[K layoutKey[K]](o *core.Operator[K]) []int {
	l := LayoutOf(o)
	return slotMax(o, l.Spins, l.Bosons)
}

// CurrentNumberFermionicModes returns the per-subsystem fermion mode counts.
func CurrentNumberFermionicModes[K layoutKey[K]](o *core.Operator[K]) []int {
	l := LayoutOf(o)
	return slotMax(o, l.Spins+l.Bosons, l.Fermions)
}

func slotMax[K layoutKey[K]](o *core.Operator[K], from, n int) []int {
	out := make([]int, n)
	for k := range o.All() {
		u := k.usage()
		for i := range out {
			out[i] = max(out[i], u[from+i])
		}
	}
	return out
}
