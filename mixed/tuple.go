// SPDX-License-Identifier: MIT
//
// File: tuple.go
// Role: The subsystem tuple shared by every mixed key type: a list of spin
//       products, a list of boson products and a list of fermion products.
// Text:
//   - "S<spin>:" per spin subsystem, then "B<ladder>:", then "F<ladder>:".
//     An identity sub-product renders as "I" ("SI:").
// AI-HINT (file):
//   - The spin product type is the only varying part; MixedProduct,
//     MixedDecoherenceProduct and MixedPlusMinusProduct embed tuple[S].

package mixed

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/qalgebra/bosons"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
)

// Subsystem prefixes of the text form.
const (
	spinPrefix    = 'S'
	bosonPrefix   = 'B'
	fermionPrefix = 'F'
	partSep       = ":"
)

// spinKey is the capability set tuple needs from a spin product.
type spinKey[S any] interface {
	core.Key[S]
	Equal(S) bool
	Compare(S) int
	CurrentNumberSpins() int
	Len() int
}

type tuple[S spinKey[S]] struct {
	spinParts    []S
	bosonParts   []bosons.BosonProduct
	fermionParts []fermions.FermionProduct
}

func newTuple[S spinKey[S]](s []S, b []bosons.BosonProduct, f []fermions.FermionProduct) tuple[S] {
	return tuple[S]{spinParts: slices.Clone(s), bosonParts: slices.Clone(b), fermionParts: slices.Clone(f)}
}

// parseTuple reads the text form with parseSpin for spin subsystems.
func parseTuple[S spinKey[S]](s string, parseSpin func(string) (S, error)) (tuple[S], error) {
	var t tuple[S]
	for _, part := range strings.Split(s, partSep) {
		if part == "" {
			continue
		}
		body := part[1:]
		switch part[0] {
		case spinPrefix:
			p, err := parseSpin(body)
			if err != nil {
				return tuple[S]{}, err
			}
			t.spinParts = append(t.spinParts, p)
		case bosonPrefix:
			p, err := bosons.ParseBosonProduct(body)
			if err != nil {
				return tuple[S]{}, err
			}
			t.bosonParts = append(t.bosonParts, p)
		case fermionPrefix:
			p, err := fermions.ParseFermionProduct(body)
			if err != nil {
				return tuple[S]{}, err
			}
			t.fermionParts = append(t.fermionParts, p)
		default:
			return tuple[S]{}, fmt.Errorf("subsystem %q is neither spin, boson nor fermion: %w", part, core.ErrFromStringFailed)
		}
	}
	return t, nil
}

func (t tuple[S]) String() string {
	var b strings.Builder
	for _, p := range t.spinParts {
		b.WriteByte(spinPrefix)
		b.WriteString(p.String())
		b.WriteString(partSep)
	}
	for _, p := range t.bosonParts {
		b.WriteByte(bosonPrefix)
		b.WriteString(p.String())
		b.WriteString(partSep)
	}
	for _, p := range t.fermionParts {
		b.WriteByte(fermionPrefix)
		b.WriteString(p.String())
		b.WriteString(partSep)
	}
	return b.String()
}

// Layout returns the subsystem counts of the tuple.
func (t tuple[S]) Layout() Layout {
	return Layout{Spins: len(t.spinParts), Bosons: len(t.bosonParts), Fermions: len(t.fermionParts)}
}

// Bosons returns a copy of the boson sub-products.
func (t tuple[S]) Bosons() []bosons.BosonProduct { return slices.Clone(t.bosonParts) }

// Fermions returns a copy of the fermion sub-products.
func (t tuple[S]) Fermions() []fermions.FermionProduct { return slices.Clone(t.fermionParts) }

// CurrentNumberSpins returns the spin usage per spin subsystem.
func (t tuple[S]) CurrentNumberSpins() []int {
	out := make([]int, len(t.spinParts))
	for i, p := range t.spinParts {
		out[i] = p.CurrentNumberSpins()
	}
	return out
}

// CurrentNumberBosonicModes returns the mode usage per boson subsystem.
func (t tuple[S]) CurrentNumberBosonicModes() []int {
	out := make([]int, len(t.bosonParts))
	for i, p := range t.bosonParts {
		out[i] = p.CurrentNumberModes()
	}
	return out
}

// CurrentNumberFermionicModes returns the mode usage per fermion subsystem.
func (t tuple[S]) CurrentNumberFermionicModes() []int {
	out := make([]int, len(t.fermionParts))
	for i, p := range t.fermionParts {
		out[i] = p.CurrentNumberModes()
	}
	return out
}

// usage concatenates the per-subsystem usages in slot order.
func (t tuple[S]) usage() []int {
	out := t.CurrentNumberSpins()
	out = append(out, t.CurrentNumberBosonicModes()...)
	return append(out, t.CurrentNumberFermionicModes()...)
}

func (t tuple[S]) IsEmpty() bool {
	for _, p := range t.spinParts {
		if !p.IsEmpty() {
			return false
		}
	}
	for _, p := range t.bosonParts {
		if !p.IsEmpty() {
			return false
		}
	}
	for _, p := range t.fermionParts {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

func (t tuple[S]) equal(o tuple[S]) bool {
	return slices.EqualFunc(t.spinParts, o.spinParts, func(a, b S) bool { return a.Equal(b) }) &&
		slices.EqualFunc(t.bosonParts, o.bosonParts, bosons.BosonProduct.Equal) &&
		slices.EqualFunc(t.fermionParts, o.fermionParts, fermions.FermionProduct.Equal)
}

// compare orders spin subsystems first, then bosons, then fermions.
func (t tuple[S]) compare(o tuple[S]) int {
	if c := slices.CompareFunc(t.spinParts, o.spinParts, func(a, b S) int { return a.Compare(b) }); c != 0 {
		return c
	}
	if c := slices.CompareFunc(t.bosonParts, o.bosonParts, bosons.BosonProduct.Compare); c != 0 {
		return c
	}
	return slices.CompareFunc(t.fermionParts, o.fermionParts, fermions.FermionProduct.Compare)
}

// conjugate conjugates every subsystem; the phases multiply.
func (t tuple[S]) conjugate() (tuple[S], float64) {
	out := tuple[S]{
		spinParts:    make([]S, len(t.spinParts)),
		bosonParts:   make([]bosons.BosonProduct, len(t.bosonParts)),
		fermionParts: make([]fermions.FermionProduct, len(t.fermionParts)),
	}
	phase := 1.0
	var f float64
	for i, p := range t.spinParts {
		out.spinParts[i], f = p.HermitianConjugate()
		phase *= f
	}
	for i, p := range t.bosonParts {
		out.bosonParts[i], f = p.HermitianConjugate()
		phase *= f
	}
	for i, p := range t.fermionParts {
		out.fermionParts[i], f = p.HermitianConjugate()
		phase *= f
	}
	return out, phase
}

func (t tuple[S]) natural() bool {
	for _, p := range t.spinParts {
		if !p.IsNaturalHermitian() {
			return false
		}
	}
	for _, p := range t.bosonParts {
		if !p.IsNaturalHermitian() {
			return false
		}
	}
	for _, p := range t.fermionParts {
		if !p.IsNaturalHermitian() {
			return false
		}
	}
	return true
}

// conjugateOriented reports whether the first boson or fermion subsystem
// that differs from its adjoint is in conjugate orientation.
func (t tuple[S]) conjugateOriented() bool {
	for _, p := range t.bosonParts {
		if !p.IsNaturalHermitian() {
			return core.ConjugateOrientation(p.Creators(), p.Annihilators())
		}
	}
	for _, p := range t.fermionParts {
		if !p.IsNaturalHermitian() {
			return core.ConjugateOrientation(p.Creators(), p.Annihilators())
		}
	}
	return false
}

// hasCounts reports whether every subsystem has exactly the operator
// counts of n. A layout mismatch never matches.
func (t tuple[S]) hasCounts(n Counts) bool {
	if len(n.Spins) != len(t.spinParts) || len(n.Bosons) != len(t.bosonParts) || len(n.Fermions) != len(t.fermionParts) {
		return false
	}
	for i, p := range t.spinParts {
		if p.Len() != n.Spins[i] {
			return false
		}
	}
	for i, p := range t.bosonParts {
		if p.NumberCreators() != n.Bosons[i][0] || p.NumberAnnihilators() != n.Bosons[i][1] {
			return false
		}
	}
	for i, p := range t.fermionParts {
		if p.NumberCreators() != n.Fermions[i][0] || p.NumberAnnihilators() != n.Fermions[i][1] {
			return false
		}
	}
	return true
}

// withSpins returns t with its spin subsystems replaced.
func withSpins[A spinKey[A], R spinKey[R]](t tuple[A], s []R) tuple[R] {
	return tuple[R]{spinParts: s, bosonParts: t.bosonParts, fermionParts: t.fermionParts}
}
