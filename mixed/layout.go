// SPDX-License-Identifier: MIT
//
// File: layout.go
// Role: Subsystem layout of mixed containers and the slot shape of mixed
//       systems.

package mixed

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/core"
)

// Layout is the number of spin, boson and fermion subsystems of a mixed
// key or container.
type Layout struct {
	Spins    int
	Bosons   int
	Fermions int
}

func (l Layout) String() string {
	return fmt.Sprintf("(%d spins, %d bosons, %d fermions)", l.Spins, l.Bosons, l.Fermions)
}

// Slots is the total number of subsystems.
func (l Layout) Slots() int { return l.Spins + l.Bosons + l.Fermions }

func (l Layout) option() core.Option { return core.WithSubsystems(l.Spins, l.Bosons, l.Fermions) }

// check fails with ErrMismatchedNumberSubsystems when got differs from l.
func (l Layout) check(got Layout) error {
	if got != l {
		return fmt.Errorf("layout %s, want %s: %w", got, l, core.ErrMismatchedNumberSubsystems)
	}
	return nil
}

// layoutFrom reads the layout recorded on a container; containers built
// without one report the empty layout.
func layoutFrom(counts []int) Layout {
	if len(counts) != 3 {
		return Layout{}
	}
	return Layout{Spins: counts[0], Bosons: counts[1], Fermions: counts[2]}
}

// LayoutOf returns the layout a mixed container was built with.
func LayoutOf[K core.Key[K]](o *core.Operator[K]) Layout { return layoutFrom(o.Subsystems()) }

// layoutKey is satisfied by every mixed key type.
type layoutKey[K any] interface {
	core.Key[K]
	Layout() Layout
	usage() []int
}

func guardFor[K layoutKey[K]](l Layout) func(K) error {
	return func(k K) error { return l.check(k.Layout()) }
}

// slots lists the sentinels of each subsystem in slot order: spins first,
// then bosons, then fermions.
func (l Layout) slots() []core.Slot {
	out := make([]core.Slot, 0, l.Slots())
	for i := 0; i < l.Spins; i++ {
		out = append(out, core.SpinSlot)
	}
	for i := 0; i < l.Bosons+l.Fermions; i++ {
		out = append(out, core.ModeSlot)
	}
	return out
}

// Shape returns the system shape of mixed keys with layout l.
func Shape[K layoutKey[K]](l Layout) core.Shape[K] {
	return core.Shape[K]{Usage: func(k K) []int { return k.usage() }, Slots: l.slots()}
}

// NoiseShape returns the system shape of mixed noise pairs with layout l.
func NoiseShape(l Layout) core.Shape[core.Pair[MixedDecoherenceProduct]] {
	return core.Shape[core.Pair[MixedDecoherenceProduct]]{
		Usage: core.PairShape(func(k MixedDecoherenceProduct) []int { return k.usage() }),
		Slots: l.slots(),
	}
}

// Bounds is the per-subsystem bound list of a mixed system; use
// core.Unbounded for an unset entry.
type Bounds struct {
	Spins    []int
	Bosons   []int
	Fermions []int
}

// Unbounded returns all-unset bounds for l.
func Unbounded(l Layout) Bounds {
	fill := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = core.Unbounded
		}
		return out
	}
	return Bounds{Spins: fill(l.Spins), Bosons: fill(l.Bosons), Fermions: fill(l.Fermions)}
}

func (b Bounds) layout() Layout {
	return Layout{Spins: len(b.Spins), Bosons: len(b.Bosons), Fermions: len(b.Fermions)}
}

func (b Bounds) limits() []int {
	out := append([]int(nil), b.Spins...)
	out = append(out, b.Bosons...)
	return append(out, b.Fermions...)
}

// splitBounds cuts a flat slot list back into per-kind bounds.
func splitBounds(l Layout, flat []int) Bounds {
	return Bounds{
		Spins:    flat[:l.Spins],
		Bosons:   flat[l.Spins : l.Spins+l.Bosons],
		Fermions: flat[l.Spins+l.Bosons:],
	}
}
