// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/bosons"
	"github.com/katalvlaran/qalgebra/core"
	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/mixed"
	"github.com/katalvlaran/qalgebra/spins"
)

// ProductInfo is the result of the parse command.
type ProductInfo struct {
	Kind      string  `json:"kind" yaml:"kind" msgpack:"kind"`
	Canonical string  `json:"canonical" yaml:"canonical" msgpack:"canonical"`
	Conjugate string  `json:"conjugate" yaml:"conjugate" msgpack:"conjugate"`
	Phase     float64 `json:"phase" yaml:"phase" msgpack:"phase"`
	Natural   bool    `json:"natural_hermitian" yaml:"natural_hermitian" msgpack:"natural_hermitian"`
}

// Text implements texter.
func (p ProductInfo) Text() string {
	return fmt.Sprintf("kind: %s\ncanonical: %s\nconjugate: %s\nphase: %g\nnatural_hermitian: %t\n",
		p.Kind, p.Canonical, p.Conjugate, p.Phase, p.Natural)
}

func describe[K core.Key[K]](parse func(string) (K, error)) func(string) (ProductInfo, error) {
	return func(s string) (ProductInfo, error) {
		k, err := parse(s)
		if err != nil {
			return ProductInfo{}, err
		}
		c, phase := k.HermitianConjugate()
		return ProductInfo{Canonical: k.String(), Conjugate: c.String(), Phase: phase, Natural: k.IsNaturalHermitian()}, nil
	}
}

// productKinds maps the kind argument of parse to a describer.
var productKinds = map[string]func(string) (ProductInfo, error){
	"pauli":             describe(spins.ParsePauliProduct),
	"decoherence":       describe(spins.ParseDecoherenceProduct),
	"plus-minus":        describe(spins.ParsePlusMinusProduct),
	"boson":             describe(bosons.ParseBosonProduct),
	"hermitian-boson":   describe(bosons.ParseHermitianBosonProduct),
	"fermion":           describe(fermions.ParseFermionProduct),
	"hermitian-fermion": describe(fermions.ParseHermitianFermionProduct),
	"mixed":             describe(mixed.ParseMixedProduct),
	"hermitian-mixed":   describe(mixed.ParseHermitianMixedProduct),
	"mixed-decoherence": describe(mixed.ParseMixedDecoherenceProduct),
	"mixed-plus-minus":  describe(mixed.ParseMixedPlusMinusProduct),
}
