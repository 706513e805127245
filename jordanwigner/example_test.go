// SPDX-License-Identifier: MIT

package jordanwigner_test

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/fermions"
	"github.com/katalvlaran/qalgebra/jordanwigner"
	"github.com/katalvlaran/qalgebra/spins"
)

// ExampleFromFermionProduct maps a single creator onto σ⁻.
func ExampleFromFermionProduct() {
	p, _ := fermions.ParseFermionProduct("c0")
	for k, v := range jordanwigner.FromFermionProduct(p).All() {
		fmt.Println(k, v)
	}
	// Output:
	// 0X (0.5 + i * 0)
	// 0Y (0 + i * -0.5)
}

// ExampleFromPauliProduct maps Z_0 onto the parity 1 - 2n_0.
func ExampleFromPauliProduct() {
	p, _ := spins.ParsePauliProduct("0Z")
	for k, v := range jordanwigner.FromPauliProduct(p).All() {
		fmt.Println(k, v)
	}
	// Output:
	// I (1 + i * 0)
	// c0a0 (-2 + i * 0)
}
