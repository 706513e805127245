// SPDX-License-Identifier: MIT

package mixed_test

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/mixed"
)

// ExampleMixedProduct_Mul shows X·X = 1 on the spin subsystem next to the
// boson commutator b_0 b†_0 = b†_0 b_0 + 1.
func ExampleMixedProduct_Mul() {
	l, _ := mixed.ParseMixedProduct("S0X:Ba0:")
	r, _ := mixed.ParseMixedProduct("S0X:Bc0:")
	terms, _ := l.Mul(r)
	for _, t := range terms {
		fmt.Println(t.Key, t.Value)
	}
	// Output:
	// SI:Bc0a0: (1 + i * 0)
	// SI:BI: (1 + i * 0)
}
