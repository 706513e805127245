// SPDX-License-Identifier: MIT

package bosons_test

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/bosons"
)

// ExampleBosonProduct_Mul shows the commutator b_0 b†_0 = b†_0 b_0 + 1.
func ExampleBosonProduct_Mul() {
	a, _ := bosons.ParseBosonProduct("a0")
	c, _ := bosons.ParseBosonProduct("c0")
	for _, t := range a.Mul(c) {
		fmt.Println(t.Key, t.Value)
	}
	// Output:
	// c0a0 (1 + i * 0)
	// I (1 + i * 0)
}
