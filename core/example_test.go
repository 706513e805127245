package core_test

import (
	"fmt"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// ExampleOperator demonstrates sparsity and the Hermitian guard.
func ExampleOperator() {
	h := core.NewHamiltonian[label]()

	// 1) A non-natural key may carry a complex value:
	_, _, _ = h.Set("ab", calculator.NewComplex(1, 2))

	// 2) A palindrome is naturally Hermitian and must stay real:
	_, _, err := h.Set("aba", calculator.NewComplex(0, 1))
	fmt.Println("rejected:", err != nil)

	// 3) Setting zero removes the entry:
	_, _, _ = h.Set("ab", calculator.Zero)
	fmt.Println("empty:", h.IsEmpty())

	// Output:
	// rejected: true
	// empty: true
}
