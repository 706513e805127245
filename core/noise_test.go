// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

func TestNoiseOperator_RejectsIdentityHalves(t *testing.T) {
	n := core.NewNoiseOperator[label](nil)

	_, _, err := n.Set(core.Pair[label]{Left: LabelID, Right: LabelA}, cx(1, 0))
	require.ErrorIs(t, err, core.ErrInvalidLindbladTerms)
	_, _, err = n.Set(core.Pair[label]{Left: LabelA, Right: ""}, cx(1, 0))
	require.ErrorIs(t, err, core.ErrInvalidLindbladTerms)
	require.True(t, n.IsEmpty())

	p := core.Pair[label]{Left: LabelA, Right: LabelAB}
	_, _, err = n.Set(p, cx(0.5, 0.5))
	require.NoError(t, err)
	require.Equal(t, "a|ab", p.String())

	// clones keep the guard
	c := n.Clone()
	_, _, err = c.Set(core.Pair[label]{Left: LabelID, Right: LabelB}, cx(1, 0))
	require.ErrorIs(t, err, core.ErrInvalidLindbladTerms)
}

func TestNoiseOperator_ExtraGuard(t *testing.T) {
	n := core.NewNoiseOperator(func(l label) error {
		if len(l) > 1 {
			return core.ErrMismatchedNumberSubsystems
		}
		return nil
	})
	_, _, err := n.Set(core.Pair[label]{Left: LabelA, Right: LabelAB}, cx(1, 0))
	require.ErrorIs(t, err, core.ErrMismatchedNumberSubsystems)
}

func TestAddNoiseFromFullOperators(t *testing.T) {
	left := opOf(t, map[label]calculator.Complex{LabelA: cx(1, 0), LabelID: cx(5, 0)}, LabelA, LabelID)
	right := opOf(t, map[label]calculator.Complex{LabelB: cx(0, 1), LabelAB: cx(2, 0)}, LabelB, LabelAB)

	n := core.NewNoiseOperator[label](nil)
	require.NoError(t, core.AddNoiseFromFullOperators(n, left, right, cx(2, 0)))

	// identity-half pairs are skipped
	require.Equal(t, 2, n.Len())
	// value * v_l * conj(v_r)
	require.True(t, n.Get(core.Pair[label]{Left: LabelA, Right: LabelB}).Equal(cx(0, -2)))
	require.True(t, n.Get(core.Pair[label]{Left: LabelA, Right: LabelAB}).Equal(cx(4, 0)))

	err := core.AddNoiseFromFullOperators(n, core.NewOperator[label](), right, cx(1, 0))
	require.ErrorIs(t, err, core.ErrInvalidLindbladTerms)
	require.Equal(t, 2, n.Len())
}

func TestPair_KeyContract(t *testing.T) {
	p := core.Pair[label]{Left: LabelAB, Right: LabelA}
	c, phase := p.HermitianConjugate()
	require.Equal(t, core.Pair[label]{Left: LabelBA, Right: LabelA}, c)
	require.Equal(t, 1.0, phase)
	require.False(t, p.IsNaturalHermitian())
	require.False(t, p.IsEmpty())
	require.True(t, core.Pair[label]{Left: LabelID, Right: ""}.IsEmpty())
}
