// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

// SystemSuite exercises bounded systems and open-system grouping.
type SystemSuite struct {
	suite.Suite
}

func TestSystemSuite(t *testing.T) {
	suite.Run(t, new(SystemSuite))
}

// TestBoundEnforcement verifies atomic rejection past the declared bound.
func (s *SystemSuite) TestBoundEnforcement() {
	sys := core.MustNewSystem(core.NewOperator[label](), labelShape, 2)

	_, _, err := sys.Set(LabelAB, cx(1, 0))
	require.NoError(s.T(), err)
	_, _, err = sys.Set(LabelABA, cx(1, 0))
	require.ErrorIs(s.T(), err, core.ErrNumberSpinsExceeded)
	require.ErrorIs(s.T(), sys.AddOperatorProduct(LabelABA, cx(1, 0)), core.ErrNumberSpinsExceeded)
	require.Equal(s.T(), 1, sys.Len())
	require.Equal(s.T(), []int{2}, sys.Bounds())
	require.Equal(s.T(), []int{2}, sys.CurrentBounds())
}

// TestUnboundedGrows verifies that an unset bound reports current usage.
func (s *SystemSuite) TestUnboundedGrows() {
	sys := core.MustNewSystem(core.NewOperator[label](), labelShape, core.Unbounded)
	require.Equal(s.T(), 0, sys.Bound(0))
	require.NoError(s.T(), sys.AddOperatorProduct(LabelABA, cx(1, 0)))
	require.Equal(s.T(), 3, sys.Bound(0))
	require.Equal(s.T(), []int{core.Unbounded}, sys.Limits())
}

// TestNewSystemRejectsOversizedOperator verifies the FromOperator check.
func (s *SystemSuite) TestNewSystemRejectsOversizedOperator() {
	op := core.NewOperator[label]()
	mustSet(s.T(), op, LabelABA, cx(1, 0))
	_, err := core.NewSystem(op, labelShape, 2)
	require.ErrorIs(s.T(), err, core.ErrNumberSpinsExceeded)
	require.Panics(s.T(), func() { _, _ = core.NewSystem(op, labelShape) })
}

// TestArithmeticKeepsLimits verifies Add under the receiver's limit.
func (s *SystemSuite) TestArithmeticKeepsLimits() {
	a := core.MustNewSystem(core.NewOperator[label](), labelShape, 2)
	b := core.MustNewSystem(core.NewOperator[label](), labelShape, core.Unbounded)
	require.NoError(s.T(), a.AddOperatorProduct(LabelA, cx(1, 0)))
	require.NoError(s.T(), b.AddOperatorProduct(LabelABA, cx(1, 0)))

	_, err := a.Add(b)
	require.ErrorIs(s.T(), err, core.ErrNumberSpinsExceeded)

	sum, err := b.Add(a)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, sum.Len())

	diff, err := a.Sub(a)
	require.NoError(s.T(), err)
	require.True(s.T(), diff.IsEmpty())
	require.Equal(s.T(), []int{2}, diff.Limits())

	require.Equal(s.T(), []int{3}, core.MaxBounds(a, b))
	require.True(s.T(), a.ScaleReal(calculator.NewFloat(2)).Get(LabelA).Equal(cx(2, 0)))
}

// TestGroupOpenSystem verifies bound reconciliation between both parts.
func (s *SystemSuite) TestGroupOpenSystem() {
	noiseShape := core.Shape[core.Pair[label]]{Usage: core.PairShape(labelShape.Usage), Slots: labelShape.Slots}
	newSys := func(limit int) *core.System[label] {
		return core.MustNewSystem(core.NewHamiltonian[label](), labelShape, limit)
	}
	newNoise := func(limit int) *core.System[core.Pair[label]] {
		return core.MustNewSystem(core.NewNoiseOperator[label](nil), noiseShape, limit)
	}

	open, err := core.GroupOpenSystem(newSys(3), newNoise(core.Unbounded))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{3}, open.Noise().Limits(), "noise adopts the system bound")
	require.Equal(s.T(), []int{3}, open.Bounds())

	_, err = core.GroupOpenSystem(newSys(3), newNoise(4))
	require.ErrorIs(s.T(), err, core.ErrMismatchedNumberSpins)

	big := newNoise(core.Unbounded)
	require.NoError(s.T(), big.AddOperatorProduct(core.Pair[label]{Left: LabelABA, Right: LabelA}, cx(1, 0)))
	_, err = core.GroupOpenSystem(newSys(2), big)
	require.ErrorIs(s.T(), err, core.ErrMismatchedNumberSpins)

	open, err = core.GroupOpenSystem(newSys(core.Unbounded), newNoise(core.Unbounded))
	require.NoError(s.T(), err)
	require.NoError(s.T(), open.System().AddOperatorProduct(LabelAB, cx(1, 1)))
	sum, err := open.Add(open.Clone())
	require.NoError(s.T(), err)
	require.True(s.T(), sum.System().Get(LabelAB).Equal(cx(2, 2)))
	diff, err := open.Sub(open.Clone())
	require.NoError(s.T(), err)
	require.True(s.T(), diff.IsEmpty())
}
