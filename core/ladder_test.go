// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/core"
)

func TestParseLadder(t *testing.T) {
	tests := []struct {
		in   string
		c, a []int
		err  error
	}{
		{in: "I"},
		{in: ""},
		{in: "c0c1a2", c: []int{0, 1}, a: []int{2}},
		{in: "a12", a: []int{12}},
		{in: "c3c1", c: []int{3, 1}},
		{in: "c0a1c2", err: core.ErrIndicesNotNormalOrdered},
		{in: "c0b1", err: core.ErrFromStringFailed},
		{in: "c", err: core.ErrFromStringFailed},
		{in: "0c", err: core.ErrFromStringFailed},
		{in: "c99999999999999999999", err: core.ErrFromStringFailed},
	}
	for _, tc := range tests {
		c, a, err := core.ParseLadder(tc.in)
		if tc.err != nil {
			require.ErrorIs(t, err, tc.err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.c, c, tc.in)
		assert.Equal(t, tc.a, a, tc.in)
	}
}

func TestFormatLadder(t *testing.T) {
	assert.Equal(t, "I", core.FormatLadder(nil, nil))
	assert.Equal(t, "c0c2a1", core.FormatLadder([]int{0, 2}, []int{1}))
	assert.Equal(t, 3, core.NumberOfModes([]int{0, 2}, []int{1}))
	assert.Equal(t, -1, core.CompareInts([]int{5}, []int{0, 1}))
	assert.Equal(t, 1, core.CompareInts([]int{0, 2}, []int{0, 1}))
	assert.True(t, core.EqualInts([]int{1, 2}, []int{1, 2}))
}
