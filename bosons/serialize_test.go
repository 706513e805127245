// SPDX-License-Identifier: MIT
// Package bosons_test verifies the bosonic payload wrappers.

package bosons_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/bosons"
	"github.com/katalvlaran/qalgebra/core"
)

// TestBosonOperatorPayload VERIFIES the canonical JSON form.
func TestBosonOperatorPayload(t *testing.T) {
	o := bosons.NewBosonOperator()
	set(t, o, bp(t, "c0c0a1"), cx(0.5, -1))

	data, err := core.Marshal(core.JSON, bosons.EncodeBosonOperator(o))
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[["c0c0a1",0.5,-1]],"serialisation_meta":{"type_name":"BosonOperator","min_version":[2,0,0],"version":"2.0.0"}}`, string(data))

	var p core.Payload
	require.NoError(t, core.Unmarshal(core.JSON, data, &p))
	back, err := bosons.DecodeBosonOperator(p)
	require.NoError(t, err)
	assert.True(t, back.Equal(o))
}

// TestBosonHamiltonianPayload VERIFIES the round trip and decode checks.
func TestBosonHamiltonianPayload(t *testing.T) {
	h := bosons.NewBosonHamiltonian()
	set(t, h, hbp(t, "c0a1a1"), cx(0.5, 0.25))
	s, err := bosons.NewBosonHamiltonianSystem(h, 4)
	require.NoError(t, err)

	data, err := core.Marshal(core.YAML, bosons.EncodeBosonHamiltonianSystem(s))
	require.NoError(t, err)
	var sp core.SystemPayload
	require.NoError(t, core.Unmarshal(core.YAML, data, &sp))
	back, err := bosons.DecodeBosonHamiltonianSystem(sp)
	require.NoError(t, err)
	assert.True(t, back.Equal(s))

	var p core.Payload
	require.NoError(t, json.Unmarshal([]byte(`{"items":[["c1a0",1.0,0.0]],"serialisation_meta":{"type_name":"BosonHamiltonian","min_version":[2,0,0],"version":"2.0.0"}}`), &p))
	_, err = bosons.DecodeBosonHamiltonian(p)
	assert.ErrorIs(t, err, core.ErrCreatorsAnnihilatorsMinimumIndex)
}
