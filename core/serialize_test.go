// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/calculator"
	"github.com/katalvlaran/qalgebra/core"
)

const labelType = "LabelOperator"

var labelCodec = core.SingleKey(parseLabel)

func TestEncodeOperator_JSONShape(t *testing.T) {
	o := core.NewOperator[label]()
	mustSet(t, o, LabelAB, cx(1, 2))
	mustSet(t, o, LabelB, calculator.Complex{Re: calculator.NewSymbol("g")})

	data, err := core.Marshal(core.JSON, core.EncodeOperator(o, labelType, labelCodec))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"items": [["ab", 1, 2], ["b", "g", 0]],
		"serialisation_meta": {"type_name": "LabelOperator", "min_version": [2, 0, 0], "version": "2.0.0"}
	}`, string(data))
}

func TestOperator_RoundTripAllCodecs(t *testing.T) {
	o := core.NewHamiltonian[label]()
	mustSet(t, o, LabelAB, cx(1, 2))
	mustSet(t, o, LabelA, cx(-0.25, 0))
	mustSet(t, o, LabelB, calculator.Complex{Re: calculator.NewSymbol("2 * t")})

	for _, c := range []core.Codec{core.JSON, core.YAML, core.MsgPack} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := core.Marshal(c, core.EncodeOperator(o, labelType, labelCodec))
			require.NoError(t, err)

			var p core.Payload
			require.NoError(t, core.Unmarshal(c, data, &p))
			back, err := core.DecodeOperator(p, labelType, labelCodec, core.NewHamiltonian[label]())
			require.NoError(t, err)
			require.True(t, back.IsHermitian())
			require.True(t, o.Equal(back))
			require.Equal(t, o.Keys(), back.Keys())
		})
	}
}

func TestNoise_RoundTrip(t *testing.T) {
	n := core.NewNoiseOperator[label](nil)
	_, _, err := n.Set(core.Pair[label]{Left: LabelA, Right: LabelBA}, cx(0, 1))
	require.NoError(t, err)

	pc := core.PairKey(parseLabel)
	data, err := core.Marshal(core.JSON, core.EncodeOperator(n, "LabelNoise", pc))
	require.NoError(t, err)
	require.Contains(t, string(data), `["a","ba",0,1]`)

	var p core.Payload
	require.NoError(t, core.Unmarshal(core.JSON, data, &p))
	back, err := core.DecodeOperator(p, "LabelNoise", pc, core.NewNoiseOperator[label](nil))
	require.NoError(t, err)
	require.True(t, n.Equal(back))

	// an operator payload is not a noise payload
	_, err = core.DecodeOperator(core.Payload{
		Items: []core.Item{{Keys: []string{"a"}, Value: cx(1, 0)}},
		Meta:  core.NewMeta("LabelNoise"),
	}, "LabelNoise", pc, core.NewNoiseOperator[label](nil))
	require.ErrorIs(t, err, core.ErrFromStringFailed)
}

// TestCheckMeta_RejectsBeforeParsing uses an item that would itself fail,
// so the error proves the metadata was checked first.
func TestCheckMeta_RejectsBeforeParsing(t *testing.T) {
	bad := core.Payload{
		Items: []core.Item{{Keys: []string{"not|valid"}, Value: cx(1, 0)}},
		Meta:  core.Meta{TypeName: labelType, MinVersion: [3]int{99, 0, 0}, Version: "99.0.0"},
	}
	_, err := core.DecodeOperator(bad, labelType, labelCodec, core.NewOperator[label]())
	require.ErrorIs(t, err, core.ErrVersionMismatch)

	bad.Meta = core.Meta{TypeName: labelType, MinVersion: [3]int{2, 1, 0}, Version: "2.1.0"}
	_, err = core.DecodeOperator(bad, labelType, labelCodec, core.NewOperator[label]())
	require.ErrorIs(t, err, core.ErrVersionMismatch)

	bad.Meta = core.NewMeta("OtherOperator")
	bad.Meta.MinVersion = [3]int{99, 0, 0}
	_, err = core.DecodeOperator(bad, labelType, labelCodec, core.NewOperator[label]())
	require.ErrorIs(t, err, core.ErrTypeMismatch, "type name is checked first")

	bad.Meta = core.NewMeta(labelType)
	_, err = core.DecodeOperator(bad, labelType, labelCodec, core.NewOperator[label]())
	require.ErrorIs(t, err, core.ErrFromStringFailed)
}

func TestDecodeOperator_HermitianPolicy(t *testing.T) {
	p := core.Payload{
		Items: []core.Item{{Keys: []string{"aba"}, Value: cx(1, 1)}},
		Meta:  core.NewMeta(labelType),
	}
	_, err := core.DecodeOperator(p, labelType, labelCodec, core.NewHamiltonian[label]())
	require.ErrorIs(t, err, core.ErrNonHermitianOperator)
	_, err = core.DecodeOperator(p, labelType, labelCodec, core.NewOperator[label]())
	require.NoError(t, err)
}

func TestSystem_RoundTrip(t *testing.T) {
	sys := core.MustNewSystem(core.NewOperator[label](), labelShape, 4)
	require.NoError(t, sys.AddOperatorProduct(LabelAB, cx(1, 0)))

	data, err := core.Marshal(core.YAML, core.EncodeSystem(sys, labelType, labelCodec))
	require.NoError(t, err)

	var p core.SystemPayload
	require.NoError(t, core.Unmarshal(core.YAML, data, &p))
	require.NotNil(t, p.Bounds[0])
	require.Equal(t, 4, *p.Bounds[0])

	proto := core.MustNewSystem(core.NewOperator[label](), labelShape, core.Unbounded)
	back, err := core.DecodeSystem(p, labelType, labelCodec, proto)
	require.NoError(t, err)
	require.True(t, sys.Equal(back))

	// a bound smaller than the content is rejected
	two := 2
	require.NoError(t, sys.AddOperatorProduct(LabelABA, cx(1, 0)))
	p = core.EncodeSystem(sys, labelType, labelCodec)
	p.Bounds[0] = &two
	_, err = core.DecodeSystem(p, labelType, labelCodec, proto)
	require.ErrorIs(t, err, core.ErrNumberSpinsExceeded)
}

func TestCodecByName(t *testing.T) {
	for _, name := range []string{"json", "yaml", "msgpack"} {
		c, err := core.CodecByName(name)
		require.NoError(t, err)
		require.Equal(t, name, c.Name())
	}
	_, err := core.CodecByName("xml")
	require.ErrorIs(t, err, core.ErrUnknownCodec)
}
