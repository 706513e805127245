// SPDX-License-Identifier: MIT
// Package calculator: wire encodings of Float.
//
// A numeric Float is a number on the wire, a symbolic one is a string.
// The same rule holds for every codec so that payloads convert losslessly
// between JSON, YAML and MessagePack.

package calculator

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	if f.expr != "" {
		return json.Marshal(f.expr)
	}
	return json.Marshal(f.num)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("Float.UnmarshalJSON: %w", err)
		}
		*f = NewSymbol(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("Float.UnmarshalJSON: %w: %v", ErrBadValue, err)
	}
	*f = NewFloat(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Float) MarshalYAML() (interface{}, error) {
	if f.expr != "" {
		return f.expr, nil
	}
	return f.num, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Float) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("Float.UnmarshalYAML: %w: node kind %d", ErrBadValue, value.Kind)
	}
	switch value.ShortTag() {
	case "!!int", "!!float":
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("Float.UnmarshalYAML: %w", err)
		}
		*f = NewFloat(v)
	default:
		*f = NewSymbol(value.Value)
	}
	return nil
}

var (
	_ msgpack.CustomEncoder = Float{}
	_ msgpack.CustomDecoder = (*Float)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (f Float) EncodeMsgpack(enc *msgpack.Encoder) error {
	if f.expr != "" {
		return enc.EncodeString(f.expr)
	}
	return enc.EncodeFloat64(f.num)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (f *Float) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInterface()
	if err != nil {
		return fmt.Errorf("Float.DecodeMsgpack: %w", err)
	}
	switch x := v.(type) {
	case string:
		*f = NewSymbol(x)
	case float64:
		*f = NewFloat(x)
	case float32:
		*f = NewFloat(float64(x))
	case int8:
		*f = NewFloat(float64(x))
	case int16:
		*f = NewFloat(float64(x))
	case int32:
		*f = NewFloat(float64(x))
	case int64:
		*f = NewFloat(float64(x))
	case uint8:
		*f = NewFloat(float64(x))
	case uint16:
		*f = NewFloat(float64(x))
	case uint32:
		*f = NewFloat(float64(x))
	case uint64:
		*f = NewFloat(float64(x))
	default:
		return fmt.Errorf("Float.DecodeMsgpack: %w: %T", ErrBadValue, v)
	}
	return nil
}
