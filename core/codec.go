// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: The three wire encodings (JSON, YAML, MessagePack) and the flat
//       array form of Item in each of them.

package core

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qalgebra/calculator"
)

// Codec encodes payloads to bytes and back.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) Name() string                       { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

type msgpackCodec struct{}

func (msgpackCodec) Name() string                       { return "msgpack" }
func (msgpackCodec) Marshal(v any) ([]byte, error)      { return msgpack.Marshal(v) }
func (msgpackCodec) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// Registered codecs.
var (
	JSON    Codec = jsonCodec{}
	YAML    Codec = yamlCodec{}
	MsgPack Codec = msgpackCodec{}
)

// CodecByName returns the codec registered under name ("json", "yaml",
// "msgpack").
func CodecByName(name string) (Codec, error) {
	for _, c := range []Codec{JSON, YAML, MsgPack} {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("CodecByName(%q): %w", name, ErrUnknownCodec)
}

// flat returns the item as [keys..., re, im].
func (it Item) flat() []any {
	out := make([]any, 0, len(it.Keys)+2)
	for _, k := range it.Keys {
		out = append(out, k)
	}
	return append(out, it.Value.Re, it.Value.Im)
}

// MarshalJSON implements json.Marshaler.
func (it Item) MarshalJSON() ([]byte, error) { return json.Marshal(it.flat()) }

// UnmarshalJSON implements json.Unmarshaler.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("Item.UnmarshalJSON: %w", err)
	}
	if len(raw) < 3 {
		return fmt.Errorf("Item.UnmarshalJSON: %d elements: %w", len(raw), ErrFromStringFailed)
	}
	keys := make([]string, len(raw)-2)
	for i := range keys {
		if err := json.Unmarshal(raw[i], &keys[i]); err != nil {
			return fmt.Errorf("Item.UnmarshalJSON: key %d: %w", i, err)
		}
	}
	var v calculator.Complex
	if err := json.Unmarshal(raw[len(raw)-2], &v.Re); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[len(raw)-1], &v.Im); err != nil {
		return err
	}
	*it = Item{Keys: keys, Value: v}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (it Item) MarshalYAML() (interface{}, error) { return it.flat(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) < 3 {
		return fmt.Errorf("Item.UnmarshalYAML: want a sequence of at least 3: %w", ErrFromStringFailed)
	}
	n := len(node.Content)
	keys := make([]string, n-2)
	for i := range keys {
		// keys are plain text even when they look numeric
		keys[i] = node.Content[i].Value
	}
	var v calculator.Complex
	if err := node.Content[n-2].Decode(&v.Re); err != nil {
		return err
	}
	if err := node.Content[n-1].Decode(&v.Im); err != nil {
		return err
	}
	*it = Item{Keys: keys, Value: v}
	return nil
}

var (
	_ msgpack.CustomEncoder = Item{}
	_ msgpack.CustomDecoder = (*Item)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (it Item) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(len(it.Keys) + 2); err != nil {
		return err
	}
	for _, k := range it.Keys {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
	}
	if err := it.Value.Re.EncodeMsgpack(enc); err != nil {
		return err
	}
	return it.Value.Im.EncodeMsgpack(enc)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (it *Item) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 3 {
		return fmt.Errorf("Item.DecodeMsgpack: %d elements: %w", n, ErrFromStringFailed)
	}
	keys := make([]string, n-2)
	for i := range keys {
		if keys[i], err = dec.DecodeString(); err != nil {
			return err
		}
	}
	var v calculator.Complex
	if err = v.Re.DecodeMsgpack(dec); err != nil {
		return err
	}
	if err = v.Im.DecodeMsgpack(dec); err != nil {
		return err
	}
	*it = Item{Keys: keys, Value: v}
	return nil
}

// Marshal encodes v with c; errors carry the codec name.
func Marshal(c Codec, v any) ([]byte, error) {
	data, err := c.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal: %w", c.Name(), err)
	}
	return data, nil
}

// Unmarshal decodes data with c into v.
func Unmarshal(c Codec, data []byte, v any) error {
	if err := c.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: unmarshal: %w", c.Name(), err)
	}
	return nil
}
