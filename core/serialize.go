// SPDX-License-Identifier: MIT
//
// File: serialize.go
// Role: Versioned wire format shared by every container.
// Wire shape:
//   - operator: {"items": [[key, re, im], ...], "serialisation_meta": {...}}
//   - noise:    {"items": [[left, right, re, im], ...], "serialisation_meta": {...}}
//   - system:   {"bounds": [n|null, ...], "operator": <operator payload>}
//   - open:     {"system": <system>, "noise": <system>, "serialisation_meta": {...}}
// Policy:
//   - CheckMeta runs before a single item is parsed.
//   - Decoding never mutates its prototype; it fills an EmptyClone.
// AI-HINT (file):
//   - Item encodes as a flat array in every codec; see codec.go for the
//     three encoders.

package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qalgebra/calculator"
)

// Version is the library version written into every payload.
const Version = "2.0.0"

// MinVersion is the oldest library version able to read payloads written
// by this one.
var MinVersion = [3]int{2, 0, 0}

// Meta is the serialisation metadata block.
type Meta struct {
	TypeName   string `json:"type_name" yaml:"type_name" msgpack:"type_name"`
	MinVersion [3]int `json:"min_version" yaml:"min_version" msgpack:"min_version"`
	Version    string `json:"version" yaml:"version" msgpack:"version"`
}

// NewMeta returns the metadata this library writes for typeName.
func NewMeta(typeName string) Meta {
	return Meta{TypeName: typeName, MinVersion: MinVersion, Version: Version}
}

// CheckMeta reports whether a payload described by got can be read as
// typeName by this library.
//
// Errors:
//   - ErrTypeMismatch: got.TypeName != typeName (checked first).
//   - ErrVersionMismatch: got.MinVersion major differs from the library
//     major, or its minor is newer than the library minor.
func CheckMeta(typeName string, got Meta) error {
	if got.TypeName != typeName {
		return fmt.Errorf("CheckMeta: source %q, target %q: %w", got.TypeName, typeName, ErrTypeMismatch)
	}
	major, minor, err := semver(Version)
	if err != nil {
		Internalf("library version %q: %v", Version, err)
	}
	if got.MinVersion[0] != major || got.MinVersion[1] > minor {
		return fmt.Errorf("CheckMeta(%s): data needs %d.%d, library is %d.%d: %w",
			typeName, got.MinVersion[0], got.MinVersion[1], major, minor, ErrVersionMismatch)
	}
	return nil
}

// semver returns major and minor of "x.y.z[-pre]".
func semver(v string) (int, int, error) {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) != 3 {
		return 0, 0, fmt.Errorf("invalid semver %q", v)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if _, err = strconv.Atoi(strings.SplitN(parts[2], "-", 2)[0]); err != nil {
		return 0, 0, err
	}
	return major, minor, nil
}

// Item is one serialized entry: key texts followed by the value parts.
type Item struct {
	Keys  []string
	Value calculator.Complex
}

// Payload is the serialized form of an Operator.
//
// Subsystems is set only for containers built WithSubsystems.
type Payload struct {
	Items      []Item `json:"items" yaml:"items" msgpack:"items"`
	Subsystems []int  `json:"subsystems,omitempty" yaml:"subsystems,omitempty" msgpack:"subsystems,omitempty"`
	Meta       Meta   `json:"serialisation_meta" yaml:"serialisation_meta" msgpack:"serialisation_meta"`
}

// SystemPayload is the serialized form of a System: per-slot bounds (nil
// for unset) and the wrapped operator.
type SystemPayload struct {
	Bounds   []*int  `json:"bounds" yaml:"bounds" msgpack:"bounds"`
	Operator Payload `json:"operator" yaml:"operator" msgpack:"operator"`
}

// OpenSystemPayload is the serialized form of an OpenSystem.
type OpenSystemPayload struct {
	System SystemPayload `json:"system" yaml:"system" msgpack:"system"`
	Noise  SystemPayload `json:"noise" yaml:"noise" msgpack:"noise"`
	Meta   Meta          `json:"serialisation_meta" yaml:"serialisation_meta" msgpack:"serialisation_meta"`
}

// KeyCodec converts keys to and from their item texts.
type KeyCodec[K any] struct {
	Arity  int
	Format func(K) []string
	Parse  func([]string) (K, error)
}

// SingleKey builds the codec of operator keys from a text parser.
func SingleKey[K Key[K]](parse func(string) (K, error)) KeyCodec[K] {
	return KeyCodec[K]{
		Arity:  1,
		Format: func(k K) []string { return []string{k.String()} },
		Parse:  func(s []string) (K, error) { return parse(s[0]) },
	}
}

// PairKey builds the codec of noise keys from a text parser.
func PairKey[K Key[K]](parse func(string) (K, error)) KeyCodec[Pair[K]] {
	return KeyCodec[Pair[K]]{
		Arity:  2,
		Format: func(p Pair[K]) []string { return []string{p.Left.String(), p.Right.String()} },
		Parse: func(s []string) (Pair[K], error) {
			l, err := parse(s[0])
			if err != nil {
				return Pair[K]{}, err
			}
			r, err := parse(s[1])
			if err != nil {
				return Pair[K]{}, err
			}
			return Pair[K]{Left: l, Right: r}, nil
		},
	}
}

// EncodeOperator builds the payload of o.
func EncodeOperator[K Key[K]](o *Operator[K], typeName string, kc KeyCodec[K]) Payload {
	items := make([]Item, len(o.keys))
	for i := range o.keys {
		items[i] = Item{Keys: kc.Format(o.keys[i]), Value: o.vals[i]}
	}
	return Payload{Items: items, Subsystems: o.Subsystems(), Meta: NewMeta(typeName)}
}

// DecodeOperator checks the metadata of p, then folds its items into an
// EmptyClone of proto.
//
// Errors:
//   - CheckMeta errors, before any item is parsed.
//   - ErrFromStringFailed for an item with the wrong key count; parse and
//     Hermitian policy errors of individual items.
func DecodeOperator[K Key[K]](p Payload, typeName string, kc KeyCodec[K], proto *Operator[K]) (*Operator[K], error) {
	if err := CheckMeta(typeName, p.Meta); err != nil {
		return nil, err
	}
	return decodeItems(p.Items, kc, proto)
}

func decodeItems[K Key[K]](items []Item, kc KeyCodec[K], proto *Operator[K]) (*Operator[K], error) {
	out := proto.EmptyClone(len(items))
	for n, it := range items {
		if len(it.Keys) != kc.Arity {
			return nil, fmt.Errorf("item %d: %d keys, want %d: %w", n, len(it.Keys), kc.Arity, ErrFromStringFailed)
		}
		k, err := kc.Parse(it.Keys)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", n, err)
		}
		if err = out.AddOperatorProduct(k, it.Value); err != nil {
			return nil, fmt.Errorf("item %d: %w", n, err)
		}
	}
	return out, nil
}

// EncodeSystem builds the payload of s.
func EncodeSystem[K Key[K]](s *System[K], typeName string, kc KeyCodec[K]) SystemPayload {
	bounds := make([]*int, len(s.limits))
	for i, l := range s.limits {
		if l != Unbounded {
			v := l
			bounds[i] = &v
		}
	}
	return SystemPayload{Bounds: bounds, Operator: EncodeOperator(s.op, typeName, kc)}
}

// DecodeSystem rebuilds a System with the shape and operator kind of proto
// and the bounds of p.
func DecodeSystem[K Key[K]](p SystemPayload, typeName string, kc KeyCodec[K], proto *System[K]) (*System[K], error) {
	if err := CheckMeta(typeName, p.Operator.Meta); err != nil {
		return nil, err
	}
	return decodeSystem(p, kc, proto)
}

func decodeSystem[K Key[K]](p SystemPayload, kc KeyCodec[K], proto *System[K]) (*System[K], error) {
	if len(p.Bounds) != len(proto.shape.Slots) {
		return nil, fmt.Errorf("DecodeSystem: %d bounds, want %d: %w", len(p.Bounds), len(proto.shape.Slots), ErrMismatchedNumberSubsystems)
	}
	limits := make([]int, len(p.Bounds))
	for i, b := range p.Bounds {
		limits[i] = Unbounded
		if b != nil {
			limits[i] = *b
		}
	}
	op, err := decodeItems(p.Operator.Items, kc, proto.op)
	if err != nil {
		return nil, err
	}
	return NewSystem(op, proto.shape, limits...)
}

// EncodeOpenSystem builds the payload of o. The nested parts carry the
// type names of their operators.
func EncodeOpenSystem[S Key[S], N Key[N]](
	o *OpenSystem[S, N], typeName, systemType, noiseType string,
	sc KeyCodec[S], nc KeyCodec[Pair[N]],
) OpenSystemPayload {
	return OpenSystemPayload{
		System: EncodeSystem(o.system, systemType, sc),
		Noise:  EncodeSystem(o.noise, noiseType, nc),
		Meta:   NewMeta(typeName),
	}
}

// DecodeOpenSystem checks all three metadata blocks before building either part.
func DecodeOpenSystem[S Key[S], N Key[N]](
	p OpenSystemPayload, typeName, systemType, noiseType string,
	sc KeyCodec[S], nc KeyCodec[Pair[N]], proto *OpenSystem[S, N],
) (*OpenSystem[S, N], error) {
	if err := CheckMeta(typeName, p.Meta); err != nil {
		return nil, err
	}
	if err := CheckMeta(systemType, p.System.Operator.Meta); err != nil {
		return nil, err
	}
	if err := CheckMeta(noiseType, p.Noise.Operator.Meta); err != nil {
		return nil, err
	}
	sys, err := decodeSystem(p.System, sc, proto.system)
	if err != nil {
		return nil, err
	}
	noise, err := decodeSystem(p.Noise, nc, proto.noise)
	if err != nil {
		return nil, err
	}
	return GroupOpenSystem(sys, noise)
}
