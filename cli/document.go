// SPDX-License-Identifier: MIT
//
// File: document.go
// Role: Reading payload files of any encoding and shape.
// Policy:
//   - The codec follows the file extension; unknown extensions read as JSON.
//   - The shape is probed from the top-level fields: "system" marks an
//     open system, "operator" a bounded system, anything else an operator.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/qalgebra/core"
)

type shape int

const (
	operatorShape shape = iota
	systemShape
	openSystemShape
)

// document is one decoded payload file.
type document struct {
	codec    core.Codec
	shape    shape
	operator core.Payload
	system   core.SystemPayload
	open     core.OpenSystemPayload
}

// probe reads only the fields that tell the shapes apart.
type probe struct {
	Operator any `json:"operator" yaml:"operator" msgpack:"operator"`
	System   any `json:"system" yaml:"system" msgpack:"system"`
}

// codecFor picks the codec of path by extension.
func codecFor(path string) core.Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return core.YAML
	case ".msgpack", ".mp":
		return core.MsgPack
	default:
		return core.JSON
	}
}

// readDocument loads and decodes path.
func readDocument(path string) (document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document{}, WrapExitError(ExitCommandError, "read", err)
	}
	d := document{codec: codecFor(path)}
	var pr probe
	if err = core.Unmarshal(d.codec, data, &pr); err != nil {
		return d, WrapExitError(ExitCommandError, path, err)
	}
	switch {
	case pr.System != nil:
		d.shape = openSystemShape
		err = core.Unmarshal(d.codec, data, &d.open)
	case pr.Operator != nil:
		d.shape = systemShape
		err = core.Unmarshal(d.codec, data, &d.system)
	default:
		err = core.Unmarshal(d.codec, data, &d.operator)
	}
	if err != nil {
		return d, WrapExitError(ExitCommandError, path, err)
	}
	return d, nil
}

// readOperator loads path and requires an operator payload.
func readOperator(path string) (core.Payload, error) {
	d, err := readDocument(path)
	if err != nil {
		return core.Payload{}, err
	}
	if d.shape != operatorShape {
		return core.Payload{}, NewExitError(ExitCommandError, fmt.Sprintf("%s: not an operator payload", path))
	}
	return d.operator, nil
}

// value returns the payload held by d.
func (d document) value() any {
	switch d.shape {
	case systemShape:
		return d.system
	case openSystemShape:
		return d.open
	default:
		return d.operator
	}
}

// typeName returns the type name of the outermost metadata block.
func (d document) typeName() string {
	switch d.shape {
	case systemShape:
		return d.system.Operator.Meta.TypeName
	case openSystemShape:
		return d.open.Meta.TypeName
	default:
		return d.operator.Meta.TypeName
	}
}
