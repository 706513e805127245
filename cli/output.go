// SPDX-License-Identifier: MIT
//
// File: output.go
// Role: Exit codes and the rendering of results in the chosen format.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/qalgebra/core"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // the algebra rejected the input (layout, Hermiticity, ...)
	ExitCommandError = 2 // unreadable file, unknown type, bad flag or config
)

// ExitError carries the exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error // optional
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error; ExitFailure if err is
// not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// texter is implemented by results with a human-readable form.
type texter interface {
	Text() string
}

// emit writes v to w in format. Payloads render as "Type{\nkey: value,\n}"
// in text mode; other values must implement texter.
func emit(w io.Writer, format string, v any) error {
	if format == "text" {
		_, err := io.WriteString(w, renderText(v))
		return err
	}
	codec, err := core.CodecByName(format)
	if err != nil {
		return WrapExitError(ExitCommandError, "output", err)
	}
	data, err := core.Marshal(codec, v)
	if err != nil {
		return WrapExitError(ExitFailure, "output", err)
	}
	if codec == core.JSON {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

func renderText(v any) string {
	switch p := v.(type) {
	case core.Payload:
		return renderOperator(p.Meta.TypeName, p) + "\n"
	case core.SystemPayload:
		return renderOperator(p.Operator.Meta.TypeName+"("+renderBounds(p.Bounds)+")", p.Operator) + "\n"
	case core.OpenSystemPayload:
		return p.Meta.TypeName + "{\nSystem: " + renderOperator(renderBounds(p.System.Bounds), p.System.Operator) +
			"\nNoise: " + renderOperator(renderBounds(p.Noise.Bounds), p.Noise.Operator) + "\n}\n"
	case texter:
		return p.Text()
	default:
		return fmt.Sprintln(v)
	}
}

// renderOperator mirrors core.Operator.Format over payload items.
func renderOperator(name string, p core.Payload) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString("{\n")
	for _, it := range p.Items {
		b.WriteString(strings.Join(it.Keys, core.PairSeparator))
		b.WriteString(": ")
		b.WriteString(it.Value.String())
		b.WriteString(",\n")
	}
	b.WriteString("}")
	return b.String()
}

func renderBounds(bounds []*int) string {
	parts := make([]string, len(bounds))
	for i, n := range bounds {
		if n == nil {
			parts[i] = "-"
			continue
		}
		parts[i] = strconv.Itoa(*n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
