// SPDX-License-Identifier: MIT
//
// File: commands.go
// Role: The subcommands: parse, multiply, truncate, jordan-wigner, convert
//       and stats.

package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qalgebra/core"
)

// lookupKind returns the registry entry of typeName.
func (o *RootOptions) lookupKind(typeName string) (operatorKind, error) {
	kind, ok := operatorKinds(o.log)[typeName]
	if !ok {
		return kind, NewExitError(ExitCommandError, fmt.Sprintf("unsupported payload type %q", typeName))
	}
	return kind, nil
}

// loadOperator reads path and resolves its registry entry.
func (o *RootOptions) loadOperator(path string) (core.Payload, operatorKind, error) {
	p, err := readOperator(path)
	if err != nil {
		return p, operatorKind{}, err
	}
	o.log.Debug().Str("file", path).Str("type", p.Meta.TypeName).Int("items", len(p.Items)).Msg("read operator")
	kind, err := o.lookupKind(p.Meta.TypeName)
	return p, kind, err
}

func unsupported(op, typeName string) error {
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: not supported for %s", op, typeName))
}

// NewParseCommand creates the parse command.
func NewParseCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <kind> <text>",
		Short: "Parse a product and print its canonical text and conjugate",
		Long:  "Parse a product of the given kind. Kinds: " + strings.Join(productKindNames(), ", ") + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse, ok := productKinds[args[0]]
			if !ok {
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown product kind %q", args[0]))
			}
			info, err := parse(args[1])
			if err != nil {
				opts.log.Debug().Str("kind", args[0]).Str("text", args[1]).Err(err).Msg("parse failed")
				return WrapExitError(ExitFailure, "parse", err)
			}
			info.Kind = args[0]
			return emit(cmd.OutOrStdout(), opts.Format, info)
		},
	}
}

// NewMultiplyCommand creates the multiply command.
func NewMultiplyCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "multiply <file-a> <file-b>",
		Short: "Multiply two operators of the same type",
		Long: `Multiply the operator in file-a by the operator in file-b (a·b).

The type is read from file-a; file-b must hold the same type. Products of
Hamiltonians are general operators.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, kind, err := opts.loadOperator(args[0])
			if err != nil {
				return err
			}
			if kind.multiply == nil {
				return unsupported("multiply", a.Meta.TypeName)
			}
			b, err := readOperator(args[1])
			if err != nil {
				return err
			}
			out, err := kind.multiply(a, b)
			if err != nil {
				return WrapExitError(ExitFailure, "multiply", err)
			}
			opts.log.Debug().Str("type", out.Meta.TypeName).Int("items", len(out.Items)).Msg("product")
			return emit(cmd.OutOrStdout(), opts.Format, out)
		},
	}
}

// NewTruncateCommand creates the truncate command.
func NewTruncateCommand(opts *RootOptions) *cobra.Command {
	var threshold float64

	cmd := &cobra.Command{
		Use:   "truncate <file>",
		Short: "Drop entries whose magnitude is below a threshold",
		Long: `Drop numeric entries whose magnitude is below the threshold. Symbolic
entries are always kept. Without --threshold the config value is used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = opts.cfg.Threshold
			}
			if threshold < 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("negative threshold %g", threshold))
			}
			p, kind, err := opts.loadOperator(args[0])
			if err != nil {
				return err
			}
			out, err := kind.truncate(p, threshold)
			if err != nil {
				return WrapExitError(ExitFailure, "truncate", err)
			}
			opts.log.Debug().Float64("threshold", threshold).Int("dropped", len(p.Items)-len(out.Items)).Msg("truncated")
			return emit(cmd.OutOrStdout(), opts.Format, out)
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", DefaultThreshold, "magnitude below which entries are dropped")

	return cmd
}

// NewJordanWignerCommand creates the jordan-wigner command.
func NewJordanWignerCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "jordan-wigner <file>",
		Short: "Map a fermionic operator onto qubits or a spin operator onto fermions",
		Long: `Apply the Jordan-Wigner transform. The direction follows the payload
type: fermionic operators, Hamiltonians and noise operators become their
qubit counterparts, and qubit, decoherence and plus-minus operators become
fermionic ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, kind, err := opts.loadOperator(args[0])
			if err != nil {
				return err
			}
			if kind.jordanWigner == nil {
				return unsupported("jordan-wigner", p.Meta.TypeName)
			}
			out, err := kind.jordanWigner(p)
			if err != nil {
				return WrapExitError(ExitFailure, "jordan-wigner", err)
			}
			return emit(cmd.OutOrStdout(), opts.Format, out)
		},
	}
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(opts *RootOptions) *cobra.Command {
	var to, output string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Re-encode a payload in another encoding",
		Long: `Re-encode an operator, system or open-system payload. The source
encoding follows the file extension (.json, .yaml/.yml, .msgpack/.mp).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := core.CodecByName(to)
			if err != nil {
				return WrapExitError(ExitCommandError, "convert", err)
			}
			d, err := readDocument(args[0])
			if err != nil {
				return err
			}
			data, err := core.Marshal(codec, d.value())
			if err != nil {
				return WrapExitError(ExitFailure, "convert", err)
			}
			opts.log.Debug().Str("type", d.typeName()).Str("from", d.codec.Name()).Str("to", codec.Name()).Msg("convert")
			if output == "" {
				if codec == core.JSON {
					data = append(data, '\n')
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err = os.WriteFile(output, data, 0o644); err != nil {
				return WrapExitError(ExitCommandError, "write", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "json", "target encoding (json|yaml|msgpack)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// StatsReport is the result of the stats command.
type StatsReport struct {
	Type        string  `json:"type" yaml:"type" msgpack:"type"`
	Len         int     `json:"len" yaml:"len" msgpack:"len"`
	Hermitian   bool    `json:"hermitian" yaml:"hermitian" msgpack:"hermitian"`
	NaturalKeys int     `json:"natural_keys" yaml:"natural_keys" msgpack:"natural_keys"`
	IdentityKey bool    `json:"identity_key" yaml:"identity_key" msgpack:"identity_key"`
	Symbolic    int     `json:"symbolic" yaml:"symbolic" msgpack:"symbolic"`
	MaxNorm     float64 `json:"max_norm" yaml:"max_norm" msgpack:"max_norm"`
}

// Text implements texter.
func (r StatsReport) Text() string {
	return fmt.Sprintf("type: %s\nlen: %d\nhermitian: %t\nnatural_keys: %d\nidentity_key: %t\nsymbolic: %d\nmax_norm: %g\n",
		r.Type, r.Len, r.Hermitian, r.NaturalKeys, r.IdentityKey, r.Symbolic, r.MaxNorm)
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize an operator payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, kind, err := opts.loadOperator(args[0])
			if err != nil {
				return err
			}
			st, err := kind.stats(p)
			if err != nil {
				return WrapExitError(ExitFailure, "stats", err)
			}
			return emit(cmd.OutOrStdout(), opts.Format, StatsReport{
				Type:        p.Meta.TypeName,
				Len:         st.Len,
				Hermitian:   st.Hermitian,
				NaturalKeys: st.NaturalKeys,
				IdentityKey: st.IdentityKey,
				Symbolic:    st.Symbolic,
				MaxNorm:     st.MaxNorm,
			})
		},
	}
}

// productKindNames lists the kinds accepted by parse, sorted.
func productKindNames() []string {
	names := make([]string, 0, len(productKinds))
	for name := range productKinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
