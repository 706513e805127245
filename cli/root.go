// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: Root command, global flags and the per-run settings shared by
//       every subcommand.

package cli

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml" | "msgpack"
	Config  string // path of a qalgebra.yaml file, optional

	cfg Config
	log zerolog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml", "msgpack"}

// NewRootCommand creates the root command of the qalgebra CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{cfg: DefaultConfig(), log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "qalgebra",
		Short: "Quantum operator algebra on files",
		Long: `Parse, multiply, truncate and Jordan-Wigner-transform operators stored
as serialized payloads (JSON, YAML or MessagePack).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", DefaultFormat, "output format (text|json|yaml|msgpack)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path of a YAML config file")

	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewMultiplyCommand(opts))
	cmd.AddCommand(NewTruncateCommand(opts))
	cmd.AddCommand(NewJordanWignerCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}

// setup loads the config file, applies it under the flags and builds the
// logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	if o.Config != "" {
		cfg, err := LoadConfig(o.Config)
		if err != nil {
			return WrapExitError(ExitCommandError, "config", err)
		}
		o.cfg = cfg
		if !cmd.Flags().Changed("format") {
			o.Format = cfg.Format
		}
	}
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	level := o.cfg.LogLevel
	if o.Verbose {
		level = "debug"
	}
	log, err := NewLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return WrapExitError(ExitCommandError, "logger", err)
	}
	o.log = log.With().Str("command", cmd.Name()).Logger()
	return nil
}
