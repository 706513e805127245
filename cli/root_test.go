// SPDX-License-Identifier: MIT

package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qalgebra/cli"
)

// TestRootCommand VERIFIES: the command name and the registered subcommands.
func TestRootCommand(t *testing.T) {
	cmd := cli.NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "qalgebra", cmd.Use)

	for _, name := range []string{"parse", "multiply", "truncate", "jordan-wigner", "convert", "stats"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

// TestGlobalFlags VERIFIES: defaults and shorthands of the persistent flags.
func TestGlobalFlags(t *testing.T) {
	cmd := cli.NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

// TestCommandFlags VERIFIES: the per-command flags.
func TestCommandFlags(t *testing.T) {
	cmd := cli.NewRootCommand()

	truncate, _, err := cmd.Find([]string{"truncate"})
	require.NoError(t, err)
	threshold := truncate.Flags().Lookup("threshold")
	require.NotNil(t, threshold)
	assert.Equal(t, "1e-10", threshold.DefValue)

	convert, _, err := cmd.Find([]string{"convert"})
	require.NoError(t, err)
	output := convert.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "json", convert.Flags().Lookup("to").DefValue)
}

// TestInvalidFormat VERIFIES: an unknown --format is a command error.
func TestInvalidFormat(t *testing.T) {
	_, _, err := run(t, "parse", "pauli", "0X", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(err))
}

// TestVerboseLogging VERIFIES: --verbose sends debug lines to stderr only.
func TestVerboseLogging(t *testing.T) {
	out, errOut, err := run(t, "stats", fixture("qubit.json"), "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "read operator")
	assert.NotContains(t, out, "read operator")

	_, errOut, err = run(t, "stats", fixture("qubit.json"))
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

// TestGetExitCode VERIFIES: plain errors map to ExitFailure.
func TestGetExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitFailure, cli.GetExitCode(assert.AnError))
	assert.Equal(t, cli.ExitCommandError, cli.GetExitCode(cli.NewExitError(cli.ExitCommandError, "bad")))
	wrapped := cli.WrapExitError(cli.ExitFailure, "outer", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, "outer: "+assert.AnError.Error(), wrapped.Error())
}
