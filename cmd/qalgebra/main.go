// SPDX-License-Identifier: MIT

// Command qalgebra works on serialized quantum operators from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/qalgebra/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qalgebra:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
