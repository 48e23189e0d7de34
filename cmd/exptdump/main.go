/*
exptdump is a console utility inspecting experiment and build description
files. Usage is

	exptdump lex <file>
	exptdump parse [--filetype run|build] [--json] <file>
	exptdump trials <file>

lex prints the lexed token stream, parse prints the parsed document as YAML
(or JSON with --json), trials resolves an experiment file and prints the
flat trial table.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "exptdump",
		Short:         "Inspect experiment and build description files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newLexCmd(),
		newParseCmd(),
		newTrialsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
