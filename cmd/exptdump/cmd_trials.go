package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbmkit/exptfile/lexer"
	"github.com/cbmkit/exptfile/parser"
	"github.com/cbmkit/exptfile/source"
	"github.com/cbmkit/exptfile/trials"
)

func newTrialsCmd() *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "trials <file>",
		Short: "Resolve an experiment file into its flat trial table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := parser.ExperimentFile(args[0])
			if err != nil {
				return err
			}

			if countOnly {
				n, err := trials.CountTrials(document.Hierarchy)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			}

			table, err := trials.Resolve(document.Hierarchy)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d trials\n%s", table.NumTrials(), table)
			return nil
		},
	}

	cmd.Flags().BoolVar(&countOnly, "count", false, "Print only the total trial count")
	return cmd
}

func lexerSource(path string) (*source.Source, []lexer.Line, error) {
	return lexer.TokenizeFile(path)
}
