package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbmkit/exptfile/lexer"
)

func newLexCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "lex <file>",
		Short: "Print the lexed token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, lines, err := lexer.TokenizeFile(args[0])
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), lexer.DumpLines(lines))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), lexer.DumpTokens(lexer.Lex(lines)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw tokens before classification")
	return cmd
}
