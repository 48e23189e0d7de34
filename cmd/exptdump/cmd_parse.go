package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cbmkit/exptfile/parser"
)

func newParseCmd() *cobra.Command {
	var filetype string
	var asJson bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump the document",
		Long: `Parse an experiment or build file and dump the parsed document.

The document kind is read from the filetype header; use --filetype to force
one instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := lexerSource(args[0])
			if err != nil {
				return err
			}

			if filetype == "" {
				filetype, err = parser.Filetype(s)
				if err != nil {
					return err
				}
			}

			var document any
			switch filetype {
			case parser.RunFiletype:
				document, err = parser.Experiment(s)
			case parser.BuildFiletype:
				document, err = parser.Build(s)
			default:
				return fmt.Errorf("unknown filetype %q, expecting %q or %q",
					filetype, parser.RunFiletype, parser.BuildFiletype)
			}
			if err != nil {
				return err
			}

			var out []byte
			if asJson {
				out, err = json.MarshalIndent(document, "", "  ")
			} else {
				out, err = yaml.Marshal(document)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
			return nil
		},
	}

	cmd.Flags().StringVar(&filetype, "filetype", "", "Force the document kind: 'run' or 'build'")
	cmd.Flags().BoolVar(&asJson, "json", false, "Output JSON instead of YAML")
	return cmd
}
