package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pairtree/format"
	"github.com/dhamidi/pairtree/repl"
	"github.com/dhamidi/pairtree/syntax"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [expr...]",
		Short: "Parse expressions and print their trees",
		Long: `Parse each argument as an expression and print its tree.

If no arguments are given, reads one expression per line from stdin.
Errors are reported on stderr and do not stop the remaining inputs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			failed, total := 0, 0
			handle := func(input string) error {
				total++
				tree, err := syntax.ParseString(input)
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", input, err)
					return nil
				}
				log.Debugf("parsed %q: depth %d, %d leaves", input, syntax.Depth(tree), len(syntax.Leaves(tree)))
				if err := enc.Encode(tree); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				return nil
			}

			if len(args) > 0 {
				for _, input := range args {
					if err := handle(input); err != nil {
						return err
					}
				}
			} else {
				lines := repl.NewLineReader(cmd.InOrStdin())
				for lineNo := 1; ; lineNo++ {
					line, err := lines.ReadLine()
					if err == io.EOF {
						break
					}
					if errors.Is(err, repl.ErrLineTooLong) {
						total++
						failed++
						fmt.Fprintf(cmd.ErrOrStderr(), "<stdin>:%d: %v\n", lineNo, err)
						continue
					}
					if err != nil {
						return fmt.Errorf("read stdin: %w", err)
					}
					if err := handle(strings.TrimSuffix(line, "\r")); err != nil {
						return err
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed to parse", failed, total)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}
