package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pairtree/format"
	"github.com/dhamidi/pairtree/syntax"
)

func newFmtCmd() *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite a file of expressions in canonical form",
		Long: `Check every line of a file and print it in canonical form.

If no file is provided, reads from stdin. Blank lines are kept.
Fails on the first malformed line.

Use -w to overwrite the file in place (requires a file argument).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			filename := "<stdin>"

			if len(args) == 0 {
				if fmtOverwrite {
					return fmt.Errorf("-w requires a file argument")
				}
				source, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				filename = args[0]
				source, err = os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			output, err := formatSource(filename, source)
			if err != nil {
				return err
			}

			if fmtOverwrite {
				return os.WriteFile(filename, output, 0644)
			}
			_, err = cmd.OutOrStdout().Write(output)
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}

// formatSource re-encodes each line of source in canonical form.
func formatSource(filename string, source []byte) ([]byte, error) {
	var out bytes.Buffer
	enc := format.NewSourceEncoder(&out)

	lines := bytes.Split(source, []byte("\n"))
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(line) == 0 {
			out.WriteByte('\n')
			continue
		}
		tree, err := syntax.ParseString(string(line))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
		if err := enc.Encode(tree); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
	}
	return out.Bytes(), nil
}
