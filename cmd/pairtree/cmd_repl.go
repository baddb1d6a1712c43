package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pairtree/format"
	"github.com/dhamidi/pairtree/repl"
)

func newReplCmd() *cobra.Command {
	var prompt string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read expressions from stdin and print each tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := repl.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(),
				repl.WithPrompt(prompt),
				repl.WithFormat(outputFormat),
			)
			if err != nil {
				return err
			}
			return session.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", repl.DefaultPrompt, "prompt printed before each line (empty to disable)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")

	return cmd
}
