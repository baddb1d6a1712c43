package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/pairtree/syntax"
)

func newGrammarCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the expression grammar in EBNF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if check {
				if err := syntax.VerifyGrammar(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), syntax.Grammar)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify the grammar instead of printing it")

	return cmd
}
