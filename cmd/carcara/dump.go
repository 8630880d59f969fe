package main

import (
	"go/token"

	"github.com/spf13/cobra"

	"github.com/bernborgess/carcara/smtlib"
)

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [file]",
		Short: "Parse a script and print it back as SMT-LIB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fset := token.NewFileSet()
			script, err := smtlib.ParseFile(fset, args[0])
			if err != nil {
				return err
			}
			return smtlib.WriteScript(cmd.OutOrStdout(), script)
		},
	}
}
