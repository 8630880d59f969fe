//go:build z3

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bernborgess/carcara/internal/z3check"
)

func init() {
	extraCmds = append(extraCmds, z3checkCmd())
}

func z3checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "z3check [file...]",
		Short: "Cross-check verdicts against Z3",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if err := z3check.Verify(path); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed > 0 {
				return errNonconforming
			}
			return nil
		},
	}
}
