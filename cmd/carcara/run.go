package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bernborgess/carcara/runner"
	"github.com/bernborgess/carcara/solver"
)

func runCmd(a *app) *cobra.Command {
	var jobs int
	var timeout time.Duration
	var expect string

	cmd := &cobra.Command{
		Use:   "run [file...]",
		Short: "Solve SMT-LIB scripts and print their verdicts",
		Long: `Run parses each script and answers every check-sat with sat, unsat,
or unknown. A verdict that contradicts the script's declared
(set-info :status ...), or an --expect override, fails the run.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if expect != "" && expect != "sat" && expect != "unsat" && expect != "unknown" {
				return fmt.Errorf("--expect must be sat, unsat, or unknown, got %q", expect)
			}
			if jobs == 0 {
				jobs = a.cfg.Jobs
			}
			if timeout == 0 {
				timeout = time.Duration(a.cfg.Timeout)
			}

			r := &runner.Runner{Jobs: jobs, Timeout: timeout, Log: a.log}
			outcomes, err := r.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			errored, mismatched := 0, 0
			for _, o := range outcomes {
				if o.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %v\n", o.Path, o.Err)
					errored++
					continue
				}
				line, ok := verdictLine(o.Summary, expect)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", o.Path, line)
				if !ok {
					mismatched++
				}
			}
			if errored > 0 {
				a.log.Error().Int("errored", errored).Int("total", len(outcomes)).Msg("run failed")
				return fmt.Errorf("%d of %d scripts failed to solve", errored, len(outcomes))
			}
			if mismatched > 0 {
				a.log.Error().Int("mismatched", mismatched).Int("total", len(outcomes)).Msg("run failed")
				return errNonconforming
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "concurrent scripts (default from config)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-script timeout (default from config)")
	cmd.Flags().StringVar(&expect, "expect", "", "verdict every check-sat must produce")
	return cmd
}

// verdictLine formats one summary and reports whether it conforms.
func verdictLine(s *solver.Summary, expect string) (string, bool) {
	if len(s.Verdicts) == 0 {
		return "no check-sat", true
	}
	var parts []string
	ok := true
	for _, v := range s.Verdicts {
		parts = append(parts, v.String())
		if expect != "" && v.String() != expect {
			ok = false
		}
	}
	if expect == "" {
		ok = s.Conforms()
	}
	line := strings.Join(parts, " ")
	if !ok {
		want := expect
		if want == "" {
			want = s.Status
		}
		line += fmt.Sprintf(" (want %s)", want)
	}
	return line, ok
}
