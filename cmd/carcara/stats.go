package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bernborgess/carcara/runner"
)

func statsCmd(a *app) *cobra.Command {
	var useCache bool

	cmd := &cobra.Command{
		Use:   "stats [file...]",
		Short: "Solve scripts and report solver statistics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &runner.Runner{
				Jobs:    a.cfg.Jobs,
				Timeout: time.Duration(a.cfg.Timeout),
				Log:     a.log,
			}
			if useCache {
				cache, err := runner.OpenCache(a.cfg.Cache)
				if err != nil {
					return err
				}
				r.Cache = cache
				defer func() {
					if err := cache.Save(); err != nil {
						a.log.Warn().Err(err).Msg("cache save failed")
					}
				}()
			}

			outcomes, err := r.Run(cmd.Context(), args)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tCHECKS\tASSERTS\tTERMS\tMERGES\tELAPSED")
			for _, o := range outcomes {
				if o.Err != nil {
					fmt.Fprintf(w, "%s\terror: %v\n", o.Path, o.Err)
					continue
				}
				if o.Cached {
					fmt.Fprintf(w, "%s\t%d\t-\t-\t-\tcached\n", o.Path, len(o.Summary.Verdicts))
					continue
				}
				st := o.Summary.Stats
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%v\n",
					o.Path, st.Checks, st.Assertions, st.Terms, st.Merges, st.Elapsed.Round(time.Microsecond))
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&useCache, "cache", false, "memoize verdicts by script content")
	return cmd
}
