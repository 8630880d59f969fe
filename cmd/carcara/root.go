package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bernborgess/carcara/config"
)

// errNonconforming signals a verdict contradicting a declared status or
// an --expect override. It maps to exit code 1; parse and sort errors
// surface as ordinary errors and exit 2.
var errNonconforming = errors.New("verdicts do not conform")

type app struct {
	cfg config.Config
	log zerolog.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:           "carcara",
		Short:         "Check SMT-LIB benchmarks for equality with uninterpreted functions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := zerolog.InfoLevel
			if verbose || cfg.Verbose {
				level = zerolog.DebugLevel
			}
			a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(runCmd(a), dumpCmd(), statsCmd(a))
	cmd.AddCommand(extraCmds...)
	return cmd
}

// extraCmds holds commands contributed by build-tagged files.
var extraCmds []*cobra.Command

func defaultConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir + "/carcara/config.yaml"
	}
	return "carcara.yaml"
}
