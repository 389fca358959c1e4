// Command seqstat samples the biased sequence generator and compares the
// observed length distribution with the analytic one.
//
//	seqstat sample --alphabet "ab." --stop . --samples 10000
//	seqstat sample --alphabet "abcd." --stop . --min 3 --max 5 --inclusive
//	seqstat gen --alphabet "xy." --stop . --max 8 -n 5
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// cli carries the streams and logger shared by every subcommand.
type cli struct {
	out io.Writer
	log *logrus.Logger
}

func newCLI(out, errOut io.Writer) *cli {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &cli{out: out, log: log}
}

func newSeqstatCommand(c *cli) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "seqstat COMMAND",
		Short:         "Sample biased random sequences and report their lengths",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			c.log.SetLevel(lvl)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info",
		`Logging level ("debug"|"info"|"warn"|"error"|"fatal")`)
	cmd.SetOut(c.out)
	cmd.AddCommand(
		newSampleCommand(c),
		newGenCommand(c),
	)

	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf("seqstat: '%s' is not a seqstat command.\nSee 'seqstat --help'", args[0])
}

func main() {
	c := newCLI(os.Stdout, os.Stderr)
	cmd := newSeqstatCommand(c)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
