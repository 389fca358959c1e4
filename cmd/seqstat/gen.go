package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type genCmdOptions struct {
	gen   genOptions
	count int
}

func newGenCommand(c *cli) *cobra.Command {
	var opts genCmdOptions

	cmd := &cobra.Command{
		Use:   "gen [OPTIONS]",
		Short: "Print generated sequences, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(c, opts)
		},
	}

	flags := cmd.Flags()
	opts.gen.installFlags(flags)
	flags.IntVarP(&opts.count, "count", "n", 10, "Number of sequences to print")

	return cmd
}

func runGen(c *cli, opts genCmdOptions) error {
	if opts.count < 0 {
		return fmt.Errorf("seqstat: --count must not be negative, got %d", opts.count)
	}
	g, err := opts.gen.newGenerator(c)
	if err != nil {
		return err
	}

	for i := 0; i < opts.count; i++ {
		if _, err := fmt.Fprintf(c.out, "%s\n", g.Next()); err != nil {
			return err
		}
	}
	return nil
}
