package main

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/katalvlaran/propkit/randseq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type sampleOptions struct {
	gen     genOptions
	samples int
}

func newSampleCommand(c *cli) *cobra.Command {
	var opts sampleOptions

	cmd := &cobra.Command{
		Use:   "sample [OPTIONS]",
		Short: "Draw many sequences and tabulate their lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(c, opts)
		},
	}

	flags := cmd.Flags()
	opts.gen.installFlags(flags)
	flags.IntVarP(&opts.samples, "samples", "n", 10000, "Number of sequences to draw")

	return cmd
}

func runSample(c *cli, opts sampleOptions) error {
	if opts.samples <= 0 {
		return fmt.Errorf("seqstat: --samples must be positive, got %d", opts.samples)
	}
	g, err := opts.gen.newGenerator(c)
	if err != nil {
		return err
	}

	counts := make(map[int]int)
	total := 0
	for i := 0; i < opts.samples; i++ {
		n := len(g.Next())
		counts[n]++
		total += n
	}
	mean := float64(total) / float64(opts.samples)

	c.log.WithFields(logrus.Fields{
		"samples":  opts.samples,
		"distinct": len(counts),
	}).Info("sampling done")

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "range\t%s\n", g.Range())
	fmt.Fprintf(w, "stop p\t%.4f\n", g.StopProbability())
	fmt.Fprintf(w, "mean\t%.4f\n", mean)
	fmt.Fprintf(w, "expected\t%.4f\n", g.ExpectedLength())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "LEN\tCOUNT\tFREQ\tP")
	for _, n := range slices.Sorted(maps.Keys(counts)) {
		freq := float64(counts[n]) / float64(opts.samples)
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\n", n, counts[n], freq,
			randseq.LengthProbability(g.StopProbability(), g.Range(), n))
	}

	return w.Flush()
}
