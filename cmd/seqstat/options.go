package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/propkit/randseq"
	"github.com/spf13/pflag"
)

var errStopSymbol = errors.New("seqstat: --stop must be exactly one byte")

// genOptions are the generator flags shared by sample and gen.
type genOptions struct {
	alphabet  string
	stop      string
	min       int
	max       int
	inclusive bool
	seed      int64
}

func (o *genOptions) installFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.alphabet, "alphabet", "a", "ab.", "Symbols to draw from; repeats raise their weight")
	flags.StringVarP(&o.stop, "stop", "s", ".", "Stop symbol (one byte)")
	flags.IntVar(&o.min, "min", 0, "Lower length bound (inclusive)")
	flags.IntVar(&o.max, "max", -1, "Upper length bound; negative leaves it open")
	flags.BoolVar(&o.inclusive, "inclusive", false, "Treat --max as inclusive")
	flags.Int64Var(&o.seed, "seed", randseq.DefaultSeed, "RNG seed")
}

// lengthRange maps the bound flags onto a randseq.Range.
func (o *genOptions) lengthRange() randseq.Range {
	switch {
	case o.max < 0:
		return randseq.From(o.min)
	case o.inclusive:
		return randseq.Between(o.min, o.max)
	default:
		return randseq.Span(o.min, o.max)
	}
}

func (o *genOptions) newGenerator(c *cli) (*randseq.Generator[byte], error) {
	if len(o.stop) != 1 {
		return nil, fmt.Errorf("%q: %w", o.stop, errStopSymbol)
	}
	if o.min < 0 {
		return nil, fmt.Errorf("--min %d: %w", o.min, randseq.ErrInvalidRange)
	}

	return randseq.NewGenerator([]byte(o.alphabet), o.stop[0],
		randseq.WithSeed(o.seed),
		randseq.WithRange(o.lengthRange()),
		randseq.WithLogger(c.log),
	)
}
