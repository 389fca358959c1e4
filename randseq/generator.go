// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// generator.go — a validated, reusable Generate configuration.

package randseq

import (
	"slices"

	"github.com/sirupsen/logrus"
)

// Generator draws sequences over a fixed alphabet, stop symbol and range.
// Parameters are validated once in NewGenerator; Next cannot fail.
// A Generator is not safe for concurrent use.
type Generator[S comparable] struct {
	alphabet []S
	stop     S
	lenRange Range
	p        float64
	rng      Chooser
	log      logrus.FieldLogger
}

// NewGenerator validates alphabet, stop and the configured range and returns
// a Generator. The alphabet is copied.
//
// Errors: the same sentinels as Generate (except ErrNeedRandSource, which
// cannot happen since a default RNG is always resolved).
func NewGenerator[S comparable](alphabet []S, stop S, opts ...Option) (*Generator[S], error) {
	cfg := newConfig(opts...)
	if err := validateParams(methodNewGenerator, alphabet, stop, cfg.lenRange); err != nil {
		return nil, err
	}

	g := &Generator[S]{
		alphabet: slices.Clone(alphabet),
		stop:     stop,
		lenRange: cfg.lenRange,
		p:        StopProbability(alphabet, stop),
		rng:      cfg.rng,
		log:      cfg.logger,
	}
	g.log.WithFields(logrus.Fields{
		"alphabet_len": len(g.alphabet),
		"stop_p":       g.p,
		"range":        g.lenRange.String(),
		"empty_range":  g.lenRange.Empty(),
	}).Debug("randseq: generator ready")

	return g, nil
}

// Next draws one sequence.
func (g *Generator[S]) Next() []S {
	seq := generate(g.rng, g.alphabet, g.stop, g.lenRange)
	g.log.WithField("len", len(seq)).Debug("randseq: sequence drawn")
	return seq
}

// Range returns the configured length range.
func (g *Generator[S]) Range() Range { return g.lenRange }

// StopProbability returns the stop-symbol frequency of the alphabet.
func (g *Generator[S]) StopProbability() float64 { return g.p }

// ExpectedLength returns the analytic mean length of Next.
func (g *Generator[S]) ExpectedLength() float64 {
	return ExpectedLength(g.p, g.lenRange)
}
