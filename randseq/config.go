// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = rand.New(rand.NewSource(DefaultSeed))
//   • lenRange = Full()
//   • logger   = logrus logger writing to io.Discard

package randseq

import (
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// DefaultSeed seeds the Generator RNG when neither WithSeed nor WithRand
// is given.
const DefaultSeed int64 = 1

// config aggregates all Generator knobs.
type config struct {
	rng      *rand.Rand         // entropy for every draw
	lenRange Range              // admissible lengths
	logger   logrus.FieldLogger // debug sink
}

// newConfig applies opts in order (last wins) over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		lenRange: Full(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}

	return cfg
}

// discardLogger returns a logger that drops everything.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
