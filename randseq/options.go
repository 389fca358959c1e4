// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// options.go — functional options for Generator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package randseq

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Option customizes a Generator before its first draw.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. The Generator keeps drawing from it,
// so sharing r between goroutines is the caller's problem.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("randseq: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange sets the length range (default Full()).
// Panics on negative bounds; empty ranges are accepted.
func WithRange(r Range) Option {
	if err := r.validate("WithRange"); err != nil {
		panic(err.Error())
	}
	return func(c *config) {
		c.lenRange = r
	}
}

// WithLogger routes the Generator's debug output to l.
// Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("randseq: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
