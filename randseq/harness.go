// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// harness.go — adapters for property-testing harnesses (gopter, rapid).
//
// Both adapters validate at construction and panic on invalid parameters,
// the same way option constructors do: a bad generator is a programming
// error in the test, not a runtime condition.

package randseq

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"pgregory.net/rapid"
)

// Gen returns a gopter generator of biased sequences. Entropy comes from
// the round's GenParameters, so properties replay from their seed.
//
// Shrinking drops runs of symbols (never rewrites one), and every shrink
// candidate still satisfies r.
//
// Panics on an empty alphabet, negative bounds or a non-terminating setup.
func Gen[S comparable](alphabet []S, stop S, r Range) gopter.Gen {
	if err := validateParams(methodGen, alphabet, stop, r); err != nil {
		panic(err.Error())
	}

	inRange := func(v interface{}) bool {
		seq, ok := v.([]S)
		return ok && r.Contains(len(seq))
	}
	shrinker := func(v interface{}) gopter.Shrink {
		return gen.SliceShrinker(gopter.NoShrinker)(v).Filter(inRange)
	}

	return func(params *gopter.GenParameters) *gopter.GenResult {
		seq := generate(FromGenParameters(params), alphabet, stop, r)
		result := gopter.NewGenResult(seq, shrinker)
		if !r.Empty() {
			result.Sieve = inRange
		}
		return result
	}
}

// Rapid returns a rapid generator of biased sequences. Each symbol is one
// rapid draw, so rapid's own minimizer shortens and simplifies failures.
//
// Panics on an empty alphabet, negative bounds or a non-terminating setup.
func Rapid[S comparable](alphabet []S, stop S, r Range) *rapid.Generator[[]S] {
	if err := validateParams(methodRapid, alphabet, stop, r); err != nil {
		panic(err.Error())
	}

	return rapid.Custom(func(t *rapid.T) []S {
		return generate(FromRapid(t), alphabet, stop, r)
	})
}
