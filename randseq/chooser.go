// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// chooser.go — the "pick one element uniformly" capability and its adapters.
//
// Every adapter consumes exactly one Intn call per draw, so the same
// entropy stream always produces the same sequence.

package randseq

import (
	"math/rand"

	"github.com/google/gofuzz/bytesource"
	"github.com/leanovate/gopter"
	"pgregory.net/rapid"
)

// Chooser picks a uniform index in [0, n). n is always ≥ 1.
// *rand.Rand satisfies Chooser.
type Chooser interface {
	Intn(n int) int
}

// FromSource wraps a rand.Source into a Chooser.
// Panics on nil.
func FromSource(src rand.Source) Chooser {
	if src == nil {
		panic("randseq: FromSource(nil)")
	}
	return rand.New(src)
}

// FromGenParameters draws from the Rng of a gopter generation round, so a
// sequence generated inside a gopter.Gen is reproducible from the property
// seed.
// Panics on nil parameters or a nil Rng.
func FromGenParameters(params *gopter.GenParameters) Chooser {
	if params == nil || params.Rng == nil {
		panic("randseq: FromGenParameters without Rng")
	}
	return params.Rng
}

// rapidChooser turns every pick into a rapid draw.
type rapidChooser struct {
	t *rapid.T
}

func (c rapidChooser) Intn(n int) int {
	return rapid.IntRange(0, n-1).Draw(c.t, "pick")
}

// FromRapid draws indices through rapid. rapid minimizes draws toward 0,
// so failing cases shrink toward repetitions of the first alphabet symbol.
// Panics on nil.
func FromRapid(t *rapid.T) Chooser {
	if t == nil {
		panic("randseq: FromRapid(nil)")
	}
	return rapidChooser{t: t}
}

// FromBytes derives all randomness from data, falling back to a source
// seeded by data once the bytes are consumed. Intended for native fuzz
// targets: the same corpus entry always yields the same sequence.
func FromBytes(data []byte) Chooser {
	return rand.New(bytesource.New(data))
}
