// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// errors.go — sentinel errors for the randseq package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach context as "<Method>: <detail>: %w".
//   • Generation itself never panics. Option constructors and harness
//     adapters (Gen, Rapid) panic on programmer error.

package randseq

import "errors"

// ErrEmptyAlphabet indicates that the alphabet holds no symbols, so no
// uniform draw is possible.
var ErrEmptyAlphabet = errors.New("randseq: alphabet is empty")

// ErrNeedRandSource indicates that a nil Chooser was supplied.
var ErrNeedRandSource = errors.New("randseq: random source is required")

// ErrInvalidRange indicates a negative bound in a Range, or a lower side
// that no length can satisfy (Excluded(math.MaxInt)).
// Note that an empty range (lower side above upper side) is NOT an error.
var ErrInvalidRange = errors.New("randseq: negative length bound")

// ErrNoTermination indicates that generation could never finish with the
// given alphabet and range: stop probability 0 with no upper bound, or
// stop probability 1 with a positive lower bound.
var ErrNoTermination = errors.New("randseq: generation cannot terminate")
