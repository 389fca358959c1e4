// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// shuffle.go — in-place uniform permutation over a Chooser.

package randseq

import "fmt"

// Shuffle permutes xs uniformly in place: position i swaps with a uniform
// pick among positions i..n-1.
func Shuffle[T any](src Chooser, xs []T) error {
	if src == nil {
		return fmt.Errorf("%s: %w", methodShuffle, ErrNeedRandSource)
	}

	n := len(xs)
	for i := 0; i < n; i++ {
		j := i + src.Intn(n-i)
		xs[i], xs[j] = xs[j], xs[i]
	}
	return nil
}
