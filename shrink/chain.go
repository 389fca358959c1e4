// SPDX-License-Identifier: MIT
// Package: propkit/shrink
//
// chain.go — concatenation of per-field candidate sequences.

package shrink

import (
	"iter"
	"slices"
)

// Chain yields every element of each sequence in turn. It is how a
// composite shrinker is assembled from one Field/MapField call per field.
func Chain[V any](seqs ...iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Collect drains seq into a slice.
func Collect[V any](seq iter.Seq[V]) []V {
	return slices.Collect(seq)
}
