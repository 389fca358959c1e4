// SPDX-License-Identifier: MIT
// Package: propkit/shrink
//
// field.go — shrink exactly one field of a composite value.
//
// Guarantees for every candidate c of Field(v, lens, s):
//   • lens.Get(c) is a direct candidate of s.Shrink(lens.Get(v)).
//   • c equals v everywhere else (it is lens.Set on a copy of v).
//   • Candidates come in s's order, one per field candidate; nothing is
//     filtered or deduplicated.

package shrink

import "iter"

// Field returns the candidates of v obtained by replacing the field
// addressed by lens with each of its own shrink candidates under s.
// Panics on a zero Lens or nil shrinker.
func Field[V, F any](v V, lens Lens[V, F], s Shrinker[F]) iter.Seq[V] {
	lens.mustBeValid()
	if s == nil {
		panic("shrink: Field with nil shrinker")
	}

	return func(yield func(V) bool) {
		for f := range s.Shrink(lens.Get(v)) {
			if !yield(lens.Set(v, f)) {
				return
			}
		}
	}
}
