// SPDX-License-Identifier: MIT
// Package: propkit/shrink
//
// mapfield.go — shrink a map field whose keys are derived from its values.
//
// Algorithm:
//   1) Extract the values of lens.Get(v) ordered by key (Go map order is
//      random; the slice shrinker needs a stable input).
//   2) For each candidate slice from s, rebuild map{key(e): e}.
//      Colliding keys resolve last-write-wins in candidate order.
//   3) Yield lens.Set(v, rebuilt).
//
// Guarantees:
//   • every entry of every candidate satisfies k == key(e);
//   • len(candidate) ≤ len(original) as long as s never grows slices
//     (Slices never does).

package shrink

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

// MapField shrinks the multiset of values of an ordered-key map field and
// rebuilds each candidate map with key(value) as the key.
// Panics on a zero Lens, nil key function or nil shrinker.
func MapField[V any, K constraints.Ordered, E any](
	v V,
	lens Lens[V, map[K]E],
	key func(E) K,
	s Shrinker[[]E],
) iter.Seq[V] {
	return MapFieldBy(v, lens, key, s, cmp.Compare[K])
}

// MapFieldBy is MapField for key types without a natural order; order
// fixes the sequence in which values reach s.
// Panics on a zero Lens or any nil function argument.
func MapFieldBy[V any, K comparable, E any](
	v V,
	lens Lens[V, map[K]E],
	key func(E) K,
	s Shrinker[[]E],
	order func(a, b K) int,
) iter.Seq[V] {
	lens.mustBeValid()
	if key == nil || s == nil || order == nil {
		panic("shrink: MapFieldBy with nil argument")
	}

	return func(yield func(V) bool) {
		m := lens.Get(v)
		values := make([]E, 0, len(m))
		for _, k := range slices.SortedFunc(maps.Keys(m), order) {
			values = append(values, m[k])
		}

		for candidate := range s.Shrink(values) {
			rebuilt := make(map[K]E, len(candidate))
			for _, e := range candidate {
				rebuilt[key(e)] = e
			}
			if !yield(lens.Set(v, rebuilt)) {
				return
			}
		}
	}
}
