// SPDX-License-Identifier: MIT
// Package: propkit/shrink
//
// builtin.go — ready-made shrinkers over gopter's gen package.
//
// Orders (inherited from gopter):
//   • integers: 0, then halving distances toward v, each with its negation
//     for signed types (10 ⇒ 0, 5, -5, 8, -8, 9, -9).
//   • strings:  removal of rune chunks.
//   • slices:   the empty slice first, then chunk removal, then one element
//     at a time shrunk by the element shrinker.

package shrink

import (
	"iter"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"golang.org/x/exp/constraints"
)

// Ints shrinks any signed integer type toward zero.
func Ints[T constraints.Signed]() Shrinker[T] {
	return ShrinkerFunc[T](func(v T) iter.Seq[T] {
		return func(yield func(T) bool) {
			next := gen.Int64Shrinker(int64(v))
			for {
				c, ok := next()
				if !ok || !yield(T(c.(int64))) {
					return
				}
			}
		}
	})
}

// Uints shrinks any unsigned integer type toward zero.
func Uints[T constraints.Unsigned]() Shrinker[T] {
	return ShrinkerFunc[T](func(v T) iter.Seq[T] {
		return func(yield func(T) bool) {
			next := gen.UInt64Shrinker(uint64(v))
			for {
				c, ok := next()
				if !ok || !yield(T(c.(uint64))) {
					return
				}
			}
		}
	})
}

// Strings shrinks strings by dropping runes.
func Strings() Shrinker[string] {
	return FromGopter[string](gen.StringShrinker)
}

// None never yields a candidate.
func None[T any]() Shrinker[T] {
	return FromGopter[T](gopter.NoShrinker)
}

// Slices shrinks slices: the empty slice first (for any non-empty input),
// then gopter's chunk removal and per-element shrinking via elem.
// Candidates are never longer than the input.
// Panics on nil.
func Slices[E any](elem Shrinker[E]) Shrinker[[]E] {
	if elem == nil {
		panic("shrink: Slices(nil)")
	}
	inner := gen.SliceShrinker(ToGopter(elem))

	return ShrinkerFunc[[]E](func(xs []E) iter.Seq[[]E] {
		return func(yield func([]E) bool) {
			if len(xs) == 0 {
				return
			}
			if !yield([]E{}) {
				return
			}
			next := inner(xs)
			for {
				c, ok := next()
				if !ok {
					return
				}
				candidate := c.([]E)
				if len(candidate) == 0 {
					// the leading empty slice is never repeated
					continue
				}
				if !yield(candidate) {
					return
				}
			}
		}
	})
}
