// SPDX-License-Identifier: MIT
// Package: propkit/shrink
//
// shrinker.go — the shrink capability and its gopter bridges.
//
// Contract for every Shrinker:
//   • Shrink(v) is finite.
//   • Shrink(v) never yields v itself.
//   • Candidates are produced lazily; nothing is computed before iteration.

package shrink

import (
	"iter"
	"slices"

	"github.com/leanovate/gopter"
)

// Shrinker produces the direct shrink candidates of a value.
type Shrinker[T any] interface {
	Shrink(v T) iter.Seq[T]
}

// ShrinkerFunc adapts a plain function to Shrinker.
type ShrinkerFunc[T any] func(v T) iter.Seq[T]

// Shrink calls f(v).
func (f ShrinkerFunc[T]) Shrink(v T) iter.Seq[T] { return f(v) }

// FromGopter adapts a gopter.Shrinker whose candidates have dynamic type T.
// Panics on nil.
func FromGopter[T any](s gopter.Shrinker) Shrinker[T] {
	if s == nil {
		panic("shrink: FromGopter(nil)")
	}
	return ShrinkerFunc[T](func(v T) iter.Seq[T] {
		return func(yield func(T) bool) {
			next := s(v)
			for {
				c, ok := next()
				if !ok {
					return
				}
				if !yield(c.(T)) {
					return
				}
			}
		}
	})
}

// ToGopter adapts s for use as a gopter.GenResult shrinker. The candidates
// of one value are collected on the first pull, since a gopter.Shrink has
// no way to release an abandoned iterator.
// Panics on nil.
func ToGopter[T any](s Shrinker[T]) gopter.Shrinker {
	if s == nil {
		panic("shrink: ToGopter(nil)")
	}
	return func(v interface{}) gopter.Shrink {
		var (
			candidates []T
			loaded     bool
			pos        int
		)
		return func() (interface{}, bool) {
			if !loaded {
				candidates = slices.Collect(s.Shrink(v.(T)))
				loaded = true
			}
			if pos >= len(candidates) {
				return nil, false
			}
			pos++
			return candidates[pos-1], true
		}
	}
}
