// SPDX-License-Identifier: MIT
// Package: propkit/shrink
//
// unshrinkable.go — values that ride through shrinking unchanged.

package shrink

import (
	"reflect"

	"github.com/leanovate/gopter"
)

// Unshrinkable carries a value through shrinking untouched. Inside a
// shrunk slice it may be dropped, but never altered.
type Unshrinkable[T any] struct {
	value T
	set   bool
}

// NewUnshrinkable wraps v.
func NewUnshrinkable[T any](v T) Unshrinkable[T] {
	return Unshrinkable[T]{value: v, set: true}
}

// Take returns the wrapped value.
// Panics on the zero Unshrinkable, which carries no value.
func (u Unshrinkable[T]) Take() T {
	if !u.set {
		panic("shrink: Take on empty Unshrinkable")
	}
	return u.value
}

// Unshrinkables is the shrinker of Unshrinkable: it yields nothing.
func Unshrinkables[T any]() Shrinker[Unshrinkable[T]] {
	return None[Unshrinkable[T]]()
}

// UnshrinkableOf wraps every value of g into an Unshrinkable and drops g's
// shrinker.
func UnshrinkableOf[T any](g gopter.Gen) gopter.Gen {
	resultType := reflect.TypeOf(Unshrinkable[T]{})
	return func(params *gopter.GenParameters) *gopter.GenResult {
		v, ok := g(params).Retrieve()
		if !ok {
			return gopter.NewEmptyResult(resultType)
		}
		return gopter.NewGenResult(NewUnshrinkable(v.(T)), gopter.NoShrinker)
	}
}
