// SPDX-License-Identifier: MIT
// Package: propkit/shrink
//
// lens.go — typed access to one field of a composite value.

package shrink

// Lens reads and non-destructively replaces one field F of a value V.
// Set must return a modified copy and leave its argument untouched; for
// struct values passed by value this holds automatically.
type Lens[V, F any] struct {
	get func(V) F
	set func(V, F) V
}

// NewLens builds a Lens from a getter and a wither.
// Panics on nil accessors.
func NewLens[V, F any](get func(V) F, set func(V, F) V) Lens[V, F] {
	if get == nil || set == nil {
		panic("shrink: NewLens with nil accessor")
	}
	return Lens[V, F]{get: get, set: set}
}

// At builds a Lens from a field selector on a pointer to V, e.g.
//
//	shrink.At(func(p *Pair) *int { return &p.A })
//
// Both Get and Set work on a local copy of V, so the caller's value is
// never written. Panics on nil.
func At[V, F any](field func(*V) *F) Lens[V, F] {
	if field == nil {
		panic("shrink: At(nil)")
	}
	return Lens[V, F]{
		get: func(v V) F { return *field(&v) },
		set: func(v V, f F) V {
			*field(&v) = f
			return v
		},
	}
}

// Get returns the field of v.
func (l Lens[V, F]) Get(v V) F { return l.get(v) }

// Set returns a copy of v with the field replaced by f.
func (l Lens[V, F]) Set(v V, f F) V { return l.set(v, f) }

func (l Lens[V, F]) mustBeValid() {
	if l.get == nil || l.set == nil {
		panic("shrink: zero Lens; build it with NewLens or At")
	}
}
