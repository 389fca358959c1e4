// Package shrink derives shrink candidates for composite values one field
// at a time.
//
// A property-testing harness minimizes a failing input by repeatedly asking
// for "smaller" candidates. For a struct this is usually assembled field by
// field: shrink A and keep everything else, then shrink B and keep
// everything else, and so on. This package provides those building blocks:
//
//   - Shrinker[T]      the capability: Shrink(v) → finite lazy iter.Seq[T]
//   - Lens[V, F]       a getter/wither pair addressing one field F of V
//   - Field            v's candidates with only the lensed field shrunk
//   - MapField         the same for a map field whose keys derive from its
//     values (key == derive(value) holds before and after)
//   - Chain            concatenation of per-field sequences
//   - Unshrinkable[T]  a wrapper whose shrinker yields nothing
//
// Built-in shrinkers (Ints, Uints, Strings, Slices, None) are backed by
// github.com/leanovate/gopter, and FromGopter / ToGopter convert in both
// directions so candidates plug straight into a gopter.GenResult.
//
// Every sequence is single pass. Iterating again re-runs the underlying
// shrinker from the start; nothing is cached.
//
// Usage:
//
//	type Pair struct{ A, B int }
//
//	a := shrink.At(func(p *Pair) *int { return &p.A })
//	b := shrink.At(func(p *Pair) *int { return &p.B })
//	ints := shrink.Ints[int]()
//
//	for c := range shrink.Chain(
//	    shrink.Field(v, a, ints),
//	    shrink.Field(v, b, ints),
//	) {
//	    ...
//	}
package shrink
