// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// range.go — length ranges with independent lower and upper sides.
//
// Model:
//   • Each side is a Bound: Unbounded, Included(n) or Excluded(n).
//   • The generator only needs two derived numbers: MinLen (inclusive)
//     and MaxExclusive (optional). All constructors reduce to those.
//   • Lower > upper is representable and accepted ("empty range").
//   • Included(math.MaxInt) as upper side means no upper bound at all;
//     Excluded(math.MaxInt) as lower side admits no length and is rejected.

package randseq

import (
	"fmt"
	"math"
	"strconv"
)

// BoundKind tells how a Bound limits its side of a Range.
type BoundKind uint8

const (
	// Unbounded leaves the side open (lower ⇒ 0, upper ⇒ ∞).
	Unbounded BoundKind = iota
	// Included makes N itself a valid length.
	Included
	// Excluded makes N the first invalid length on that side.
	Excluded
)

// Bound is one side of a Range. The zero value is Unbounded.
type Bound struct {
	Kind BoundKind // how N is interpreted
	N    int       // the limit; ignored when Kind == Unbounded
}

// Range constrains the length of a generated sequence.
// The zero value is the full range "..".
type Range struct {
	Lo Bound // lower side
	Hi Bound // upper side
}

// Full returns the unconstrained range "..".
func Full() Range { return Range{} }

// From returns "a..": lengths ≥ a.
func From(a int) Range {
	return Range{Lo: Bound{Kind: Included, N: a}}
}

// Below returns "..b": lengths < b.
func Below(b int) Range {
	return Range{Hi: Bound{Kind: Excluded, N: b}}
}

// UpTo returns "..=b": lengths ≤ b.
func UpTo(b int) Range {
	return Range{Hi: Bound{Kind: Included, N: b}}
}

// Span returns the half-open range "a..b": a ≤ length < b.
func Span(a, b int) Range {
	return Range{
		Lo: Bound{Kind: Included, N: a},
		Hi: Bound{Kind: Excluded, N: b},
	}
}

// Between returns the closed range "a..=b": a ≤ length ≤ b.
func Between(a, b int) Range {
	return Range{
		Lo: Bound{Kind: Included, N: a},
		Hi: Bound{Kind: Included, N: b},
	}
}

// MinLen returns the smallest admissible length.
// Unbounded ⇒ 0, Included(n) ⇒ n, Excluded(n) ⇒ n+1 (saturating).
func (r Range) MinLen() int {
	switch r.Lo.Kind {
	case Included:
		return r.Lo.N
	case Excluded:
		if r.Lo.N == math.MaxInt {
			return math.MaxInt
		}
		return r.Lo.N + 1
	default:
		return 0
	}
}

// MaxExclusive returns the first inadmissible length on the upper side and
// true, or (0, false) when the upper side is unbounded.
// Included(n) ⇒ n+1, Excluded(n) ⇒ n. Included(math.MaxInt) has no first
// inadmissible length and reports (0, false).
func (r Range) MaxExclusive() (int, bool) {
	switch r.Hi.Kind {
	case Included:
		if r.Hi.N == math.MaxInt {
			return 0, false
		}
		return r.Hi.N + 1, true
	case Excluded:
		return r.Hi.N, true
	default:
		return 0, false
	}
}

// Empty reports whether no length satisfies r (lower side above upper side).
// Empty ranges are accepted by Generate; see the package documentation.
func (r Range) Empty() bool {
	max, bounded := r.MaxExclusive()
	return bounded && r.MinLen() >= max
}

// Contains reports whether a sequence of length n satisfies r.
func (r Range) Contains(n int) bool {
	if n < r.MinLen() {
		return false
	}
	max, bounded := r.MaxExclusive()
	return !bounded || n < max
}

// validate rejects negative bounds and a lower side past math.MaxInt.
// Empty ranges pass.
func (r Range) validate(method string) error {
	if r.Lo.Kind != Unbounded && r.Lo.N < 0 {
		return fmt.Errorf("%s: lower bound %d: %w", method, r.Lo.N, ErrInvalidRange)
	}
	if r.Lo.Kind == Excluded && r.Lo.N == math.MaxInt {
		return fmt.Errorf("%s: lower bound excludes every length: %w", method, ErrInvalidRange)
	}
	if r.Hi.Kind != Unbounded && r.Hi.N < 0 {
		return fmt.Errorf("%s: upper bound %d: %w", method, r.Hi.N, ErrInvalidRange)
	}
	return nil
}

// String renders r in the familiar "a..b" / "a..=b" notation.
// An excluded lower bound is normalized to its first admissible length.
func (r Range) String() string {
	lo := ""
	if r.Lo.Kind != Unbounded {
		lo = strconv.Itoa(r.MinLen())
	}
	switch r.Hi.Kind {
	case Included:
		return lo + "..=" + strconv.Itoa(r.Hi.N)
	case Excluded:
		return lo + ".." + strconv.Itoa(r.Hi.N)
	default:
		return lo + ".."
	}
}
