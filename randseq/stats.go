// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// stats.go — closed forms of the length law produced by Generate.
//
// With q = 1−p and K = MaxExclusive−1−MinLen (the room left after padding):
//   • unbounded:  P(MinLen+k) = p·q^k,                         E = MinLen + q/p
//   • bounded:    P(MinLen+k) = p·q^k for k<K, P(MinLen+K) = q^K
//                 E = MinLen + Σ_{j=1..K} q^j = MinLen + q(1−q^K)/p
//   • empty:      all mass on MinLen.

package randseq

import "math"

// StopProbability returns the fraction of alphabet entries equal to stop.
// Returns 0 for an empty alphabet.
func StopProbability[S comparable](alphabet []S, stop S) float64 {
	if len(alphabet) == 0 {
		return 0
	}
	return float64(countStops(alphabet, stop)) / float64(len(alphabet))
}

// ExpectedLength returns the mean sequence length Generate produces for
// stop probability p over range r. Returns +Inf when p == 0 and r has no
// upper bound.
func ExpectedLength(p float64, r Range) float64 {
	minLen := float64(r.MinLen())
	if r.Empty() {
		return minLen
	}

	q := 1 - p
	max, bounded := r.MaxExclusive()
	if !bounded {
		if p == 0 {
			return math.Inf(1)
		}
		return minLen + q/p
	}

	room := float64(max - 1 - r.MinLen())
	if p == 0 {
		// Every extension draw succeeds until the cap.
		return minLen + room
	}
	return minLen + q*(1-math.Pow(q, room))/p
}

// LengthProbability returns P(len = n) for stop probability p over range r.
func LengthProbability(p float64, r Range, n int) float64 {
	minLen := r.MinLen()
	if r.Empty() {
		if n == minLen {
			return 1
		}
		return 0
	}
	if n < minLen {
		return 0
	}

	k := n - minLen
	q := 1 - p
	max, bounded := r.MaxExclusive()
	if bounded {
		room := max - 1 - minLen
		switch {
		case k > room:
			return 0
		case k == room:
			return math.Pow(q, float64(room))
		}
	}
	return p * math.Pow(q, float64(k))
}
