// SPDX-License-Identifier: MIT
// Package: propkit/randseq
//
// generate.go — the biased sequence generator.
//
// Contract:
//   • len(alphabet) ≥ 1 (else ErrEmptyAlphabet).
//   • src non-nil (else ErrNeedRandSource).
//   • Range bounds ≥ 0 (else ErrInvalidRange); empty ranges are accepted.
//   • Rejects alphabet/range pairs that can never terminate (ErrNoTermination).
//   • Result symbols come from alphabet and never equal stop.
//
// Algorithm:
//   1) Padding:   while len < MinLen: draw; append unless it is stop.
//   2) Extension: loop: draw; stop ⇒ done; len+1 ≥ MaxExclusive ⇒ done;
//                 else append.
//
// Determinism:
//   • One src.Intn(len(alphabet)) per draw, no other entropy consumed.

package randseq

import "fmt"

// maxPrealloc caps the capacity reserved up front for the padding phase.
const maxPrealloc = 1 << 10

// Method tags used as error prefixes.
const (
	methodGenerate     = "Generate"
	methodBytes        = "Bytes"
	methodNewGenerator = "NewGenerator"
	methodShuffle      = "Shuffle"
	methodGen          = "Gen"
	methodRapid        = "Rapid"
)

// Generate draws a sequence of non-stop symbols from alphabet whose length
// lies in r. With p the stop-symbol frequency of alphabet, the length is
// MinLen()+k with P(k) = p(1−p)^k, truncated at MaxExclusive()−1.
//
// Errors:
//   - ErrNeedRandSource: src == nil.
//   - ErrEmptyAlphabet:  len(alphabet) == 0.
//   - ErrInvalidRange:   negative bound.
//   - ErrNoTermination:  p == 0 with no upper bound, or p == 1 with MinLen() > 0.
//
// Complexity: O(expected draws) time, O(len) memory.
func Generate[S comparable](src Chooser, alphabet []S, stop S, r Range) ([]S, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}
	if err := validateParams(methodGenerate, alphabet, stop, r); err != nil {
		return nil, err
	}

	return generate(src, alphabet, stop, r), nil
}

// Bytes is Generate specialized to byte alphabets.
func Bytes(src Chooser, alphabet []byte, stop byte, r Range) ([]byte, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodBytes, ErrNeedRandSource)
	}
	if err := validateParams(methodBytes, alphabet, stop, r); err != nil {
		return nil, err
	}

	return generate(src, alphabet, stop, r), nil
}

// validateParams checks everything except the random source.
func validateParams[S comparable](method string, alphabet []S, stop S, r Range) error {
	if len(alphabet) == 0 {
		return fmt.Errorf("%s: %w", method, ErrEmptyAlphabet)
	}
	if err := r.validate(method); err != nil {
		return err
	}

	stops := countStops(alphabet, stop)
	_, bounded := r.MaxExclusive()
	if stops == 0 && !bounded {
		return fmt.Errorf("%s: stop symbol absent and range %s has no upper bound: %w",
			method, r, ErrNoTermination)
	}
	if stops == len(alphabet) && r.MinLen() > 0 {
		return fmt.Errorf("%s: alphabet holds only stop symbols and range %s needs %d: %w",
			method, r, r.MinLen(), ErrNoTermination)
	}

	return nil
}

// generate runs the two phases. Parameters are assumed valid.
func generate[S comparable](src Chooser, alphabet []S, stop S, r Range) []S {
	var (
		n        = len(alphabet)
		minLen   = r.MinLen()
		maxLen   int
		bounded  bool
		ch       S
		sequence = make([]S, 0, min(minLen, maxPrealloc))
	)
	maxLen, bounded = r.MaxExclusive()

	// Padding: stop draws do not count toward the minimum.
	for len(sequence) < minLen {
		ch = alphabet[src.Intn(n)]
		if ch != stop {
			sequence = append(sequence, ch)
		}
	}

	// Extension: geometric tail, clipped at maxLen-1.
	for {
		ch = alphabet[src.Intn(n)]
		if ch == stop {
			break
		}
		if bounded && len(sequence)+1 >= maxLen {
			break
		}
		sequence = append(sequence, ch)
	}

	return sequence
}

// countStops returns how many entries of alphabet equal stop.
func countStops[S comparable](alphabet []S, stop S) int {
	count := 0
	for _, ch := range alphabet {
		if ch == stop {
			count++
		}
	}
	return count
}
