// Package randseq generates random sequences whose length follows a
// stop-symbol driven, geometric-like law, clipped to a requested range.
//
// 🚀 What is a biased sequence?
//
//	Draw symbols uniformly from an alphabet until a designated stop symbol
//	comes up. The stop symbol is never emitted. If the alphabet holds m
//	symbols of which n are stop symbols, the stop probability is p = n/m and
//
//	  P(len = k) = p·(1−p)^k
//
//	Short inputs are the cheapest place to find bugs, so a property test
//	that feeds such sequences spends most of its budget on small cases
//	without ever excluding long ones.
//
// ✨ Key features:
//   - any comparable symbol type (bytes, runes, strings, enums)
//   - duplicated alphabet entries bias the draw (alphabet "a.." stop '.' ⇒ p=2/3)
//   - length ranges on both sides: Full(), From(a), Below(b), UpTo(b),
//     Span(a,b), Between(a,b)
//   - pluggable randomness (Chooser): *rand.Rand, gopter GenParameters,
//     rapid draws, or raw fuzzer bytes
//   - ready-made gopter.Gen and rapid.Generator adapters
//
// Range semantics:
//
//   - a..   : padding draws a symbols first (stop draws are discarded),
//     then P(len = a+k) = p(1−p)^k.
//   - ..b   : the distribution is truncated; all mass beyond b−1 lands on b−1.
//   - empty : a range whose lower side exceeds its upper side is accepted.
//     The result has exactly MinLen() symbols. This is a documented
//     fallback, not a guarantee worth relying on.
//
// Termination:
//
//	An alphabet without any stop symbol and no upper bound, or an alphabet
//	made only of stop symbols with a positive lower bound, can never
//	finish. Generate rejects both with ErrNoTermination instead of hanging.
//
// ⚙️ Usage:
//
//	rng := rand.New(rand.NewSource(42))
//	seq, err := randseq.Generate(rng, []byte("abcd."), '.', randseq.Between(3, 5))
//
//	g, err := randseq.NewGenerator([]rune("ab."), '.', randseq.WithSeed(7))
//	for i := 0; i < 10; i++ {
//	    fmt.Println(string(g.Next()))
//	}
//
// Performance:
//
//   - Time:   O(len + expected stop draws) per sequence
//   - Memory: O(len)
//
// A Generator is not safe for concurrent use; give every goroutine its own.
package randseq
