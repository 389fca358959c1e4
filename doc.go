// Package propkit is a small toolkit for property-based testing in Go:
// a biased random sequence generator and field-wise shrink combinators
// that plug into gopter and rapid.
//
// 🚀 What is inside?
//
//	randseq/     — Generate / Bytes: random sequences whose length follows a
//	               geometric law controlled by a stop symbol, clamped into a
//	               length Range; Generator with options; Shuffle; gopter and
//	               rapid adapters.
//	shrink/      — Field / MapField / Chain: candidates for composite values
//	               shrinking one field at a time; built-in shrinkers backed by
//	               gopter; Unshrinkable.
//	cmd/seqstat/ — CLI sampling the generator and comparing the empirical
//	               length histogram with the analytic law.
//
// ✨ The length law
//
//	With p = count(stop in alphabet) / len(alphabet):
//
//	    len = MinLen + k,   P(k) = p·(1−p)^k,   truncated at MaxExclusive−1
//
//	so "ab." over ".." has mean length 2.
//
// Quick example:
//
//	rng := rand.New(rand.NewSource(1))
//	seq, err := randseq.Generate(rng, []byte("abcd."), '.', randseq.Between(3, 5))
//	// len(seq) ∈ {3, 4, 5}, no '.' inside
//
//	go get github.com/katalvlaran/propkit
package propkit
