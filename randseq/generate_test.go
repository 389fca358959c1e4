package randseq_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/propkit/randseq"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const stopper = '.'

var letters = []byte("abcd.")

// scriptedChooser replays fixed indices; it fails the test when exhausted.
type scriptedChooser struct {
	t     *testing.T
	picks []int
	calls int
}

func (s *scriptedChooser) Intn(n int) int {
	s.t.Helper()
	if s.calls >= len(s.picks) {
		s.t.Fatalf("scriptedChooser: draw %d beyond script", s.calls)
	}
	pick := s.picks[s.calls]
	s.calls++
	if pick >= n {
		s.t.Fatalf("scriptedChooser: pick %d out of [0,%d)", pick, n)
	}
	return pick
}

// assertSequence checks range membership and symbol hygiene.
func assertSequence(t *testing.T, seq []byte, r randseq.Range) {
	t.Helper()
	assert.True(t, r.Contains(len(seq)), "len=%d outside %s", len(seq), r)
	for _, ch := range seq {
		assert.Contains(t, letters, ch, "symbol not in alphabet")
		assert.NotEqual(t, byte(stopper), ch, "stop symbol emitted")
	}
}

// TestGenerate_Errors verifies every sentinel surfaces through errors.Is.
func TestGenerate_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := randseq.Generate[byte](nil, letters, stopper, randseq.Full())
	assert.ErrorIs(t, err, randseq.ErrNeedRandSource)

	_, err = randseq.Generate(rng, []byte{}, stopper, randseq.Full())
	assert.ErrorIs(t, err, randseq.ErrEmptyAlphabet)

	_, err = randseq.Generate(rng, letters, stopper, randseq.From(-1))
	assert.ErrorIs(t, err, randseq.ErrInvalidRange)

	_, err = randseq.Generate(rng, letters, stopper, randseq.UpTo(-3))
	assert.ErrorIs(t, err, randseq.ErrInvalidRange)

	_, err = randseq.Generate(rng, []byte("abc"), stopper, randseq.From(2))
	assert.ErrorIs(t, err, randseq.ErrNoTermination, "no stop symbol and no upper bound")

	_, err = randseq.Generate(rng, []byte(".."), stopper, randseq.Between(1, 4))
	assert.ErrorIs(t, err, randseq.ErrNoTermination, "only stop symbols but a minimum")

	_, err = randseq.Bytes(nil, letters, stopper, randseq.Full())
	assert.ErrorIs(t, err, randseq.ErrNeedRandSource)

	noLength := randseq.Range{Lo: randseq.Bound{Kind: randseq.Excluded, N: math.MaxInt}}
	assert.NotPanics(t, func() {
		_, err = randseq.Generate(rng, letters, stopper, noLength)
	})
	assert.ErrorIs(t, err, randseq.ErrInvalidRange)
}

// TestGenerate_UpToMaxInt: an inclusive math.MaxInt cap behaves like no cap.
func TestGenerate_UpToMaxInt(t *testing.T) {
	const trials = 5000
	rng := rand.New(rand.NewSource(17))
	r := randseq.UpTo(math.MaxInt)

	total := 0
	for i := 0; i < trials; i++ {
		seq, err := randseq.Generate(rng, []byte("ab."), stopper, r)
		require.NoError(t, err)
		total += len(seq)
	}
	assert.InDelta(t, 2.0, float64(total)/trials, 0.2)
	assert.InDelta(t, 2.0, randseq.ExpectedLength(1.0/3, r), 1e-12)

	_, err := randseq.Generate(rng, []byte("ab"), stopper, r)
	assert.ErrorIs(t, err, randseq.ErrNoTermination, "no stop symbol and no effective cap")
}

// TestGenerate_ZeroStopBounded runs without a stop symbol: the upper bound
// alone ends the sequence, always at its last admissible length.
func TestGenerate_ZeroStopBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		seq, err := randseq.Generate(rng, []byte("ab"), stopper, randseq.Below(6))
		require.NoError(t, err)
		assert.Len(t, seq, 5)
	}
}

// TestGenerate_OnlyStopSymbols: with p=1 and no minimum every result is empty.
func TestGenerate_OnlyStopSymbols(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seq, err := randseq.Generate(rng, []byte("..."), stopper, randseq.Full())
	require.NoError(t, err)
	assert.Empty(t, seq)
}

// TestGenerate_Script walks both phases draw by draw.
func TestGenerate_Script(t *testing.T) {
	// alphabet "abcd.": index 4 is the stop symbol.
	t.Run("padding discards stops", func(t *testing.T) {
		src := &scriptedChooser{t: t, picks: []int{4, 0, 4, 4, 1, 4}}
		seq, err := randseq.Generate(src, letters, stopper, randseq.From(2))
		require.NoError(t, err)
		assert.Equal(t, []byte("ab"), seq)
		assert.Equal(t, 6, src.calls, "padding redraws after stop, extension ends on stop")
	})

	t.Run("extension stops at cap without appending", func(t *testing.T) {
		src := &scriptedChooser{t: t, picks: []int{0, 1, 2, 3}}
		seq, err := randseq.Generate(src, letters, stopper, randseq.Between(0, 2))
		require.NoError(t, err)
		assert.Equal(t, []byte("ab"), seq)
		assert.Equal(t, 3, src.calls, "the capping draw is consumed but dropped")
	})

	t.Run("empty range returns exactly MinLen", func(t *testing.T) {
		src := &scriptedChooser{t: t, picks: []int{2, 3, 4, 1, 0, 0}}
		seq, err := randseq.Generate(src, letters, stopper, randseq.Between(4, 1))
		require.NoError(t, err)
		assert.Equal(t, []byte("cdba"), seq)
	})
}

// TestGenerate_BothIncludedProperty: for any a ≤ b, a..=b holds.
func TestGenerate_BothIncludedProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a..=b keeps a ≤ len ≤ b over abcd.", prop.ForAll(
		func(a, b uint8, seed int64) bool {
			lo, hi := int(a), int(b)
			if lo > hi {
				lo, hi = hi, lo
			}
			r := randseq.Between(lo, hi)
			seq, err := randseq.Bytes(rand.New(rand.NewSource(seed)), letters, stopper, r)
			if err != nil || len(seq) < lo || len(seq) > hi {
				return false
			}
			for _, ch := range seq {
				if ch == stopper {
					return false
				}
			}
			return true
		},
		gen.UInt8(),
		gen.UInt8(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestGenerate_HalfOpenProperty: for any a < b, a..b holds. Every pick
// comes from rapid, so a failure shrinks to a minimal draw sequence.
func TestGenerate_HalfOpenProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := rapid.IntRange(0, 64).Draw(rt, "lo")
		hi := rapid.IntRange(lo+1, 65).Draw(rt, "hi")
		r := randseq.Span(lo, hi)

		seq, err := randseq.Generate(randseq.FromRapid(rt), letters, stopper, r)
		if err != nil {
			rt.Fatalf("Generate: %v", err)
		}
		if len(seq) < lo || len(seq) >= hi {
			rt.Fatalf("len=%d outside %s", len(seq), r)
		}
		for _, ch := range seq {
			if ch == stopper {
				rt.Fatalf("stop symbol emitted in %q", seq)
			}
		}
	})
}

// TestGenerate_Scenario covers the {a,b,c,d,'.'} with 3..=5 fixture.
func TestGenerate_Scenario(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		seq, err := randseq.Generate(rng, letters, stopper, randseq.Between(3, 5))
		require.NoError(t, err)
		assertSequence(t, seq, randseq.Between(3, 5))
		seen[len(seq)] = true
	}
	assert.Equal(t, map[int]bool{3: true, 4: true, 5: true}, seen, "every admissible length shows up")
}

// TestGenerate_MeanLength: "ab." with p=1/3 has mean (1−p)/p = 2.
func TestGenerate_MeanLength(t *testing.T) {
	const trials = 20000
	rng := rand.New(rand.NewSource(99))
	total := 0
	for i := 0; i < trials; i++ {
		seq, err := randseq.Generate(rng, []byte("ab."), stopper, randseq.Full())
		require.NoError(t, err)
		total += len(seq)
	}

	mean := float64(total) / trials
	// stddev of the length is sqrt(q)/p ≈ 2.45; the standard error at 20k
	// trials is ≈ 0.017, so 0.1 is a very wide margin.
	assert.InDelta(t, 2.0, mean, 0.1)
	assert.InDelta(t, 2.0, randseq.ExpectedLength(1.0/3, randseq.Full()), 1e-12)
}

// TestGenerate_Deterministic: equal seeds give equal sequences.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := randseq.Generate(rand.New(rand.NewSource(5)), letters, stopper, randseq.From(10))
	require.NoError(t, err)
	b, err := randseq.Generate(rand.New(rand.NewSource(5)), letters, stopper, randseq.From(10))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestGenerate_GenericSymbols runs on strings to exercise non-byte symbols.
func TestGenerate_GenericSymbols(t *testing.T) {
	words := []string{"GET", "PUT", "DELETE", "END", "END"}
	seq, err := randseq.Generate(randseq.FromSource(rand.NewSource(8)), words, "END", randseq.Between(1, 8))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(seq), 1)
	assert.LessOrEqual(t, len(seq), 8)
	assert.NotContains(t, seq, "END")
}
