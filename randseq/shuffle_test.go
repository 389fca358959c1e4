package randseq_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/propkit/randseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_Permutes(t *testing.T) {
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.NoError(t, randseq.Shuffle(rand.New(rand.NewSource(6)), xs))

	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted, "same multiset")
}

// TestShuffle_Uniform: each of the 6 orders of 3 items shows up about 1/6
// of the time.
func TestShuffle_Uniform(t *testing.T) {
	const trials = 60000
	rng := rand.New(rand.NewSource(12))
	counts := map[[3]rune]int{}
	for i := 0; i < trials; i++ {
		xs := []rune("abc")
		require.NoError(t, randseq.Shuffle(rng, xs))
		counts[[3]rune{xs[0], xs[1], xs[2]}]++
	}

	assert.Len(t, counts, 6)
	for order, n := range counts {
		assert.InDelta(t, trials/6, n, 600, "order %q", string(order[:]))
	}
}

func TestShuffle_Edges(t *testing.T) {
	assert.ErrorIs(t, randseq.Shuffle[int](nil, []int{1}), randseq.ErrNeedRandSource)
	assert.NoError(t, randseq.Shuffle(rand.New(rand.NewSource(1)), []int{}))
}
