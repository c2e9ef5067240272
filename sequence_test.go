package sortbench

import (
	test "testing"

	"github.com/stretchr/testify/assert"
)

// stuckSource returns each value in order, repeating the last one.
type stuckSource struct {
	values []int
	next   int
}

func (s *stuckSource) Intn(n int) int {
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return v % n
}

func TestFillSequences(t *test.T) {
	var forward, back, random Sequence
	FillSequences(&forward, &back, &random, NewSource(3))

	for i := 0; i < N; i++ {
		assert.Equal(t, Elem(i), forward[i])
		assert.Equal(t, Elem(N-1-i), back[i])
	}

	seen := make(map[Elem]bool, N)
	for _, v := range random {
		assert.True(t, v >= 0 && v < N, "value %d out of range", v)
		assert.False(t, seen[v], "value %d drawn twice", v)
		seen[v] = true
	}
	assert.Len(t, seen, N)
}

func TestFillRejectsDuplicates(t *test.T) {
	// every value is offered twice before the next one; the repeats must be rejected
	values := make([]int, 0, 2*N)
	for i := N - 1; i >= 0; i-- {
		values = append(values, i, i)
	}
	var seqs Sequences
	seqs.Fill(&stuckSource{values: values})

	for i, v := range seqs.Get(Random) {
		assert.Equal(t, Elem(N-1-i), v)
	}
}

func TestFillIsReproducibleWithSeed(t *test.T) {
	a := makeSequences(77)
	b := makeSequences(77)
	assert.Equal(t, a.Get(Random), b.Get(Random))
}

func TestDistributionString(t *test.T) {
	assert.Equal(t, "FORWARD", Forward.String())
	assert.Equal(t, "BACK", Back.String())
	assert.Equal(t, "RANDOM", Random.String())
	assert.Equal(t, "UNKNOWN", Distribution(9).String())
}

func TestInitRNG(t *test.T) {
	InitRNG(5)
	src := NewSource(0)
	for i := 0; i < 100; i++ {
		v := src.Intn(N)
		assert.True(t, v >= 0 && v < N)
	}
}
