package sortbench

import (
	"slices"
	test "testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSequences(seed int64) *Sequences {
	var seqs Sequences
	seqs.Fill(NewSource(seed))
	return &seqs
}

func inputInversions(s []Elem) uint {
	work := slices.Clone(s)
	return countInversions(work, make([]Elem, len(work)), Ascending[Elem])
}

func TestAlgorithmsSortEveryDistribution(t *test.T) {
	for _, a := range Algorithms {
		seqs := makeSequences(42)
		for _, d := range Distributions {
			seq := seqs.Get(d)
			Measure(a, seq[:])
			assert.Truef(t, slices.IsSorted(seq[:]), "%s left %s unsorted", a, d)
			for i, v := range seq {
				if !assert.Equalf(t, Elem(i), v, "%s on %s lost a value", a, d) {
					break
				}
			}
		}
	}
}

func TestSimpleExchangeBackCounts(t *test.T) {
	seqs := makeSequences(1)
	seq := seqs.Get(Back)

	c := Measure(SimpleExchange, seq[:])

	assert.Equal(t, uint(N*(N-1)), c.Comparisons, "N passes of N-1 comparisons")
	assert.Equal(t, uint(N*(N-1)/2), c.Swaps, "one swap per inversion")
}

func TestForwardClosedFormCounts(t *test.T) {
	tests := []struct {
		alg         Algorithm
		comparisons uint
	}{
		{SimpleExchange, N * (N - 1)},
		{SimpleChoice, N * (N + 1) / 2},
		{SimpleInsert, 1 + 2*(N-2)},
		{Shayker, N * (N - 1) / 2},
		{Shell, (N - 7) + (N - 2) + (N - 1)},
		{Quick, N * (N - 1) / 2},
	}
	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *test.T) {
			seqs := makeSequences(1)
			seq := seqs.Get(Forward)
			c := Measure(tt.alg, seq[:])
			assert.Equal(t, tt.comparisons, c.Comparisons)
			assert.Zero(t, c.Swaps)
		})
	}
}

func TestSortedInputIsUntouched(t *test.T) {
	for _, a := range Algorithms {
		seqs := makeSequences(7)
		seq := seqs.Get(Forward)
		before := *seq

		c := Measure(a, seq[:])

		assert.Equalf(t, before, *seq, "%s changed a sorted sequence", a)
		if a == Heap {
			// the root is always exchanged with the end of the heap
			assert.GreaterOrEqual(t, c.Swaps, uint(N-1))
			continue
		}
		assert.Zerof(t, c.Swaps, "%s swapped on sorted input", a)
	}
}

func TestAdjacentSwapSortsSwapOncePerInversion(t *test.T) {
	adjacent := []Algorithm{SimpleExchange, SimpleInsert, Shayker, BinaryInsert}
	for _, a := range adjacent {
		for _, d := range Distributions {
			seqs := makeSequences(99)
			seq := seqs.Get(d)
			want := inputInversions(seq[:])

			c := Measure(a, seq[:])

			assert.Equalf(t, want, c.Swaps, "%s on %s", a, d)
		}
	}
}

func TestCountsAreDeterministic(t *test.T) {
	frozen := *makeSequences(2024).Get(Random)
	for _, a := range Algorithms {
		first, second := frozen, frozen
		c1 := Measure(a, first[:])
		c2 := Measure(a, second[:])
		assert.Equalf(t, c1, c2, "%s counts differ between runs", a)
		assert.Equal(t, first, second)
	}
}

func TestEmptyAndSingletonRanges(t *test.T) {
	for _, a := range Algorithms {
		c := Measure(a, []Elem{})
		assert.Equalf(t, Counters{}, c, "%s on empty range", a)

		one := []Elem{5}
		c = Measure(a, one)
		assert.Equal(t, []Elem{5}, one)
		assert.Zerof(t, c.Swaps, "%s on singleton", a)
		if a == SimpleChoice {
			// the final boundary check compares the element with itself
			assert.Equal(t, uint(1), c.Comparisons)
		} else {
			assert.Zerof(t, c.Comparisons, "%s on singleton", a)
		}
	}
}

func TestQuickSortTwoElements(t *test.T) {
	s := []Elem{9, 3}
	c := Measure(Quick, s)
	assert.Equal(t, []Elem{3, 9}, s)
	assert.Equal(t, Counters{Comparisons: 1, Swaps: 1}, c)
}

func TestHeapSortSmall(t *test.T) {
	s := []Elem{1, 2}
	c := Measure(Heap, s)
	assert.Equal(t, []Elem{1, 2}, s)
	// build: one child probe, one violation check and a swap; then the root swap
	assert.Equal(t, Counters{Comparisons: 2, Swaps: 2}, c)
}

func TestBinaryAndSimpleInsertAgree(t *test.T) {
	frozen := *makeSequences(5).Get(Random)
	linear, binary := frozen, frozen

	cl := Measure(SimpleInsert, linear[:])
	cb := Measure(BinaryInsert, binary[:])

	assert.Equal(t, linear, binary)
	assert.Less(t, cb.Comparisons, cl.Comparisons)
	assert.Equal(t, cl.Swaps, cb.Swaps)
}

func TestDescendingPredicate(t *test.T) {
	honoured := []Algorithm{SimpleExchange, SimpleInsert, Shayker, Heap, Shell, BinaryInsert}
	for _, a := range honoured {
		frozen := *makeSequences(11).Get(Random)
		var c Counters
		SortFunc(a, frozen[:], Descending[Elem], &c)
		assert.Truef(t, slices.IsSortedFunc(frozen[:], func(x, y Elem) int { return int(y) - int(x) }),
			"%s did not sort descending", a)
	}
}

func TestSortsOtherIntegerTypes(t *test.T) {
	s := []int64{5, -3, 12, 0, -3, 7}
	var c Counters
	SortFunc(Quick, s, Ascending[int64], &c)
	assert.Equal(t, []int64{-3, -3, 0, 5, 7, 12}, s)
}

func TestShellGaps(t *test.T) {
	assert.Equal(t, []int{7, 2, 1}, ShellGaps(N))
	assert.Equal(t, []int{1}, ShellGaps(2))
	assert.Empty(t, ShellGaps(1))
	assert.Empty(t, ShellGaps(0))
	require.Equal(t, -1, intLog2(0))
	require.Equal(t, 3, intLog2(15))
}
