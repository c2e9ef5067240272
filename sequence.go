package sortbench

import "slices"

// Elem is the element type of every benchmark sequence.
type Elem = int16

// Sequence is a fixed-length benchmark input.
type Sequence [N]Elem

// Distribution names one of the three input orderings.
type Distribution uint8

const (
	Forward Distribution = iota
	Back
	Random
)

// Distributions lists every distribution in report order.
var Distributions = [DistributionCount]Distribution{Forward, Back, Random}

func (d Distribution) String() string {
	switch d {
	case Forward:
		return "FORWARD"
	case Back:
		return "BACK"
	case Random:
		return "RANDOM"
	}
	return "UNKNOWN"
}

// arrayLabel is the caption used when printing a sequence.
func (d Distribution) arrayLabel() string {
	switch d {
	case Forward:
		return "Forward array:"
	case Back:
		return "Back array:"
	case Random:
		return "Random array:"
	}
	return "Unknown array:"
}

// Sequences holds one instance of each distribution for a benchmark pass.
type Sequences [DistributionCount]Sequence

// Get returns a pointer to the sequence for d.
func (s *Sequences) Get(d Distribution) *Sequence {
	return &s[d]
}

// Fill regenerates all three sequences. Random is drawn from src with
// rejection of values already placed, so it is a permutation of 0..N-1.
func (s *Sequences) Fill(src Source) {
	FillSequences(&s[Forward], &s[Back], &s[Random], src)
}

// FillSequences writes ascending values into forward, descending values
// into back and a random permutation of 0..N-1 into random.
func FillSequences(forward, back, random *Sequence, src Source) {
	for i := 0; i < N; i++ {
		forward[i] = Elem(i)
		back[i] = Elem(N - i - 1)
		for {
			random[i] = Elem(src.Intn(N))
			if !slices.Contains(random[:i], random[i]) {
				break
			}
		}
	}
}
