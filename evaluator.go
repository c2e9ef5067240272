package sortbench

import (
	"log"

	"golang.org/x/exp/constraints"
)

// An Evaluation is a snapshot of how well one sort call did. Set fidelity
// is the share of the input multiset still present in the output. Sortedness
// is derived from the number of inversions left in the output: 100 means
// none, 0 means fully reversed.
type Evaluation struct {
	SetFidelity byte
	Sortedness  byte
	Inversions  uint
}

// FailReason says why an Evaluation did not pass Check. Zero means it passed.
type FailReason uint

const (
	FailedSetFidelity FailReason = 1
	FailedSortedness  FailReason = 2
)

func (r FailReason) String() string {
	switch r {
	case 0:
		return "ok"
	case FailedSetFidelity:
		return "output is not a permutation of the input"
	case FailedSortedness:
		return "output is not sorted"
	}
	return "unknown failure"
}

// Evaluate compares the input of a sort with its output under pred.
func Evaluate[E constraints.Integer](before, after []E, pred Predicate[E]) *Evaluation {
	eval := &Evaluation{}

	counts := make(map[E]int, len(before))
	for _, v := range before {
		counts[v]++
	}
	kept := 0
	for _, v := range after {
		if counts[v] > 0 {
			counts[v]--
			kept++
		}
	}
	if len(before) == 0 {
		eval.SetFidelity = 100
	} else {
		eval.SetFidelity = byte(kept * 100 / len(before))
	}

	work := make([]E, len(after))
	copy(work, after)
	eval.Inversions = countInversions(work, make([]E, len(work)), pred)

	maxInversions := uint(len(after) * (len(after) - 1) / 2)
	if maxInversions == 0 {
		eval.Sortedness = 100
	} else {
		eval.Sortedness = byte(100 - eval.Inversions*100/maxInversions)
	}

	if DEBUG {
		log.Printf("Inversions: %v\nMax Inversions: %v", eval.Inversions, maxInversions)
	}
	return eval
}

// Check reports the first property e fails, or 0.
func Check(e *Evaluation) FailReason {
	if e.SetFidelity < 100 {
		return FailedSetFidelity
	}
	if e.Inversions != 0 {
		return FailedSortedness
	}
	return 0
}

// countInversions merge sorts a using buf as scratch and returns the number
// of pairs (i < j) for which pred(a[i], a[j]) holds.
func countInversions[E constraints.Integer](a, buf []E, pred Predicate[E]) uint {
	if len(a) < 2 {
		return 0
	}
	mid := len(a) / 2
	inversions := countInversions(a[:mid], buf[:mid], pred) +
		countInversions(a[mid:], buf[mid:], pred)

	copy(buf, a)
	left, right, current := 0, mid, 0
	for left < mid && right < len(buf) {
		if pred(buf[left], buf[right]) {
			a[current] = buf[right]
			right++
			inversions += uint(mid - left)
		} else {
			a[current] = buf[left]
			left++
		}
		current++
	}
	for left < mid {
		a[current] = buf[left]
		current++
		left++
	}
	for right < len(buf) {
		a[current] = buf[right]
		current++
		right++
	}
	return inversions
}
