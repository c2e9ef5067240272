package sortbench

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// All algorithms below rearrange s in place, add one to c.Comparisons for
// every element comparison and one to c.Swaps for every exchange.

func swap[E constraints.Integer](s []E, i, j int, c *Counters) {
	c.Swaps++
	s[i], s[j] = s[j], s[i]
}

// SimpleExchangeSort is bubble sort with a fixed len(s) passes and no
// early exit.
func SimpleExchangeSort[E constraints.Integer](s []E, pred Predicate[E], c *Counters) {
	n := len(s)
	for i := 0; i < n; i++ {
		for j := 0; j < n-1; j++ {
			c.Comparisons++
			if pred(s[j], s[j+1]) {
				swap(s, j, j+1, c)
			}
		}
	}
}

// SimpleChoiceSort is selection sort. Each pass finds the maximum of the
// unsorted prefix and moves it to the end of that prefix.
func SimpleChoiceSort[E constraints.Integer](s []E, pred Predicate[E], c *Counters) {
	n := len(s)
	for i := 0; i < n; i++ {
		top := 0
		for j := 1; j < n-i; j++ {
			c.Comparisons++
			if s[top] < s[j] {
				top = j
			}
		}
		c.Comparisons++
		if pred(s[top], s[n-i-1]) {
			swap(s, top, n-i-1, c)
		}
	}
}

// SimpleInsertSort sinks each new element through the sorted prefix by
// adjacent swaps, then always checks the first pair once more.
func SimpleInsertSort[E constraints.Integer](s []E, pred Predicate[E], c *Counters) {
	for i := 1; i < len(s); i++ {
		for j := i - 1; j != 0; j-- {
			c.Comparisons++
			if !pred(s[j], s[j+1]) {
				break
			}
			swap(s, j, j+1, c)
		}
		c.Comparisons++
		if pred(s[0], s[1]) {
			swap(s, 0, 1, c)
		}
	}
}

// ShaykerSort is the bidirectional bubble sort: a forward pass fixes the
// right end, a backward pass fixes the left end, until the window closes.
func ShaykerSort[E constraints.Integer](s []E, pred Predicate[E], c *Counters) {
	first, last := 0, len(s)
	for first != last {
		for i := first; i < last-1; i++ {
			c.Comparisons++
			if pred(s[i], s[i+1]) {
				swap(s, i, i+1, c)
			}
		}
		last--
		if first == last {
			break
		}
		for i := last - 1; i > first; i-- {
			c.Comparisons++
			if pred(s[i-1], s[i]) {
				swap(s, i-1, i, c)
			}
		}
		first++
	}
}

// siftDown restores heap order below node i of heap.
func siftDown[E constraints.Integer](heap []E, i int, pred Predicate[E], c *Counters) {
	if i >= len(heap)/2 {
		return
	}
	child := 2*i + 1
	c.Comparisons++
	if child+1 != len(heap) && pred(heap[child+1], heap[child]) {
		child++
	}
	c.Comparisons++
	if pred(heap[child], heap[i]) {
		swap(heap, child, i, c)
		siftDown(heap, child, pred, c)
	}
}

// HeapSort builds a heap ordered by pred, then repeatedly moves the root
// behind the shrinking heap.
func HeapSort[E constraints.Integer](s []E, pred Predicate[E], c *Counters) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, pred, c)
	}
	for last := n; last > 1; last-- {
		swap(s, 0, last-1, c)
		siftDown(s[:last-1], 0, pred, c)
	}
}

// intLog2 returns floor(log2(n)) for n > 0 and -1 for n == 0.
func intLog2(n int) int {
	return bits.Len(uint(n)) - 1
}

// ShellGaps returns the strides used by ShellSort for a range of n
// elements: log2(n), log2(log2(n)), ... down to 1.
func ShellGaps(n int) []int {
	var gaps []int
	for gap := intLog2(n); gap > 0; gap = intLog2(gap) {
		gaps = append(gaps, gap)
	}
	return gaps
}

// ShellSort runs a gapped insertion sort for every stride in ShellGaps.
func ShellSort[E constraints.Integer](s []E, pred Predicate[E], c *Counters) {
	for _, gap := range ShellGaps(len(s)) {
		for j := gap; j < len(s); j++ {
			for k := j - gap; k >= 0; k -= gap {
				c.Comparisons++
				if !pred(s[k], s[k+gap]) {
					break
				}
				swap(s, k, k+gap, c)
			}
		}
	}
}

// BinaryInsertSort finds each element's slot in the sorted prefix by
// binary search and opens it with single-position swaps.
func BinaryInsertSort[E constraints.Integer](s []E, pred Predicate[E], c *Counters) {
	for i := 1; i < len(s); i++ {
		l, r := 0, i
		for l != r {
			half := l + (r-l)/2
			c.Comparisons++
			if pred(s[half], s[i]) {
				r = half
			} else {
				l = half + 1
			}
		}
		for j := i; j != l; j-- {
			swap(s, j-1, j, c)
		}
	}
}

// QuickSort partitions around the last element after making sure the
// first element is not greater than it. The partition scan leaves the
// leading run of elements that belong left of the pivot in place and
// only starts swapping once it meets an element that does not.
func QuickSort[E constraints.Integer](s []E, pred Predicate[E], c *Counters) {
	last := len(s)
	if last <= 1 {
		return
	}
	c.Comparisons++
	if s[last-1] < s[0] {
		swap(s, last-1, 0, c)
	}
	pivot := s[last-1]
	wall := 0
	scanning := false
	for i := 1; i < last-1; i++ {
		c.Comparisons++
		switch {
		case scanning && pred(pivot, s[i]):
			swap(s, i, wall+1, c)
			wall++
		case !scanning && pred(pivot, s[i]):
			wall++
		default:
			scanning = true
		}
	}
	QuickSort(s[:wall+1], pred, c)
	QuickSort(s[wall+1:], pred, c)
}
