package sortbench

// Table holds the counter values for every (algorithm, distribution) pair.
// Rows are written once by the driver and read by the reporter.
type Table struct {
	cells [MethodCount][DistributionCount][MetricCount]uint
	done  [MethodCount]bool
}

// Record stores c as the result of running a on d.
func (t *Table) Record(a Algorithm, d Distribution, c Counters) {
	t.cells[a][d][Comparisons] = c.Comparisons
	t.cells[a][d][Swaps] = c.Swaps
	t.done[a] = true
}

// Get returns a single cell.
func (t *Table) Get(a Algorithm, d Distribution, m Metric) uint {
	return t.cells[a][d][m]
}

// Counters returns both metrics recorded for (a, d).
func (t *Table) Counters(a Algorithm, d Distribution) Counters {
	return Counters{
		Comparisons: t.cells[a][d][Comparisons],
		Swaps:       t.cells[a][d][Swaps],
	}
}

// Done reports whether any result was recorded for a.
func (t *Table) Done(a Algorithm) bool {
	return t.done[a]
}

// Ran returns the algorithms with recorded results in benchmark order.
func (t *Table) Ran() []Algorithm {
	var algs []Algorithm
	for _, a := range Algorithms {
		if t.done[a] {
			algs = append(algs, a)
		}
	}
	return algs
}
