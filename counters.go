package sortbench

// Counters tallies the work done by one sort call. It is owned by the
// caller and passed into every algorithm; it is not safe for concurrent use.
type Counters struct {
	Comparisons uint
	Swaps       uint
}

// Reset zeroes both counters.
func (c *Counters) Reset() {
	c.Comparisons = 0
	c.Swaps = 0
}

// Metric selects one of the two counters.
type Metric uint8

const (
	Comparisons Metric = iota
	Swaps
)

func (m Metric) String() string {
	switch m {
	case Comparisons:
		return "COMPARISION"
	case Swaps:
		return "PERMUTATION"
	}
	return "UNKNOWN"
}

// Value returns the counter named by m.
func (c Counters) Value(m Metric) uint {
	if m == Swaps {
		return c.Swaps
	}
	return c.Comparisons
}
