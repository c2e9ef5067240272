package sortbench

import "golang.org/x/exp/constraints"

// Predicate reports whether a must be moved after b. Algorithms swap a
// compared pair when it returns true.
type Predicate[E constraints.Integer] func(a, b E) bool

// Ascending is the default predicate: it orders elements from smallest
// to largest.
func Ascending[E constraints.Integer](a, b E) bool {
	return a > b
}

// Descending orders elements from largest to smallest.
func Descending[E constraints.Integer](a, b E) bool {
	return a < b
}
