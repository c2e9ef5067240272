package sortbench

import (
	"fmt"
	"strings"

	"github.com/xrash/smetrics"
	"golang.org/x/exp/constraints"
)

// Algorithm identifies one of the benchmarked sorts.
type Algorithm uint8

const (
	SimpleExchange Algorithm = iota
	SimpleChoice
	SimpleInsert
	Shayker
	Heap
	Shell
	BinaryInsert
	Quick
)

// Algorithms lists every algorithm in benchmark order.
var Algorithms = [MethodCount]Algorithm{
	SimpleExchange, SimpleChoice, SimpleInsert, Shayker,
	Heap, Shell, BinaryInsert, Quick,
}

var algorithmNames = [MethodCount]string{
	"SIMPLE EXCHANGE", "SIMPLE CHOICE", "SIMPLE INSERT", "SHAYKER",
	"HEAP", "SHELL", "BINARY INSERT", "QUICK",
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// suggestion threshold for Jaro-Winkler similarity
const minSimilarity = 0.8

func normalizeName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, name)
}

// ParseAlgorithm resolves a name such as "binary insert", "BINARY_INSERT"
// or "binary-insert". Unknown names produce an error naming the closest
// known algorithm when one is similar enough.
func ParseAlgorithm(name string) (Algorithm, error) {
	norm := normalizeName(name)
	for i, known := range algorithmNames {
		if norm == known {
			return Algorithm(i), nil
		}
	}

	best, bestScore := "", 0.0
	for _, known := range algorithmNames {
		score := smetrics.JaroWinkler(norm, known, 0.7, 4)
		if score > bestScore {
			best, bestScore = known, score
		}
	}
	if bestScore >= minSimilarity {
		return 0, fmt.Errorf("unknown sort algorithm %q, did you mean %q?", name, best)
	}
	return 0, fmt.Errorf("unknown sort algorithm %q", name)
}

// ParseAlgorithms resolves a list of names, dropping duplicates and
// returning the result in benchmark order. An empty list selects every
// algorithm.
func ParseAlgorithms(names []string) ([]Algorithm, error) {
	if len(names) == 0 {
		return Algorithms[:], nil
	}
	var selected [MethodCount]bool
	for _, name := range names {
		a, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		selected[a] = true
	}
	var algs []Algorithm
	for _, a := range Algorithms {
		if selected[a] {
			algs = append(algs, a)
		}
	}
	return algs, nil
}

// SortFunc runs algorithm a over s with pred, accumulating into c.
func SortFunc[E constraints.Integer](a Algorithm, s []E, pred Predicate[E], c *Counters) {
	switch a {
	case SimpleExchange:
		SimpleExchangeSort(s, pred, c)
	case SimpleChoice:
		SimpleChoiceSort(s, pred, c)
	case SimpleInsert:
		SimpleInsertSort(s, pred, c)
	case Shayker:
		ShaykerSort(s, pred, c)
	case Heap:
		HeapSort(s, pred, c)
	case Shell:
		ShellSort(s, pred, c)
	case BinaryInsert:
		BinaryInsertSort(s, pred, c)
	case Quick:
		QuickSort(s, pred, c)
	default:
		panic(fmt.Sprintf("sortbench: unknown algorithm %d", uint8(a)))
	}
}

// Sort runs algorithm a over s in ascending order.
func Sort[E constraints.Integer](a Algorithm, s []E, c *Counters) {
	SortFunc(a, s, Ascending[E], c)
}
