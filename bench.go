package sortbench

import (
	"fmt"
	"io"
	"log"
)

// Bench runs the selected algorithms over freshly generated sequences and
// collects their counters into a Table.
type Bench struct {
	Config     *ToolConfig
	Algorithms []Algorithm
	Out        io.Writer
	source     Source
	sequences  Sequences
}

// NewBench validates config and prepares a Bench writing snapshots to out.
func NewBench(config *ToolConfig, out io.Writer) (*Bench, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if out == nil {
		out = io.Discard
	}
	algs, err := ParseAlgorithms(config.Methods)
	if err != nil {
		return nil, fmt.Errorf("invalid methods: %w", err)
	}
	return &Bench{
		Config:     config,
		Algorithms: algs,
		Out:        out,
		source:     NewSource(config.Seed),
	}, nil
}

// Measure resets a fresh pair of counters, sorts s ascending with a and
// returns the counters.
func Measure(a Algorithm, s []Elem) Counters {
	var c Counters
	c.Reset()
	Sort(a, s, &c)
	return c
}

// Run benchmarks every selected algorithm in order. Each algorithm gets
// newly generated sequences.
func (b *Bench) Run() (*Table, error) {
	table := &Table{}
	for _, a := range b.Algorithms {
		if err := b.runAlgorithm(a, table); err != nil {
			return table, err
		}
	}
	return table, nil
}

func (b *Bench) runAlgorithm(a Algorithm, table *Table) error {
	b.sequences.Fill(b.source)
	if b.Config.Snapshots {
		if err := WriteSnapshot(b.Out, a, false, &b.sequences); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	for _, d := range Distributions {
		seq := b.sequences.Get(d)
		before := *seq

		c := Measure(a, seq[:])
		table.Record(a, d, c)

		if DEBUG {
			log.Printf("%s on %s: %d comparisons, %d swaps", a, d, c.Comparisons, c.Swaps)
		}

		if b.Config.Verify {
			eval := Evaluate(before[:], seq[:], Ascending[Elem])
			if reason := Check(eval); reason != 0 {
				return fmt.Errorf("%s on %s array: %s (fidelity %d, inversions %d)",
					a, d, reason, eval.SetFidelity, eval.Inversions)
			}
		}
	}

	if b.Config.Snapshots {
		if err := WriteSnapshot(b.Out, a, true, &b.sequences); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}
	return nil
}
