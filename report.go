package sortbench

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Column labels carry their own tab padding so the report lines up on an
// 8-column terminal.
var (
	methodLabels = [MethodCount]string{
		"SIMPLE EXCHANGE\t", "SIMPLE CHOICE\t", "SIMPLE INSERT\t",
		"SHAYKER\t\t", "HEAP\t\t", "SHELL\t\t", "BINARY INSERT\t", "QUICK\t\t",
	}
	arrayLabels = [DistributionCount]string{
		"FORWARD\t", "BACK\t\t", "RANDOM\t\t",
	}
	metrics = [MetricCount]Metric{Comparisons, Swaps}
)

func writeSequence(buf *bytes.Buffer, d Distribution, s *Sequence) {
	buf.WriteString(d.arrayLabel())
	buf.WriteByte('\t')
	for _, v := range s {
		fmt.Fprintf(buf, "%d  ", v)
	}
	buf.WriteString("\n\n")
}

// WriteSequences prints each sequence as a labelled, space separated list.
func WriteSequences(w io.Writer, seqs *Sequences) error {
	var buf bytes.Buffer
	for _, d := range Distributions {
		writeSequence(&buf, d, seqs.Get(d))
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteSnapshot prints a "BEFOR:" banner, or "AFTER (<NAME>):" when after
// is set, followed by the sequences.
func WriteSnapshot(w io.Writer, a Algorithm, after bool, seqs *Sequences) error {
	banner := "BEFOR:\n"
	if after {
		banner = fmt.Sprintf("AFTER (%s):\n", a)
	}
	if _, err := io.WriteString(w, banner); err != nil {
		return err
	}
	return WriteSequences(w, seqs)
}

// WriteTable prints one line per (algorithm, distribution) pair for every
// algorithm with recorded results, bounded by '=' banners.
func WriteTable(w io.Writer, t *Table) error {
	var buf bytes.Buffer
	banner := strings.Repeat("=", BannerWidth)

	buf.WriteString("\n" + banner + "\n")
	for _, a := range t.Ran() {
		for _, d := range Distributions {
			fmt.Fprintf(&buf, "METHOD: %s  ARRAY: %s  ", methodLabels[a], arrayLabels[d])
			for _, m := range metrics {
				fmt.Fprintf(&buf, "%s:  %d\t", m, t.Get(a, d, m))
			}
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(banner + "\n")

	_, err := w.Write(buf.Bytes())
	return err
}
