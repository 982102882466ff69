// Package report formats benchmark summaries as aligned text rows.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-mathbench/bench/harness"
)

// Writer writes one row per non-empty summary. Rows of one group are
// aligned and flushed by Separator.
type Writer struct {
	tw  *tabwriter.Writer
	err error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

// Row writes s as "label: throughput mean [lo, hi]". Empty summaries are
// skipped.
func (w *Writer) Row(s harness.Summary) {
	if s.Empty() || w.err != nil {
		return
	}
	_, err := fmt.Fprintf(w.tw, "%s:\t%.6g\t%s\t[%.5g, %.5g]\n",
		s.Label, s.Throughput(), formatMean(s), s.Domain.Lower, s.Domain.Upper)
	w.setErr(err)
}

// Separator ends a group with a blank line and flushes it.
func (w *Writer) Separator() {
	if w.err != nil {
		return
	}
	if _, err := fmt.Fprintln(w.tw); err != nil {
		w.setErr(err)
		return
	}
	w.setErr(w.tw.Flush())
}

// Flush writes any buffered rows.
func (w *Writer) Flush() error {
	if w.err == nil {
		w.setErr(w.tw.Flush())
	}
	return w.err
}

// Err returns the first write error.
func (w *Writer) Err() error { return w.err }

func (w *Writer) setErr(err error) {
	if w.err == nil && err != nil {
		w.err = fmt.Errorf("report: %w", err)
	}
}

func formatMean(s harness.Summary) string {
	if s.Complex {
		return fmt.Sprintf("(%.15g%+.15gi)", real(s.Mean), imag(s.Mean))
	}
	return fmt.Sprintf("%.15g", real(s.Mean))
}
