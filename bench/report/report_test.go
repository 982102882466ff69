package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cwbudde/algo-mathbench/bench/domain"
	"github.com/cwbudde/algo-mathbench/bench/harness"
)

func summary(label string, mean complex128, isComplex bool) harness.Summary {
	return harness.Summary{
		Label:   label,
		Size:    1000,
		Inputs:  1000,
		Repeats: 10,
		Elapsed: 10 * time.Millisecond,
		Domain:  domain.Domain{Lower: 0, Upper: 6.283185307179586},
		Mean:    mean,
		Complex: isComplex,
	}
}

func TestRowFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Row(summary("std_dx1_sin", 0.25, false))
	w.Separator()
	if err := w.Err(); err != nil {
		t.Fatal(err)
	}

	want := "std_dx1_sin:  1  0.25  [0, 6.2832]\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRowComplexMean(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Row(summary("cmplx_cdx1_exp", complex(1.5, -2), true))
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "(1.5-2i)") {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestRowsAligned(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Row(summary("std_dx1_sin", 0, false))
	w.Row(summary("chebtree_dx1_sin", 0, false))
	w.Separator()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if strings.Index(lines[0], "1 ") != strings.Index(lines[1], "1 ") {
		t.Fatalf("columns not aligned:\n%s", buf.String())
	}
}

func TestEmptySummaryWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Row(harness.Summary{Label: "std_dx1_not_a_function"})
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output = %q, want empty", buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestErrIsSticky(t *testing.T) {
	w := NewWriter(failWriter{})
	w.Row(summary("std_dx1_sin", 0, false))
	w.Separator()
	w.Row(summary("std_dx1_cos", 0, false))

	if err := w.Err(); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Err = %v", err)
	}
}
