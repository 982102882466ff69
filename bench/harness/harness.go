package harness

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/domain"
)

// minElapsed is the clock resolution floor of a non-empty result.
const minElapsed = time.Nanosecond

// Result is the outcome of timing one adapter. It owns its output buffer.
type Result[T adapter.Element] struct {
	label   string
	in      int
	out     []T
	repeats int
	elapsed time.Duration
	domain  domain.Domain
}

// Time evaluates a over in repeats times into one output buffer and
// measures the total wall time. An absent adapter yields an empty result
// without touching the clock. repeats below 1 count as 1.
//
// The output buffer is overwritten on every repeat, so later repeats may
// run against a warm cache.
func Time[T adapter.Element](label string, a adapter.Adapter[T], in []T, repeats int, d domain.Domain) Result[T] {
	if !a.Present() {
		return Result[T]{label: label, domain: d}
	}
	if repeats < 1 {
		repeats = 1
	}

	out := make([]T, a.Width()*len(in))
	start := time.Now()
	for r := 0; r < repeats; r++ {
		a.Evaluate(in, out)
	}
	elapsed := max(time.Since(start), minElapsed)

	return Result[T]{
		label:   label,
		in:      len(in),
		out:     out,
		repeats: repeats,
		elapsed: elapsed,
		domain:  d,
	}
}

// Label returns "backend_function".
func (r Result[T]) Label() string { return r.label }

// Size returns the length of the output buffer; 0 for an empty result.
func (r Result[T]) Size() int { return len(r.out) }

// Empty reports whether the backend had no implementation.
func (r Result[T]) Empty() bool { return len(r.out) == 0 }

// Output returns the buffer written by the last repeat.
func (r Result[T]) Output() []T { return r.out }

// Repeats returns the number of timed evaluations of the buffer.
func (r Result[T]) Repeats() int { return r.repeats }

// Elapsed returns the total wall time of all repeats.
func (r Result[T]) Elapsed() time.Duration { return r.elapsed }

// Domain returns the interval the input was mapped into.
func (r Result[T]) Domain() domain.Domain { return r.domain }

// Throughput returns millions of input evaluations per second.
func (r Result[T]) Throughput() float64 {
	return r.Summary().Throughput()
}

// Mean returns the arithmetic mean of the output buffer. Real outputs are
// returned in the real part.
func (r Result[T]) Mean() complex128 {
	if len(r.out) == 0 {
		return 0
	}
	var sum complex128
	switch out := any(r.out).(type) {
	case []float32:
		var s float64
		for _, v := range out {
			s += float64(v)
		}
		sum = complex(s, 0)
	case []float64:
		var s float64
		for _, v := range out {
			s += v
		}
		sum = complex(s, 0)
	case []complex128:
		for _, v := range out {
			sum += v
		}
	}
	return sum / complex(float64(len(r.out)), 0)
}

// Summary returns the element-type-free view of r used for reporting.
func (r Result[T]) Summary() Summary {
	_, isComplex := any(r.out).([]complex128)
	s := Summary{
		Label:   r.label,
		Size:    len(r.out),
		Inputs:  r.in,
		Repeats: r.repeats,
		Elapsed: r.elapsed,
		Domain:  r.domain,
		Complex: isComplex,
	}
	if !r.Empty() {
		s.Mean = r.Mean()
	}
	return s
}

// Summary is one reportable result.
type Summary struct {
	Label   string
	Size    int // output elements
	Inputs  int // input elements per repeat
	Repeats int
	Elapsed time.Duration
	Domain  domain.Domain
	Mean    complex128
	Complex bool
}

// Empty reports whether there is nothing to report.
func (s Summary) Empty() bool { return s.Size == 0 }

// Throughput returns Inputs*Repeats/seconds/1e6, or 0 when empty.
func (s Summary) Throughput() float64 {
	if s.Empty() || s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Inputs) * float64(s.Repeats) / s.Elapsed.Seconds() / 1e6
}

func (s Summary) String() string {
	if s.Empty() {
		return s.Label + ": empty"
	}
	return fmt.Sprintf("%s: %.6g Meval/s over %d x %d in %v", s.Label, s.Throughput(), s.Inputs, s.Repeats, s.Elapsed)
}
