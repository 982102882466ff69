// Package adapter exposes heterogeneous backend call shapes through one
// Evaluate contract.
//
// Four shapes are supported:
//
//   - [Scalar]: f(x) -> y, lifted to a batch by elementwise application
//   - [Batch]:  f(in, out) over a contiguous buffer with a native lane width
//   - [Pair]:   f(x) -> (y0, y1), two outputs per input
//   - [FromApproximant]: a prebuilt approximant evaluated like a batch
//
// The zero [Adapter] is absent: a backend without an implementation of a
// function returns it, and the timing harness turns it into an empty result.
package adapter

// Element is the set of buffer element types a backend can evaluate over.
type Element interface {
	float32 | float64 | complex128
}

// Kind identifies the call shape wrapped by an Adapter.
type Kind uint8

const (
	// KindAbsent marks a function the backend does not implement.
	KindAbsent Kind = iota
	// KindScalar wraps f(x) -> y.
	KindScalar
	// KindBatch wraps f(in, out) with a native lane width.
	KindBatch
	// KindPair wraps f(x) -> (y0, y1).
	KindPair
	// KindApproximant wraps a prebuilt piecewise-polynomial evaluator.
	KindApproximant
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindScalar:
		return "scalar"
	case KindBatch:
		return "batch"
	case KindPair:
		return "pair"
	case KindApproximant:
		return "approximant"
	default:
		return "unknown"
	}
}

// BatchEvaluator evaluates a prebuilt approximant over a buffer.
type BatchEvaluator interface {
	EvalBatch(in, out []float64)
}

// Adapter is a tagged variant over the supported call shapes. Only the
// field matching kind is set.
type Adapter[T Element] struct {
	kind   Kind
	lanes  int
	scalar func(T) T
	batch  func(in, out []T)
	pair   func(T) (T, T)
}

// Scalar wraps a scalar function.
func Scalar[T Element](f func(T) T) Adapter[T] {
	if f == nil {
		return Adapter[T]{}
	}
	return Adapter[T]{kind: KindScalar, lanes: 1, scalar: f}
}

// Batch wraps a buffer kernel that writes len(in) outputs. Callers must
// pass buffers whose length is a multiple of lanes; other lengths are
// undefined by contract and are not checked on the hot path.
func Batch[T Element](f func(in, out []T), lanes int) Adapter[T] {
	if f == nil {
		return Adapter[T]{}
	}
	if lanes < 1 {
		lanes = 1
	}
	return Adapter[T]{kind: KindBatch, lanes: lanes, batch: f}
}

// Blocked lifts a scalar function into a batch kernel that processes the
// buffer in fixed blocks of lanes elements with the block body unrolled.
// Elements past the last full block are left untouched.
func Blocked[T Element](f func(T) T, lanes int) Adapter[T] {
	if f == nil {
		return Adapter[T]{}
	}
	switch lanes {
	case 2:
		return Batch(func(in, out []T) {
			for i := 0; i+2 <= len(in); i += 2 {
				out[i] = f(in[i])
				out[i+1] = f(in[i+1])
			}
		}, 2)
	case 4:
		return Batch(func(in, out []T) {
			for i := 0; i+4 <= len(in); i += 4 {
				out[i] = f(in[i])
				out[i+1] = f(in[i+1])
				out[i+2] = f(in[i+2])
				out[i+3] = f(in[i+3])
			}
		}, 4)
	case 8:
		return Batch(func(in, out []T) {
			for i := 0; i+8 <= len(in); i += 8 {
				b := in[i : i+8 : i+8]
				o := out[i : i+8 : i+8]
				o[0], o[1], o[2], o[3] = f(b[0]), f(b[1]), f(b[2]), f(b[3])
				o[4], o[5], o[6], o[7] = f(b[4]), f(b[5]), f(b[6]), f(b[7])
			}
		}, 8)
	default:
		if lanes < 1 {
			lanes = 1
		}
		return Batch(func(in, out []T) {
			for i := 0; i+lanes <= len(in); i += lanes {
				for j := i; j < i+lanes; j++ {
					out[j] = f(in[j])
				}
			}
		}, lanes)
	}
}

// Pair wraps a function with two simultaneous results. The output buffer
// holds the pair for input i at out[2i] and out[2i+1].
func Pair[T Element](f func(T) (T, T)) Adapter[T] {
	if f == nil {
		return Adapter[T]{}
	}
	return Adapter[T]{kind: KindPair, lanes: 1, pair: f}
}

// FromApproximant wraps a prebuilt approximant.
func FromApproximant(e BatchEvaluator) Adapter[float64] {
	if e == nil {
		return Adapter[float64]{}
	}
	return Adapter[float64]{kind: KindApproximant, lanes: 1, batch: e.EvalBatch}
}

// Kind returns the wrapped call shape.
func (a Adapter[T]) Kind() Kind { return a.kind }

// Present reports whether the adapter wraps an implementation.
func (a Adapter[T]) Present() bool { return a.kind != KindAbsent }

// Lanes returns the native lane width; 1 for non-batch shapes, 0 when absent.
func (a Adapter[T]) Lanes() int { return a.lanes }

// Divides reports whether a buffer of n elements meets the lane precondition.
func (a Adapter[T]) Divides(n int) bool {
	return a.lanes > 0 && n%a.lanes == 0
}

// Width returns the number of outputs per input: 2 for pair adapters,
// 1 for the other shapes and 0 when absent.
func (a Adapter[T]) Width() int {
	switch a.kind {
	case KindAbsent:
		return 0
	case KindPair:
		return 2
	default:
		return 1
	}
}

// Evaluate writes Width()*len(in) results to out. It panics if out is too
// short or the adapter is absent.
func (a Adapter[T]) Evaluate(in, out []T) {
	if len(out) < a.Width()*len(in) {
		panic("adapter: output buffer too short")
	}

	switch a.kind {
	case KindScalar:
		f := a.scalar
		out = out[:len(in)]
		for i, x := range in {
			out[i] = f(x)
		}
	case KindBatch, KindApproximant:
		a.batch(in, out[:len(in)])
	case KindPair:
		f := a.pair
		out = out[:2*len(in)]
		for i, x := range in {
			out[2*i], out[2*i+1] = f(x)
		}
	default:
		panic("adapter: evaluate on absent adapter")
	}
}
