package adapter

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-mathbench/internal/testutil"
)

type doubler struct{ calls int }

func (d *doubler) EvalBatch(in, out []float64) {
	d.calls++
	for i, x := range in {
		out[i] = 2 * x
	}
}

func TestZeroAdapterIsAbsent(t *testing.T) {
	var a Adapter[float64]
	if a.Present() {
		t.Fatal("zero adapter reports present")
	}
	if a.Kind() != KindAbsent || a.Width() != 0 || a.Lanes() != 0 {
		t.Fatalf("zero adapter: kind=%v width=%d lanes=%d", a.Kind(), a.Width(), a.Lanes())
	}
	if Scalar[float64](nil).Present() || Batch[float64](nil, 4).Present() || Pair[float64](nil).Present() {
		t.Fatal("nil function produced a present adapter")
	}
	if FromApproximant(nil).Present() {
		t.Fatal("nil approximant produced a present adapter")
	}
}

func TestEvaluateAbsentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	var a Adapter[float32]
	a.Evaluate([]float32{1}, make([]float32, 1))
}

func TestEvaluateShortOutputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Pair(math.Sincos).Evaluate([]float64{1, 2}, make([]float64, 3))
}

func TestScalarSinScenario(t *testing.T) {
	in := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi}
	out := make([]float64, len(in))

	a := Scalar(math.Sin)
	if a.Kind() != KindScalar || a.Width() != 1 {
		t.Fatalf("kind=%v width=%d", a.Kind(), a.Width())
	}
	a.Evaluate(in, out)
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 1, 0, -1, 0}, 1e-6)
}

func TestBatchPassesWholeBuffer(t *testing.T) {
	var seen int
	a := Batch(func(in, out []float32) {
		seen = len(in)
		copy(out, in)
	}, 8)

	if !a.Divides(16) || a.Divides(12) {
		t.Fatal("Divides does not honor lane width 8")
	}

	in := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	out := make([]float32, len(in))
	a.Evaluate(in, out)

	if seen != len(in) {
		t.Fatalf("kernel saw %d elements, want %d", seen, len(in))
	}
	testutil.RequireSliceNearlyEqual(t, out, in, 0)
}

func TestBlockedMatchesScalar(t *testing.T) {
	in := testutil.Linspace(-3, 3, 48)
	want := make([]float64, len(in))
	Scalar(math.Tanh).Evaluate(in, want)

	for _, lanes := range []int{1, 2, 3, 4, 8} {
		a := Blocked(math.Tanh, lanes)
		if a.Lanes() != lanes || a.Kind() != KindBatch {
			t.Fatalf("lanes=%d: got lanes=%d kind=%v", lanes, a.Lanes(), a.Kind())
		}
		got := make([]float64, len(in))
		a.Evaluate(in, got)
		testutil.RequireSliceNearlyEqual(t, got, want, 0)
	}
}

func TestBlockedLeavesTailUntouched(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6}
	out := []float64{-1, -1, -1, -1, -1, -1}
	Blocked(func(x float64) float64 { return x * 10 }, 4).Evaluate(in, out)
	testutil.RequireSliceNearlyEqual(t, out, []float64{10, 20, 30, 40, -1, -1}, 0)
}

func TestPairLayout(t *testing.T) {
	in := []float64{0, math.Pi / 2}
	out := make([]float64, 4)

	a := Pair(math.Sincos)
	if a.Width() != 2 {
		t.Fatalf("Width = %d, want 2", a.Width())
	}
	a.Evaluate(in, out)
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 1, 1, 0}, 1e-15)
}

func TestPairComplex(t *testing.T) {
	z := complex(0.3, -0.7)
	out := make([]complex128, 2)
	Pair(func(z complex128) (complex128, complex128) {
		return cmplx.Sin(z), cmplx.Cos(z)
	}).Evaluate([]complex128{z}, out)

	if cmplx.Abs(out[0]-cmplx.Sin(z)) > 0 || cmplx.Abs(out[1]-cmplx.Cos(z)) > 0 {
		t.Fatalf("pair output = %v", out)
	}
}

func TestFromApproximant(t *testing.T) {
	d := &doubler{}
	a := FromApproximant(d)
	if a.Kind() != KindApproximant || a.Width() != 1 {
		t.Fatalf("kind=%v width=%d", a.Kind(), a.Width())
	}

	out := make([]float64, 3)
	a.Evaluate([]float64{1, 2, 3}, out)
	a.Evaluate([]float64{1, 2, 3}, out)

	if d.calls != 2 {
		t.Fatalf("approximant evaluated %d times, want 2", d.calls)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{2, 4, 6}, 0)
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindAbsent:      "absent",
		KindScalar:      "scalar",
		KindBatch:       "batch",
		KindPair:        "pair",
		KindApproximant: "approximant",
		Kind(99):        "unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
