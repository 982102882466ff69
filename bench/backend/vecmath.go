package backend

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/registry"
)

// ErrNoSIMD is returned by the vecmath probe when no vector unit is usable.
var ErrNoSIMD = errors.New("backend: no SIMD level available")

// Lanes returns the float64 lane width of the widest vector unit in f, or
// 0 when none is usable.
func Lanes(f cpu.Features) int {
	switch {
	case f.ForceGeneric:
		return 0
	case f.HasAVX512:
		return 8
	case f.HasAVX2, f.HasAVX:
		return 4
	case f.HasSSE2, f.HasNEON:
		return 2
	default:
		return 0
	}
}

// Vecmath registers algo-vecmath block kernels. Their lane width follows
// the vector unit in f; with none the backend still constructs but its
// probe fails.
func Vecmath(f cpu.Features) *registry.Backend[float64] {
	lanes := max(Lanes(f), 1)

	var zeros []float64
	imagZero := func(n int) []float64 {
		if len(zeros) < n {
			zeros = make([]float64, n)
		}
		return zeros[:n]
	}

	return registry.NewBackend[float64](fmt.Sprintf("vecmath_dx%d", lanes)).
		MustRegister("copy", adapter.Batch(func(in, out []float64) {
			vecmath.ScaleBlock(out, in, 1)
		}, lanes)).
		MustRegister("pow13", adapter.Batch(func(in, out []float64) {
			// x^13 = ((x^2 * x)^2)^2 * x
			vecmath.MulBlock(out, in, in)
			vecmath.MulBlockInPlace(out, in)
			vecmath.MulBlockInPlace(out, out)
			vecmath.MulBlockInPlace(out, out)
			vecmath.MulBlockInPlace(out, in)
		}, lanes)).
		MustRegister("fabs", adapter.Batch(func(in, out []float64) {
			vecmath.Magnitude(out, in, imagZero(len(in)))
		}, lanes)).
		MustRegister("sq", adapter.Batch(func(in, out []float64) {
			vecmath.Power(out, in, imagZero(len(in)))
		}, lanes))
}

// vecmathProbe fails when f offers no vector unit.
func vecmathProbe(f cpu.Features) error {
	if Lanes(f) == 0 {
		return ErrNoSIMD
	}
	return nil
}
