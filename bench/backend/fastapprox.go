package backend

import (
	"math"

	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/registry"
)

// FastApprox registers the algo-approx fast scalar functions. The base-2
// and base-10 variants are derived from the natural ones by a scale.
func FastApprox() *registry.Backend[float64] {
	return registry.NewBackend[float64]("fastapprox_dx1").
		MustRegister("exp", adapter.Scalar(func(x float64) float64 {
			return approx.FastExp(x)
		})).
		MustRegister("log", adapter.Scalar(func(x float64) float64 {
			return approx.FastLog(x)
		})).
		MustRegister("sqrt", adapter.Scalar(func(x float64) float64 {
			return approx.FastSqrt(x)
		})).
		MustRegister("exp2", adapter.Scalar(func(x float64) float64 {
			return approx.FastExp(x * math.Ln2)
		})).
		MustRegister("log2", adapter.Scalar(func(x float64) float64 {
			return approx.FastLog(x) * math.Log2E
		})).
		MustRegister("log10", adapter.Scalar(func(x float64) float64 {
			return approx.FastLog(x) * math.Log10E
		})).
		MustRegister("rsqrt", adapter.Scalar(func(x float64) float64 {
			return 1 / approx.FastSqrt(x)
		}))
}
