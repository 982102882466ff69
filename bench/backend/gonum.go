package backend

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/registry"
)

// riemannZeta returns zeta(x) for x >= 1 and NaN below, where the
// underlying Hurwitz zeta panics.
func riemannZeta(x float64) float64 {
	if !(x >= 1) {
		return math.NaN()
	}
	return mathext.Zeta(x, 1)
}

// Elliptic integrals take the modulus k; gonum takes the parameter m = k^2.
func completeK(k float64) float64 { return mathext.CompleteK(k * k) }

func completeE(k float64) float64 { return mathext.CompleteE(k * k) }

// Gonum registers special functions from gonum's mathext.
func Gonum() *registry.Backend[float64] {
	return registry.NewBackend[float64]("gonum_dx1").
		MustRegister("digamma", adapter.Scalar(mathext.Digamma)).
		MustRegister("riemann_zeta", adapter.Scalar(riemannZeta)).
		MustRegister("ndtri", adapter.Scalar(mathext.NormalQuantile)).
		MustRegister("ellipk", adapter.Scalar(completeK)).
		MustRegister("ellipe", adapter.Scalar(completeE))
}

// GonumPair returns K(k) together with its complement K'(k).
func GonumPair() *registry.Backend[float64] {
	return registry.NewBackend[float64]("gonum_dx2").
		MustRegister("ellipk", adapter.Pair(func(k float64) (float64, float64) {
			m := k * k
			return mathext.CompleteK(m), mathext.CompleteK(1 - m)
		}))
}
