package backend

import (
	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/registry"
	"github.com/cwbudde/algo-mathbench/internal/landen"
)

// JacobiModulus is the modulus of the Jacobi elliptic benchmarks.
const JacobiModulus = 0.8

// jacobi is shared by the Landen backends; its sequence is fixed.
var jacobi = mustModulus(JacobiModulus)

func mustModulus(k float64) *landen.Modulus {
	m, err := landen.New(k)
	if err != nil {
		panic(err)
	}
	return m
}

// LandenPair returns K(k) and K'(k) by Landen descent.
func LandenPair() *registry.Backend[float64] {
	return registry.NewBackend[float64]("landen_dx2").
		MustRegister("ellipk", adapter.Pair(landen.EllipK))
}

// LandenBatch evaluates sn over a whole buffer with one precomputed
// Landen sequence.
func LandenBatch() *registry.Backend[float64] {
	return registry.NewBackend[float64]("landen_dx1").
		MustRegister("jacobi_sn", adapter.Batch(jacobi.SN, 1))
}

// LandenComplex evaluates cd at complex arguments.
func LandenComplex() *registry.Backend[complex128] {
	return registry.NewBackend[complex128]("landen_cdx1").
		MustRegister("jacobi_cd", adapter.Scalar(jacobi.CD))
}
