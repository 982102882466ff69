package backend

import (
	"math/cmplx"

	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/registry"
)

// Complex evaluates math/cmplx one complex128 at a time.
func Complex() *registry.Backend[complex128] {
	b := registry.NewBackend[complex128]("cmplx_cdx1")
	for name, f := range map[string]func(complex128) complex128{
		"sin":   cmplx.Sin,
		"cos":   cmplx.Cos,
		"tan":   cmplx.Tan,
		"sinh":  cmplx.Sinh,
		"cosh":  cmplx.Cosh,
		"tanh":  cmplx.Tanh,
		"asin":  cmplx.Asin,
		"acos":  cmplx.Acos,
		"atan":  cmplx.Atan,
		"exp":   cmplx.Exp,
		"log":   cmplx.Log,
		"log10": cmplx.Log10,
		"sqrt":  cmplx.Sqrt,
	} {
		b.MustRegister(name, adapter.Scalar(f))
	}
	return b
}

// ComplexPair holds paired complex functions.
func ComplexPair() *registry.Backend[complex128] {
	return registry.NewBackend[complex128]("cmplx_cdx2").
		MustRegister("sincos", adapter.Pair(func(z complex128) (complex128, complex128) {
			return cmplx.Sin(z), cmplx.Cos(z)
		})).
		MustRegister("sinhcosh", adapter.Pair(func(z complex128) (complex128, complex128) {
			return cmplx.Sinh(z), cmplx.Cosh(z)
		}))
}
