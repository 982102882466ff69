package backend

import (
	"math"

	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/registry"
)

type scalarFunc struct {
	name string
	f    func(float64) float64
}

// stdFunctions is the Go math table shared by the std backends.
func stdFunctions() []scalarFunc {
	return []scalarFunc{
		{"sin", math.Sin},
		{"cos", math.Cos},
		{"tan", math.Tan},
		{"sinh", math.Sinh},
		{"cosh", math.Cosh},
		{"tanh", math.Tanh},
		{"asin", math.Asin},
		{"acos", math.Acos},
		{"atan", math.Atan},
		{"asinh", math.Asinh},
		{"acosh", math.Acosh},
		{"atanh", math.Atanh},
		{"exp", math.Exp},
		{"exp2", math.Exp2},
		{"exp10", exp10},
		{"expm1", math.Expm1},
		{"log", math.Log},
		{"log2", math.Log2},
		{"log10", math.Log10},
		{"log1p", math.Log1p},
		{"pow3.5", func(x float64) float64 { return math.Pow(x, 3.5) }},
		{"pow13", func(x float64) float64 { return math.Pow(x, 13) }},
		{"sqrt", math.Sqrt},
		{"rsqrt", func(x float64) float64 { return 1 / math.Sqrt(x) }},
		{"cbrt", math.Cbrt},
		{"erf", math.Erf},
		{"erfc", math.Erfc},
		{"erfinv", math.Erfinv},
		{"lgamma", lgamma},
		{"tgamma", math.Gamma},
		{"sin_pi", func(x float64) float64 { return math.Sin(math.Pi * x) }},
		{"cos_pi", func(x float64) float64 { return math.Cos(math.Pi * x) }},
		{"sinc", sinc},
		{"sinc_pi", func(x float64) float64 { return sinc(math.Pi * x) }},
		{"bessel_J0", math.J0},
		{"bessel_J1", math.J1},
		{"bessel_J2", func(x float64) float64 { return math.Jn(2, x) }},
		{"bessel_Y0", math.Y0},
		{"bessel_Y1", math.Y1},
		{"bessel_Y2", func(x float64) float64 { return math.Yn(2, x) }},
		{"hermite_0", func(x float64) float64 { return hermite(0, x) }},
		{"hermite_1", func(x float64) float64 { return hermite(1, x) }},
		{"hermite_2", func(x float64) float64 { return hermite(2, x) }},
		{"hermite_3", func(x float64) float64 { return hermite(3, x) }},
	}
}

func exp10(x float64) float64 { return math.Pow(10, x) }

func lgamma(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}

// sinc returns sin(x)/x with the removable singularity filled in.
func sinc(x float64) float64 {
	if math.Abs(x) < 0x1p-26 {
		return 1 - x*x/6
	}
	return math.Sin(x) / x
}

// hermite evaluates the physicists' Hermite polynomial H_n by the
// three-term recurrence H_{k+1} = 2x H_k - 2k H_{k-1}.
func hermite(n int, x float64) float64 {
	h0, h1 := 1.0, 2*x
	if n == 0 {
		return h0
	}
	for k := 1; k < n; k++ {
		h0, h1 = h1, 2*x*h1-2*float64(k)*h0
	}
	return h1
}

// StdScalar is the baseline: Go's math package one float64 at a time.
func StdScalar() *registry.Backend[float64] {
	b := registry.NewBackend[float64]("std_dx1")
	for _, fn := range stdFunctions() {
		b.MustRegister(fn.name, adapter.Scalar(fn.f))
	}
	return b
}

// StdFloat32 evaluates the math table through float32 casts.
func StdFloat32() *registry.Backend[float32] {
	b := registry.NewBackend[float32]("std_fx1")
	for _, fn := range stdFunctions() {
		f := fn.f
		b.MustRegister(fn.name, adapter.Scalar(func(x float32) float32 {
			return float32(f(float64(x)))
		}))
	}
	return b
}

// StdBlocked evaluates the math table in unrolled blocks of four.
func StdBlocked() *registry.Backend[float64] {
	b := registry.NewBackend[float64]("std_dx4")
	for _, fn := range stdFunctions() {
		b.MustRegister(fn.name, adapter.Blocked(fn.f, 4))
	}
	return b
}

// StdPair holds the two-output functions of the math package.
func StdPair() *registry.Backend[float64] {
	return registry.NewBackend[float64]("std_dx2").
		MustRegister("sincos", adapter.Pair(math.Sincos))
}
