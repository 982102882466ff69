// Package harness times one evaluation adapter over one mapped input.
//
// A [Sample] is drawn once per run configuration and shared, unmapped, by
// every backend and function. [Input] maps it into a function's domain and
// [Time] measures repeated full-buffer evaluations with the monotonic clock.
package harness

import (
	"math/rand/v2"

	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/domain"
)

// Sample is the canonical input of one configuration, drawn from [0, 1).
type Sample struct {
	f64  []float64
	f32  []float32
	c128 []complex128
}

// NewSample draws n values from a PCG generator seeded with seed. The
// float32 slice is a cast of the float64 one; the complex slice draws its
// imaginary parts from the same stream.
func NewSample(n int, seed uint64) *Sample {
	if n < 0 {
		n = 0
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	s := &Sample{
		f64:  make([]float64, n),
		f32:  make([]float32, n),
		c128: make([]complex128, n),
	}
	for i := range s.f64 {
		v := rng.Float64()
		s.f64[i] = v
		s.f32[i] = float32(v)
	}
	for i, v := range s.f64 {
		s.c128[i] = complex(v, rng.Float64())
	}
	// float32 rounding can reach 1.0; keep the half-open interval.
	for i, v := range s.f32 {
		if v >= 1 {
			s.f32[i] = 0x1.fffffep-1
		}
	}
	return s
}

// Len returns the number of sample points.
func (s *Sample) Len() int { return len(s.f64) }

// Float64 returns the canonical sample. Callers must not modify it.
func (s *Sample) Float64() []float64 { return s.f64 }

// Float32 returns the float32 cast of the sample.
func (s *Sample) Float32() []float32 { return s.f32 }

// Complex128 returns the complex sample.
func (s *Sample) Complex128() []complex128 { return s.c128 }

// Input returns the sample slice of element type T mapped into d.
func Input[T adapter.Element](s *Sample, d domain.Domain) []T {
	var in any
	switch any(*new(T)).(type) {
	case float32:
		in = domain.Map(s.f32, d)
	case float64:
		in = domain.Map(s.f64, d)
	case complex128:
		in = domain.MapComplex(s.c128, d)
	}
	return in.([]T)
}
