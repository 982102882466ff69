package chebtree

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// fitter fits one box at a time. The FFT plan and scratch buffers are
// shared by every box of one build.
type fitter struct {
	f     func(float64) float64
	order int
	plan  *algofft.Plan[complex128]

	lobatto []float64 // cos(pi*k/n), k = 0..n
	probes  []float64 // cos(pi*(k+0.5)/n), k = 0..n-1
	ext     []complex128
	freq    []complex128
	evals   int
}

func newFitter(f func(float64) float64, order int) (*fitter, error) {
	plan, err := algofft.NewPlan64(2 * order)
	if err != nil {
		return nil, fmt.Errorf("chebtree: failed to create FFT plan: %w", err)
	}

	ft := &fitter{
		f:       f,
		order:   order,
		plan:    plan,
		lobatto: make([]float64, order+1),
		probes:  make([]float64, order),
		ext:     make([]complex128, 2*order),
		freq:    make([]complex128, 2*order),
	}
	n := float64(order)
	for k := range ft.lobatto {
		ft.lobatto[k] = math.Cos(math.Pi * float64(k) / n)
	}
	for k := range ft.probes {
		ft.probes[k] = math.Cos(math.Pi * (float64(k) + 0.5) / n)
	}
	return ft, nil
}

// fit computes the Chebyshev coefficients of f on [lo, hi] into coeffs and
// returns the largest scaled error at the probe points. A NaN error means
// the oracle or the fit produced a non-finite value.
func (ft *fitter) fit(lo, hi float64, coeffs []float64) (float64, error) {
	n := ft.order
	half := 0.5 * (hi - lo)
	mid := lo + half

	// Even extension of the Lobatto samples: f0..fn, f(n-1)..f1.
	for k := 0; k <= n; k++ {
		ft.ext[k] = complex(ft.f(mid+half*ft.lobatto[k]), 0)
	}
	for k := 1; k < n; k++ {
		ft.ext[2*n-k] = ft.ext[k]
	}
	ft.evals += n + 1

	if err := ft.plan.Forward(ft.freq, ft.ext); err != nil {
		return math.NaN(), fmt.Errorf("chebtree: forward FFT failed: %w", err)
	}

	inv := 1 / float64(n)
	for j := 1; j < n; j++ {
		coeffs[j] = real(ft.freq[j]) * inv
	}
	coeffs[0] = 0.5 * real(ft.freq[0]) * inv
	coeffs[n] = 0.5 * real(ft.freq[n]) * inv

	maxErr := 0.0
	for _, s := range ft.probes {
		want := ft.f(mid + half*s)
		ft.evals++
		e := math.Abs(clenshaw(coeffs, s)-want) / math.Max(1, math.Abs(want))
		if math.IsNaN(e) {
			return math.NaN(), nil
		}
		if e > maxErr {
			maxErr = e
		}
	}
	return maxErr, nil
}

// clenshaw evaluates sum(c[j]*T_j(s)) for s in [-1, 1].
func clenshaw(c []float64, s float64) float64 {
	var b1, b2 float64
	s2 := 2 * s
	for j := len(c) - 1; j >= 1; j-- {
		b1, b2 = s2*b1-b2+c[j], b1
	}
	return s*b1 - b2 + c[0]
}
