package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDomain is returned when a domain is empty, reversed, or not finite.
var ErrInvalidDomain = errors.New("domain: invalid domain")

// Domain is the input interval of one function.
type Domain struct {
	Lower float64
	Upper float64
}

// Unit is the canonical (0, 1) interval. Mapping with it is the identity.
var Unit = Domain{Lower: 0, Upper: 1}

// New validates and returns the domain (lo, hi).
func New(lo, hi float64) (Domain, error) {
	d := Domain{Lower: lo, Upper: hi}
	if err := d.Validate(); err != nil {
		return Domain{}, err
	}
	return d, nil
}

// Validate reports whether Lower < Upper and both bounds and the width
// are finite.
func (d Domain) Validate() error {
	if math.IsNaN(d.Lower) || math.IsNaN(d.Upper) || math.IsInf(d.Lower, 0) || math.IsInf(d.Upper, 0) {
		return fmt.Errorf("%w: non-finite bound [%v, %v]", ErrInvalidDomain, d.Lower, d.Upper)
	}
	if !(d.Lower < d.Upper) {
		return fmt.Errorf("%w: lower %v must be below upper %v", ErrInvalidDomain, d.Lower, d.Upper)
	}
	if math.IsInf(d.Width(), 0) {
		return fmt.Errorf("%w: width of [%v, %v] overflows", ErrInvalidDomain, d.Lower, d.Upper)
	}
	return nil
}

// Width returns Upper - Lower.
func (d Domain) Width() float64 {
	return d.Upper - d.Lower
}

// Contains reports whether x lies in the closed interval [Lower, Upper].
func (d Domain) Contains(x float64) bool {
	return x >= d.Lower && x <= d.Upper
}

func (d Domain) String() string {
	return fmt.Sprintf("[%.5g, %.5g]", d.Lower, d.Upper)
}

// Map returns sample mapped into d: v*(Upper-Lower)+Lower for every element.
// The input is not modified. The map is computed in float64; results that
// round past a bound are clamped to it, so a sample in [0, 1] never leaves
// [Lower, Upper]. For float32 the bounds are first narrowed to the finite
// float32 range.
func Map[T float32 | float64](sample []T, d Domain) []T {
	lo, hi := d.Lower, d.Upper
	if _, narrow := any(sample).([]float32); narrow {
		lo = max(lo, -math.MaxFloat32)
		hi = min(hi, math.MaxFloat32)
	}

	out := make([]T, len(sample))
	delta := d.Width()
	lower, upper := T(lo), T(hi)
	for i, v := range sample {
		x := T(min(max(float64(v)*delta+d.Lower, lo), hi))
		// The narrowing cast can still round past a bound.
		switch {
		case x > upper:
			x = upper
		case x < lower:
			x = lower
		}
		out[i] = x
	}
	return out
}

// MapComplex is the complex analog of Map. The real offset only shifts the
// real part; both parts are scaled by the domain width.
func MapComplex(sample []complex128, d Domain) []complex128 {
	out := make([]complex128, len(sample))
	delta := complex(d.Width(), 0)
	lower := complex(d.Lower, 0)
	for i, v := range sample {
		out[i] = v*delta + lower
	}
	return out
}
