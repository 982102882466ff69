// Package landen evaluates complete elliptic integrals and Jacobi elliptic
// functions by descending Landen transformations.
//
// Arguments of the Jacobi functions are in units of the quarter period
// K(k): SN(1) is sn(K, k) = 1.
package landen

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrInvalidModulus is returned for a modulus outside [0, 1).
var ErrInvalidModulus = errors.New("landen: modulus must be in [0, 1)")

// Tolerance is the modulus below which the descent stops.
const Tolerance = 1e-15

// Moduli with a complement below smallModulus use the logarithmic
// asymptote of K instead of the descent.
const smallModulus = 1e-6

// Sequence returns the descending Landen moduli of k, stopping once a
// modulus falls to tol or below. k = 0 yields [0].
func Sequence(k, tol float64) []float64 {
	if k == 0 {
		return []float64{0}
	}
	var seq []float64
	for k > tol {
		t := k / (1 + math.Sqrt((1-k)*(1+k)))
		k = t * t
		seq = append(seq, k)
	}
	return seq
}

// completeK returns K from the Landen sequence of its modulus:
// K = pi/2 * prod(1 + v[i]).
func completeK(seq []float64) float64 {
	p := 1.0
	for _, v := range seq {
		p *= 1 + v
	}
	return p * math.Pi / 2
}

// EllipK returns the complete elliptic integral of the first kind K(k) and
// its complement K'(k) = K(sqrt(1-k^2)). K(1) and K'(0) are +Inf; moduli
// outside [0, 1] yield NaN.
func EllipK(k float64) (float64, float64) {
	if !(k >= 0 && k <= 1) {
		return math.NaN(), math.NaN()
	}
	return quarter(k), quarter(math.Sqrt((1 - k) * (1 + k)))
}

func quarter(k float64) float64 {
	switch kp := math.Sqrt((1 - k) * (1 + k)); {
	case k == 1:
		return math.Inf(1)
	case kp < smallModulus:
		l := -math.Log(kp / 4)
		return l + (l-1)*kp*kp/4
	default:
		return completeK(Sequence(k, Tolerance))
	}
}

// Modulus holds the Landen sequence of one modulus for repeated
// evaluation of the Jacobi functions.
type Modulus struct {
	k   float64
	seq []float64
}

// New precomputes the Landen sequence of k.
func New(k float64) (*Modulus, error) {
	if !(k >= 0 && k < 1) {
		return nil, ErrInvalidModulus
	}
	return &Modulus{k: k, seq: Sequence(k, Tolerance)}, nil
}

// K returns the quarter periods K(k) and K'(k).
func (m *Modulus) K() (float64, float64) { return EllipK(m.k) }

// ascend applies the ascending Landen recurrence w <- (1+v)w/(1+v*w^2)
// from the smallest modulus up.
func (m *Modulus) ascend(w float64) float64 {
	for i := len(m.seq) - 1; i >= 0; i-- {
		v := m.seq[i]
		w = (1 + v) * w / (1 + v*w*w)
	}
	return w
}

// SN writes sn(in[i]*K, k) to out[i]. out must be at least as long as in.
func (m *Modulus) SN(in, out []float64) {
	out = out[:len(in)]
	for i, u := range in {
		out[i] = m.ascend(math.Sin(u * math.Pi / 2))
	}
}

// CD returns cd(u*K, k) for complex u.
func (m *Modulus) CD(u complex128) complex128 {
	w := cmplx.Cos(u * math.Pi / 2)
	for i := len(m.seq) - 1; i >= 0; i-- {
		v := complex(m.seq[i], 0)
		w = (1 + v) * w / (1 + v*w*w)
	}
	return w
}
