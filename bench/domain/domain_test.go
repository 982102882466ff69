package domain

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cwbudde/algo-mathbench/internal/testutil"
)

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"reversed", 1, 0},
		{"empty", 2, 2},
		{"nan lower", math.NaN(), 1},
		{"inf upper", 0, math.Inf(1)},
		{"overflowing width", -1e308, 1e308},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.lo, tt.hi)
			if !errors.Is(err, ErrInvalidDomain) {
				t.Fatalf("New(%v, %v) error = %v, want ErrInvalidDomain", tt.lo, tt.hi, err)
			}
		})
	}
}

func TestMapStaysInDomainAndPreservesOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	domains := []Domain{
		{0, 2 * math.Pi},
		{-100, 100},
		{1, 1000},
		{0.1, 30},
		{-1e-3, 1e-3},
	}

	sample := make([]float64, 2048)
	for i := range sample {
		sample[i] = rng.Float64()
	}
	sample[0], sample[1] = 0, 1

	for _, d := range domains {
		t.Run(d.String(), func(t *testing.T) {
			mapped := Map(sample, d)
			if len(mapped) != len(sample) {
				t.Fatalf("len = %d, want %d", len(mapped), len(sample))
			}
			for i, v := range mapped {
				if !d.Contains(v) {
					t.Fatalf("mapped[%d] = %v outside %v", i, v, d)
				}
			}
			for i := 1; i < len(sample); i++ {
				if sample[i] > sample[i-1] && mapped[i] < mapped[i-1] {
					t.Fatalf("order not preserved at %d: %v -> %v, %v -> %v",
						i, sample[i-1], mapped[i-1], sample[i], mapped[i])
				}
			}
		})
	}
}

func TestMapIsAffine(t *testing.T) {
	d := Domain{-3, 5}
	sample := []float64{0, 0.125, 0.5, 0.75, 1}
	mapped := Map(sample, d)

	// Equal steps in the sample give equal steps after mapping.
	slope := (mapped[4] - mapped[0]) / (sample[4] - sample[0])
	for i, v := range sample {
		want := mapped[0] + slope*v
		if math.Abs(mapped[i]-want) > 1e-12 {
			t.Fatalf("mapped[%d] = %v, want %v", i, mapped[i], want)
		}
	}
	if math.Abs(slope-d.Width()) > 1e-12 {
		t.Fatalf("slope = %v, want %v", slope, d.Width())
	}
}

func TestMapUnitIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sample := make([]float64, 512)
	for i := range sample {
		sample[i] = rng.Float64()
	}

	testutil.RequireSliceNearlyEqual(t, Map(sample, Unit), sample, 0)

	sample32 := make([]float32, len(sample))
	for i, v := range sample {
		sample32[i] = float32(v)
	}
	testutil.RequireSliceNearlyEqual(t, Map(sample32, Unit), sample32, 0)
}

func TestMapDoesNotModifyInput(t *testing.T) {
	sample := []float64{0, 0.5, 1}
	_ = Map(sample, Domain{10, 20})
	testutil.RequireSliceNearlyEqual(t, sample, []float64{0, 0.5, 1}, 0)
}

func TestMapSinScenario(t *testing.T) {
	sample := []float64{0, 0.25, 0.5, 0.75, 1}
	got := Map(sample, Domain{0, 2 * math.Pi})
	want := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestMapComplex(t *testing.T) {
	got := MapComplex([]complex128{complex(0.5, 0.5), complex(1, 0)}, Domain{-1, 3})
	want := []complex128{complex(1, 2), complex(3, 0)}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMapFloat32BeyondRange(t *testing.T) {
	d, err := New(-1e39, 1e39)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := Map([]float32{0, 0.5, 1}, d)
	testutil.RequireFinite(t, got)
	for i, v := range got {
		if !d.Contains(float64(v)) {
			t.Fatalf("mapped[%d] = %v outside %v", i, v, d)
		}
	}
	if got[0] != -math.MaxFloat32 || got[1] != 0 || got[2] != math.MaxFloat32 {
		t.Fatalf("Map = %v", got)
	}
}

func TestMapWideDomainIsAffine(t *testing.T) {
	d, err := New(-8e307, 8e307)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := Map([]float64{0, 0.25, 0.5, 1}, d)
	testutil.RequireFinite(t, got)
	want := []float64{-8e307, -4e307, 0, 8e307}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12*8e307 {
			t.Fatalf("mapped[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
