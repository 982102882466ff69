package backend

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-mathbench/bench/registry"
)

// Registry returns every static backend in report order. std_dx1 is the
// required baseline; the others are skipped when they cannot run with f.
func Registry(f cpu.Features) *registry.Registry {
	r := &registry.Registry{}
	r.Register(registry.Entry{Source: StdScalar(), Required: true})
	r.Register(registry.Entry{Source: StdFloat32()})
	r.Register(registry.Entry{Source: StdBlocked()})
	r.Register(registry.Entry{Source: StdPair()})
	r.Register(registry.Entry{Source: Complex()})
	r.Register(registry.Entry{Source: ComplexPair()})
	r.Register(registry.Entry{Source: FastApprox()})
	r.Register(registry.Entry{Source: Vecmath(f), Probe: vecmathProbe})
	r.Register(registry.Entry{Source: Gonum()})
	r.Register(registry.Entry{Source: GonumPair()})
	r.Register(registry.Entry{Source: LandenBatch()})
	r.Register(registry.Entry{Source: LandenPair()})
	r.Register(registry.Entry{Source: LandenComplex()})
	return r
}
