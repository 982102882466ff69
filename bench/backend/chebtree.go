package backend

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/cwbudde/algo-mathbench/approx/chebtree"
	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/domain"
	"github.com/cwbudde/algo-mathbench/bench/registry"
)

// approximated lists the functions the approximant backend can build.
var approximated = []string{
	"bessel_J0", "bessel_J1", "bessel_J2",
	"bessel_Y0", "bessel_Y1", "bessel_Y2",
	"cos",
	"hermite_0", "hermite_1", "hermite_2", "hermite_3",
	"sin",
}

// Oracles returns the exact functions approximants are built from, keyed
// by function name.
func Oracles() map[string]func(float64) float64 {
	std := make(map[string]func(float64) float64)
	for _, fn := range stdFunctions() {
		if slices.Contains(approximated, fn.name) {
			std[fn.name] = fn.f
		}
	}
	return std
}

// Approximated returns the names Chebtree can build, sorted.
func Approximated() []string {
	return slices.Clone(approximated)
}

// Chebtree builds one approximant per requested function that has an
// oracle, over the domain tab assigns to it, and registers them as
// "chebtree_dx1". Construction is logged to w and happens before any
// timing.
func Chebtree(requested []string, tab domain.Table, w io.Writer, opts ...chebtree.Option) (*registry.Backend[float64], error) {
	oracles := Oracles()
	b := registry.NewBackend[float64]("chebtree_dx1")

	for _, fn := range requested {
		f, ok := oracles[fn]
		if !ok {
			continue
		}
		d := tab.Lookup(fn)

		fmt.Fprintf(w, "Creating approximant for %s on %v\n", fn, d)
		start := time.Now()
		tree, err := chebtree.Build(f, d, opts...)
		if err != nil {
			return nil, fmt.Errorf("backend: approximant for %s: %w", fn, err)
		}
		st := tree.Stats()
		fmt.Fprintf(w, "  %d leaves, depth %d, %d evaluations in %v",
			st.Leaves, st.Depth, st.Evaluations, time.Since(start))
		if st.Unconverged > 0 {
			fmt.Fprintf(w, ", %d leaves above tolerance", st.Unconverged)
		}
		fmt.Fprintln(w)

		if err := b.Register(fn, adapter.FromApproximant(tree)); err != nil {
			return nil, err
		}
	}
	return b, nil
}
