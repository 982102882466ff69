// Package suite runs the benchmark: it resolves the backends for the CPU,
// builds the approximants the run needs, and times every requested function
// on every backend for each run set.
package suite

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-mathbench/approx/chebtree"
	"github.com/cwbudde/algo-mathbench/bench/backend"
	"github.com/cwbudde/algo-mathbench/bench/domain"
	"github.com/cwbudde/algo-mathbench/bench/harness"
	"github.com/cwbudde/algo-mathbench/bench/registry"
	"github.com/cwbudde/algo-mathbench/bench/report"
)

// ErrInvalidRunSet is returned for a run set with a non-positive size.
var ErrInvalidRunSet = errors.New("suite: invalid run set")

// RunSet is one timed configuration.
type RunSet struct {
	Size    int
	Repeats int
}

// DefaultRunSets returns the two standard configurations: a short buffer
// repeated often, dominated by call overhead, and one long buffer
// evaluated once, dominated by memory throughput.
func DefaultRunSets() []RunSet {
	return []RunSet{
		{Size: 1024, Repeats: 10000},
		{Size: 10240000, Repeats: 1},
	}
}

// Config controls one run. Zero fields take defaults.
type Config struct {
	RunSets []RunSet
	Seed    uint64

	// Filter restricts the run to these function names. Empty runs all.
	Filter []string

	// Domains overrides the built-in domain table.
	Domains domain.Table

	// Features selects the backends. The zero value means detect.
	Features *cpu.Features

	// Approximant options.
	Approx []chebtree.Option

	Stdout io.Writer
	Stderr io.Writer
}

func (c *Config) setDefaults() {
	if len(c.RunSets) == 0 {
		c.RunSets = DefaultRunSets()
	}
	if c.Domains == nil {
		c.Domains = domain.Builtin()
	}
	if c.Features == nil {
		f := cpu.DetectFeatures()
		c.Features = &f
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
}

// Functions returns every function name any backend implements, sorted,
// whether or not the backend can run on this CPU.
func Functions() []string {
	var sources []registry.Source
	for _, e := range backend.Registry(cpu.Features{}).Entries() {
		sources = append(sources, e.Source)
	}
	return registry.Requested(sources, nil)
}

// Run executes the benchmark described by cfg. Rows go to cfg.Stdout,
// progress and diagnostics to cfg.Stderr. It fails when a required backend
// cannot run, an approximant cannot be built, or output cannot be written.
func Run(cfg Config) error {
	cfg.setDefaults()
	for _, rs := range cfg.RunSets {
		if rs.Size < 1 {
			return fmt.Errorf("%w: size %d", ErrInvalidRunSet, rs.Size)
		}
	}

	sources, skipped, err := backend.Registry(*cfg.Features).Resolve(*cfg.Features)
	if err != nil {
		return err
	}
	for _, s := range skipped {
		fmt.Fprintf(cfg.Stderr, "Skipping backend %v\n", s)
	}

	// Approximants only cover functions the std baseline has, so the
	// requested set does not depend on them.
	requested := registry.Requested(sources, cfg.Filter)

	approx, err := backend.Chebtree(requested, cfg.Domains, cfg.Stderr, cfg.Approx...)
	if err != nil {
		return err
	}
	sources = append(sources, approx)

	w := report.NewWriter(cfg.Stdout)
	for _, rs := range cfg.RunSets {
		repeats := max(rs.Repeats, 1)
		fmt.Fprintf(cfg.Stderr, "Running benchmark with input vector of length %d and %d repeats.\n", rs.Size, repeats)

		sample := harness.NewSample(rs.Size, cfg.Seed)
		for _, fn := range requested {
			for _, src := range sources {
				w.Row(src.Run(fn, sample, cfg.Domains, repeats))
			}
			w.Separator()
			if err := w.Err(); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
