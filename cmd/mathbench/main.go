// Command mathbench measures the throughput of elementary and special
// functions across math backends.
//
// Usage:
//
//	mathbench [flags] [function ...]
//
// Without arguments every function of every backend is timed. Result rows
// go to stdout, progress to stderr.
//
// Examples:
//
//	mathbench sin cos
//	mathbench -quick -generic exp log
//	mathbench -domain exp=-1:1 exp
//	mathbench -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-mathbench/approx/chebtree"
	"github.com/cwbudde/algo-mathbench/bench/domain"
	"github.com/cwbudde/algo-mathbench/bench/suite"
)

// domainFlags collects repeated -domain name=lo:hi overrides.
type domainFlags struct {
	table domain.Table
}

func (f *domainFlags) String() string {
	if f.table == nil {
		return ""
	}
	var parts []string
	for _, name := range f.table.Names() {
		d := f.table[name]
		parts = append(parts, fmt.Sprintf("%s=%g:%g", name, d.Lower, d.Upper))
	}
	return strings.Join(parts, ",")
}

func (f *domainFlags) Set(s string) error {
	name, d, err := domain.ParseOverride(s)
	if err != nil {
		return err
	}
	f.table = f.table.With(name, d)
	return nil
}

func main() {
	list := flag.Bool("list", false, "list known function names")
	seed := flag.Uint64("seed", 1, "seed of the input sample")
	generic := flag.Bool("generic", false, "force generic CPU features (skips SIMD backends)")
	quick := flag.Bool("quick", false, "run only the short, call-overhead configuration")
	order := flag.Int("order", chebtree.DefaultOrder, "polynomial order of approximant leaves (power of two)")
	tol := flag.Float64("tol", chebtree.DefaultTolerance, "approximant error target")
	overrides := &domainFlags{table: domain.Table{}}
	flag.Var(overrides, "domain", "override a function domain as name=lo:hi (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mathbench [flags] [function ...]\n\n")
		fmt.Fprintf(os.Stderr, "Times math functions across backends and prints one row per backend:\n")
		fmt.Fprintf(os.Stderr, "  label: Meval/s mean [lo, hi]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mathbench sin cos\n")
		fmt.Fprintf(os.Stderr, "  mathbench -quick -generic exp log\n")
		fmt.Fprintf(os.Stderr, "  mathbench -domain exp=-1:1 exp\n")
		fmt.Fprintf(os.Stderr, "  mathbench -list\n")
	}
	flag.Parse()

	if *list {
		for _, name := range suite.Functions() {
			fmt.Println(name)
		}
		return
	}

	tab := domain.Builtin()
	for name, d := range overrides.table {
		tab = tab.With(name, d)
	}

	features := cpu.DetectFeatures()
	if *generic {
		features.ForceGeneric = true
	}

	cfg := suite.Config{
		Seed:     *seed,
		Filter:   flag.Args(),
		Domains:  tab,
		Features: &features,
		Approx:   []chebtree.Option{chebtree.WithOrder(*order), chebtree.WithTolerance(*tol)},
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
	if *quick {
		cfg.RunSets = suite.DefaultRunSets()[:1]
	}

	if err := suite.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
