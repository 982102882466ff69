// Package registry holds the benchmark backends and decides which of them
// run on the current CPU.
//
// A [Backend] maps function names to evaluation adapters for one element
// type. The [Source] interface erases that type so float32, float64 and
// complex backends share one ordered list. A [Registry] gates every source
// on a SIMD level and an optional probe, and [Requested] computes the set of
// function names a run iterates over.
package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-mathbench/bench/adapter"
	"github.com/cwbudde/algo-mathbench/bench/domain"
	"github.com/cwbudde/algo-mathbench/bench/harness"
)

var (
	// ErrEmptyName is returned when a backend or function name is empty.
	ErrEmptyName = errors.New("registry: empty name")
	// ErrAbsentAdapter is returned when registering an adapter with no implementation.
	ErrAbsentAdapter = errors.New("registry: absent adapter")
	// ErrDuplicateFunction is returned when a function is registered twice.
	ErrDuplicateFunction = errors.New("registry: duplicate function")
)

// Source is a backend with its element type erased.
type Source interface {
	// Name is the label prefix, e.g. "std_dx1".
	Name() string
	// Functions returns the implemented function names, sorted.
	Functions() []string
	// Run times fn over s mapped into the domain tab assigns to it. It
	// returns an empty summary when fn is not implemented.
	Run(fn string, s *harness.Sample, tab domain.Table, repeats int) harness.Summary
}

// Backend is a named set of adapters over one element type.
type Backend[T adapter.Element] struct {
	name  string
	funcs map[string]adapter.Adapter[T]
}

// NewBackend returns an empty backend. name is used as the label prefix.
func NewBackend[T adapter.Element](name string) *Backend[T] {
	return &Backend[T]{name: name, funcs: make(map[string]adapter.Adapter[T])}
}

// Register adds the adapter for fn.
func (b *Backend[T]) Register(fn string, a adapter.Adapter[T]) error {
	if b.name == "" || fn == "" {
		return ErrEmptyName
	}
	if !a.Present() {
		return fmt.Errorf("%w: %s_%s", ErrAbsentAdapter, b.name, fn)
	}
	if _, ok := b.funcs[fn]; ok {
		return fmt.Errorf("%w: %s_%s", ErrDuplicateFunction, b.name, fn)
	}
	b.funcs[fn] = a
	return nil
}

// MustRegister is like Register but panics on error. It returns b so
// registrations can be chained.
func (b *Backend[T]) MustRegister(fn string, a adapter.Adapter[T]) *Backend[T] {
	if err := b.Register(fn, a); err != nil {
		panic(err)
	}
	return b
}

// Lookup returns the adapter for fn, or the absent adapter.
func (b *Backend[T]) Lookup(fn string) adapter.Adapter[T] {
	return b.funcs[fn]
}

// Name returns the backend name.
func (b *Backend[T]) Name() string { return b.name }

// Functions returns the registered function names in sorted order.
func (b *Backend[T]) Functions() []string {
	names := make([]string, 0, len(b.funcs))
	for fn := range b.funcs {
		names = append(names, fn)
	}
	slices.Sort(names)
	return names
}

// Run implements Source. Batch adapters see the input truncated to a
// multiple of their lane width.
func (b *Backend[T]) Run(fn string, s *harness.Sample, tab domain.Table, repeats int) harness.Summary {
	label := b.name + "_" + fn
	a := b.Lookup(fn)
	if !a.Present() {
		return harness.Summary{Label: label}
	}

	d := tab.Lookup(fn)
	in := harness.Input[T](s, d)
	if !a.Divides(len(in)) {
		in = in[:len(in)-len(in)%a.Lanes()]
	}
	return harness.Time(label, a, in, repeats, d).Summary()
}
