package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// ErrRequiredUnavailable is returned by Resolve when a required source
// cannot run on the given CPU.
var ErrRequiredUnavailable = errors.New("registry: required backend unavailable")

// Entry is one registered source and the capability it needs.
type Entry struct {
	Source Source

	// Level is the SIMD instruction set the source needs. SIMDNone runs
	// everywhere.
	Level cpu.SIMDLevel

	// Required entries abort resolution when they cannot run. Optional
	// entries are skipped.
	Required bool

	// Probe is an optional extra check run after the level check.
	Probe func(cpu.Features) error
}

// Skipped records an optional entry that did not resolve.
type Skipped struct {
	Name   string
	Reason error
}

func (s Skipped) String() string {
	return fmt.Sprintf("%s: %v", s.Name, s.Reason)
}

// Registry is an ordered list of entries. Registration order is report
// order.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// Register appends an entry.
func (r *Registry) Register(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
}

// Entries returns a copy of the registered entries.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

// Resolve returns the sources that can run with features, in registration
// order, and the optional entries that were skipped. The first required
// entry that cannot run fails the whole resolution.
func (r *Registry) Resolve(features cpu.Features) ([]Source, []Skipped, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		sources []Source
		skipped []Skipped
	)
	for _, e := range r.entries {
		if e.Source == nil {
			continue
		}
		if err := check(e, features); err != nil {
			if e.Required {
				return nil, nil, fmt.Errorf("%w: %s: %v", ErrRequiredUnavailable, e.Source.Name(), err)
			}
			skipped = append(skipped, Skipped{Name: e.Source.Name(), Reason: err})
			continue
		}
		sources = append(sources, e.Source)
	}
	return sources, skipped, nil
}

func check(e Entry, features cpu.Features) error {
	if !cpu.Supports(features, e.Level) {
		return fmt.Errorf("requires %s", e.Level)
	}
	if e.Probe != nil {
		return e.Probe(features)
	}
	return nil
}

// Requested returns the sorted union of all function names of sources.
// With a non-empty filter it returns only the names that are also in
// filter; unknown names in filter are dropped.
func Requested(sources []Source, filter []string) []string {
	union := make(map[string]struct{})
	for _, s := range sources {
		for _, fn := range s.Functions() {
			union[fn] = struct{}{}
		}
	}

	var names []string
	if len(filter) == 0 {
		names = make([]string, 0, len(union))
		for fn := range union {
			names = append(names, fn)
		}
	} else {
		for _, fn := range filter {
			if _, ok := union[fn]; ok && !slices.Contains(names, fn) {
				names = append(names, fn)
			}
		}
	}
	slices.Sort(names)
	return names
}
