package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Table maps function names to their input domain.
type Table map[string]Domain

// Builtin returns the default domain table. Functions that are not listed
// are evaluated over Unit.
func Builtin() Table {
	return Table{
		"sin_pi":       {0, 2},
		"cos_pi":       {0, 2},
		"sin":          {0, 2 * math.Pi},
		"cos":          {0, 2 * math.Pi},
		"tan":          {0, 2 * math.Pi},
		"sincos":       {0, 2 * math.Pi},
		"asin":         {-1, 1},
		"acos":         {-1, 1},
		"atan":         {-100, 100},
		"erf":          {-1, 1},
		"erfc":         {-1, 1},
		"exp":          {-10, 10},
		"log":          {0, 10},
		"asinh":        {-100, 100},
		"acosh":        {1, 1000},
		"atanh":        {-1, 1},
		"bessel_Y0":    {0.1, 30},
		"bessel_Y1":    {0.1, 30},
		"bessel_Y2":    {0.1, 30},
		"riemann_zeta": {1.1, 10},
		"jacobi_sn":    {-2, 2},
		"jacobi_cd":    {-2, 2},
	}
}

// Lookup returns the domain registered for name, or Unit.
func (t Table) Lookup(name string) Domain {
	if d, ok := t[name]; ok {
		return d
	}
	return Unit
}

// With returns a copy of t with name mapped to d.
func (t Table) With(name string, d Domain) Table {
	out := make(Table, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[name] = d
	return out
}

// Names returns the functions with an explicit domain, sorted.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for k := range t {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ParseOverride parses "name=lo:hi" into a function name and a validated domain.
func ParseOverride(s string) (string, Domain, error) {
	name, bounds, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", Domain{}, fmt.Errorf("%w: expected name=lo:hi, got %q", ErrInvalidDomain, s)
	}
	loStr, hiStr, ok := strings.Cut(bounds, ":")
	if !ok {
		return "", Domain{}, fmt.Errorf("%w: expected lo:hi, got %q", ErrInvalidDomain, bounds)
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(loStr), 64)
	if err != nil {
		return "", Domain{}, fmt.Errorf("%w: lower bound: %v", ErrInvalidDomain, err)
	}
	hi, err := strconv.ParseFloat(strings.TrimSpace(hiStr), 64)
	if err != nil {
		return "", Domain{}, fmt.Errorf("%w: upper bound: %v", ErrInvalidDomain, err)
	}
	d, err := New(lo, hi)
	if err != nil {
		return "", Domain{}, err
	}
	return name, d, nil
}
