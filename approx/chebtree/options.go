package chebtree

import (
	"errors"
	"math"
)

var (
	// ErrNilOracle is returned when Build is called without a function.
	ErrNilOracle = errors.New("chebtree: nil oracle")
	// ErrInvalidOrder is returned for orders that are not a power of two >= 2.
	ErrInvalidOrder = errors.New("chebtree: order must be a power of two >= 2")
	// ErrInvalidTolerance is returned for non-positive or non-finite tolerances.
	ErrInvalidTolerance = errors.New("chebtree: tolerance must be positive and finite")
	// ErrInvalidLeafWidth is returned when the minimum leaf fraction is outside (0, 1].
	ErrInvalidLeafWidth = errors.New("chebtree: minimum leaf width must be in (0, 1]")
	// ErrInvalidLeafBudget is returned for a leaf budget below 1.
	ErrInvalidLeafBudget = errors.New("chebtree: leaf budget must be at least 1")
)

const (
	// DefaultOrder is the polynomial order of every leaf.
	DefaultOrder = 8
	// DefaultTolerance is the target error per leaf.
	DefaultTolerance = 1e-10
	// DefaultMinLeafWidth is the smallest leaf width as a fraction of the domain.
	DefaultMinLeafWidth = 0x1p-30
	// DefaultMaxLeaves bounds the number of leaves of one tree.
	DefaultMaxLeaves = 1 << 16
)

// Option configures approximant construction.
type Option func(*config)

type config struct {
	order        int
	tol          float64
	minLeafWidth float64
	maxLeaves    int
}

func defaultConfig() config {
	return config{
		order:        DefaultOrder,
		tol:          DefaultTolerance,
		minLeafWidth: DefaultMinLeafWidth,
		maxLeaves:    DefaultMaxLeaves,
	}
}

// WithOrder sets the polynomial order per leaf. It must be a power of two.
func WithOrder(n int) Option {
	return func(c *config) {
		c.order = n
	}
}

// WithTolerance sets the per-leaf error target, measured as
// |p(x)-f(x)| / max(1, |f(x)|).
func WithTolerance(tol float64) Option {
	return func(c *config) {
		c.tol = tol
	}
}

// WithMinLeafWidth sets the smallest leaf width as a fraction of the domain
// width. It bounds the depth of the tree.
func WithMinLeafWidth(frac float64) Option {
	return func(c *config) {
		c.minLeafWidth = frac
	}
}

// WithMaxLeaves bounds the number of leaves. Boxes that would exceed it are
// kept unconverged.
func WithMaxLeaves(n int) Option {
	return func(c *config) {
		c.maxLeaves = n
	}
}

func (c config) validate() error {
	if c.order < 2 || c.order&(c.order-1) != 0 {
		return ErrInvalidOrder
	}
	if !(c.tol > 0) || math.IsInf(c.tol, 1) {
		return ErrInvalidTolerance
	}
	if !(c.minLeafWidth > 0 && c.minLeafWidth <= 1) {
		return ErrInvalidLeafWidth
	}
	if c.maxLeaves < 1 {
		return ErrInvalidLeafBudget
	}
	return nil
}
