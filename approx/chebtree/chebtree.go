package chebtree

import (
	"math"

	"github.com/cwbudde/algo-mathbench/bench/domain"
)

// Stats describes a built tree.
type Stats struct {
	// Leaves is the number of polynomial pieces.
	Leaves int
	// Depth is the deepest leaf level; the root is level 0.
	Depth int
	// Evaluations counts oracle calls made during construction.
	Evaluations int
	// Unconverged counts leaves kept without meeting the tolerance.
	Unconverged int
	// MaxError is the largest probe error over converged leaves.
	MaxError float64
}

// node is one box of the tree. Inner nodes store the index of their left
// child; the right child follows it. Leaves have child < 0 and store the
// offset of their coefficients.
type node struct {
	mid     float64
	invHalf float64
	child   int32
	coeffs  int32
}

// Tree is an immutable piecewise-Chebyshev approximant.
type Tree struct {
	dom    domain.Domain
	order  int
	tol    float64
	nodes  []node
	coeffs []float64
	stats  Stats
}

type box struct {
	lo, hi float64
	depth  int
	index  int
}

// Build constructs an approximant of f over d. The tolerance is a target,
// not a guarantee: boxes that cannot meet it within the minimum leaf width
// or the leaf budget are kept as they are.
func Build(f func(float64) float64, d domain.Domain, opts ...Option) (*Tree, error) {
	if f == nil {
		return nil, ErrNilOracle
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ft, err := newFitter(f, cfg.order)
	if err != nil {
		return nil, err
	}

	t := &Tree{dom: d, order: cfg.order, tol: cfg.tol}
	minWidth := cfg.minLeafWidth * d.Width()
	width := cfg.order + 1
	scratch := make([]float64, width)

	t.nodes = append(t.nodes, node{})
	queue := []box{{lo: d.Lower, hi: d.Upper, index: 0}}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]

		errEst, err := ft.fit(b.lo, b.hi, scratch)
		if err != nil {
			return nil, err
		}

		converged := errEst <= cfg.tol
		mid := b.lo + 0.5*(b.hi-b.lo)
		canSplit := 0.5*(b.hi-b.lo) >= minWidth && mid > b.lo && mid < b.hi &&
			t.stats.Leaves+len(queue)+2 <= cfg.maxLeaves

		if !converged && canSplit {
			left := len(t.nodes)
			t.nodes[b.index] = node{mid: mid, child: int32(left), coeffs: -1}
			t.nodes = append(t.nodes, node{}, node{})
			queue = append(queue,
				box{lo: b.lo, hi: mid, depth: b.depth + 1, index: left},
				box{lo: mid, hi: b.hi, depth: b.depth + 1, index: left + 1},
			)
			continue
		}

		off := len(t.coeffs)
		t.coeffs = append(t.coeffs, scratch...)
		t.nodes[b.index] = node{
			mid:     mid,
			invHalf: 2 / (b.hi - b.lo),
			child:   -1,
			coeffs:  int32(off),
		}
		t.stats.Leaves++
		if b.depth > t.stats.Depth {
			t.stats.Depth = b.depth
		}
		if converged {
			t.stats.MaxError = math.Max(t.stats.MaxError, errEst)
		} else {
			t.stats.Unconverged++
		}
	}
	t.stats.Evaluations = ft.evals

	return t, nil
}

// Domain returns the interval the tree covers.
func (t *Tree) Domain() domain.Domain { return t.dom }

// Order returns the polynomial order of every leaf.
func (t *Tree) Order() int { return t.order }

// Tolerance returns the configured error target.
func (t *Tree) Tolerance() float64 { return t.tol }

// Stats returns construction statistics.
func (t *Tree) Stats() Stats { return t.stats }

// Eval returns the approximant at x. Points outside the domain yield NaN.
func (t *Tree) Eval(x float64) float64 {
	if !(x >= t.dom.Lower && x <= t.dom.Upper) {
		return math.NaN()
	}
	n := &t.nodes[0]
	for n.child >= 0 {
		if x < n.mid {
			n = &t.nodes[n.child]
		} else {
			n = &t.nodes[n.child+1]
		}
	}
	c := t.coeffs[n.coeffs : int(n.coeffs)+t.order+1]
	return clenshaw(c, (x-n.mid)*n.invHalf)
}

// EvalBatch writes Eval(in[i]) to out[i]. out must be at least as long as in.
func (t *Tree) EvalBatch(in, out []float64) {
	out = out[:len(in)]
	for i, x := range in {
		out[i] = t.Eval(x)
	}
}
