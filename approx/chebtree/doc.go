// Package chebtree builds adaptive piecewise-Chebyshev approximants of
// scalar functions over a 1-D domain.
//
// [Build] subdivides the domain as a binary tree. Every box is fitted with a
// fixed-order Chebyshev interpolant on Chebyshev-Lobatto nodes, whose
// coefficients come from an FFT of the even extension of the samples. A box
// whose fit misses the tolerance is split in half until it reaches the
// minimum leaf width or the leaf budget runs out; such leaves are kept
// best-effort and counted in [Stats].Unconverged.
//
// The resulting [Tree] is immutable. [Tree.Eval] descends the tree to the
// covering leaf and evaluates it with Clenshaw's recurrence.
package chebtree
