// Package backend registers the math libraries the benchmark compares.
//
// Every backend is a [registry.Backend] over one element type; its name is
// "library_" followed by the element code and lane width, e.g. "std_dx1"
// (float64, one element at a time), "std_fx1" (float32), "cmplx_cdx2"
// (complex128, two outputs per input) or "vecmath_dx4" (float64 batch of
// four lanes). [Registry] returns all of them in report order, gated on the
// CPU features they need. Approximant backends are built per run by
// [Chebtree] because their construction depends on the requested functions
// and domains.
package backend
