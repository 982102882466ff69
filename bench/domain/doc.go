// Package domain maps the shared canonical sample into the valid input
// interval of each benchmarked function.
//
// A [Domain] is an ordered pair (Lower, Upper) with Lower < Upper. [Map]
// applies v*(Upper-Lower)+Lower elementwise, so the same sample drawn from
// [0, 1] is reused for every backend and only the interval differs between
// functions. [Table] holds the per-function intervals; functions without an
// entry use (0, 1).
package domain
