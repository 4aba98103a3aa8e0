package matrixio

// Options configures ReadMatrix. Follows the same functional-options shape
// used throughout the module (see package kbest.Options).
type Options struct {
	strictSymmetry bool
}

// Option configures Options.
type Option func(*Options)

// WithStrictSymmetry rejects matrices whose lower triangle disagrees with
// its upper triangle, instead of silently ignoring the lower triangle (the
// default behavior: only the strict upper triangle is ever read).
func WithStrictSymmetry() Option {
	return func(o *Options) { o.strictSymmetry = true }
}

// DefaultOptions returns Options with symmetry checking disabled.
func DefaultOptions() Options {
	return Options{}
}
