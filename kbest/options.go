package kbest

// Options configures a Solve call. Use DefaultOptions for the common case of
// unbounded enumeration.
type Options struct {
	// maxTrees caps the number of spanning trees Solve returns; zero means
	// unbounded. Memory is O(T*E) in the number of trees T enumerated, and T
	// is exponential in E-V+1 in the worst case.
	maxTrees int
}

// Option configures Options.
type Option func(*Options)

// WithMaxTrees caps the number of spanning trees Solve returns to n. Once
// results holds n trees, Solve stops expanding the frontier and returns what
// it has; the cap is advisory bookkeeping, not a hard enumeration contract.
// n <= 0 is treated as unbounded.
func WithMaxTrees(n int) Option {
	return func(o *Options) { o.maxTrees = n }
}

// DefaultOptions returns Options configured for unbounded enumeration.
func DefaultOptions() Options {
	return Options{}
}
