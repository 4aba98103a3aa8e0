package unionfind

import "errors"

// ErrEmptySet indicates an attempt to construct a UnionFind over zero elements.
// A disjoint-set structure with no elements has no meaningful component
// bookkeeping, so construction is rejected outright.
var ErrEmptySet = errors.New("unionfind: universe size must be positive")
