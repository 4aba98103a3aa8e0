package matrixio

import "errors"

// ErrInvalidInput indicates a malformed matrix file: a missing or
// non-integer token, a truncated stream, or (with WithStrictSymmetry) an
// asymmetric entry.
var ErrInvalidInput = errors.New("matrixio: invalid adjacency matrix input")
