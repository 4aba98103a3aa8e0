package graph

import "errors"

// ErrInvalidInput indicates a malformed adjacency matrix: FromMatrix returns
// it when some row's length differs from the number of rows (non-square).
var ErrInvalidInput = errors.New("graph: invalid adjacency matrix input")
