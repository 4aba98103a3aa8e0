package pq

import "errors"

// ErrEmpty is returned by Pop and Peek when the heap holds no elements.
var ErrEmpty = errors.New("pq: heap is empty")
