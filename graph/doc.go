// Package graph provides the immutable edge-weighted undirected graph model
// consumed by packages kruskal and kbest.
//
// What & why
//
//   - What is a Graph here?
//     A vertex count V plus a globally sorted edge list: the index of an
//     edge in that list is its canonical identifier for the rest of the
//     enumeration (see package kruskal's EdgeChoice vectors and package
//     kbest's pin/exclude bookkeeping).
//
//   - Why sort once at construction:
//     Kruskal's algorithm consumes edges in ascending-weight order; sorting
//     once at Graph construction, stably, means every later BuildMST call
//     gets that order for free and ties break on original scan order.
//
// Construction
//
//	FromMatrix parses a dense V×V adjacency matrix of nonnegative integer
//	weights (symmetric; only the strict upper triangle is read), validates
//	it is square, and produces the Graph's sorted edge list. A non-square
//	matrix yields ErrInvalidInput.
//
// Directed graphs, multi-edges, negative weights, and self-loops are not
// representable — a zero on the diagonal (or off it) simply means "no edge".
package graph
