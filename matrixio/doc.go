// Package matrixio reads the adjacency-matrix wire format consumed by
// package graph's FromMatrix: one integer V, followed by V*V integer tokens
// in row-major order, whitespace-separated. Entries are assumed symmetric;
// only the strict upper triangle is ever used by the core (see package
// graph), but ReadMatrix can optionally enforce symmetry up front via
// WithStrictSymmetry.
//
// This package is a consumed collaborator, not part of the core enumerator:
// it exists only to turn a file on disk into the [][]int64 that
// graph.FromMatrix expects.
package matrixio
