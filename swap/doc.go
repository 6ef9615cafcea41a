// Package swap implements the two degree-preserving graph randomization
// algorithms of §4.4: single-edge switch (bipartite and general) and the
// Curveball trade (bipartite only — §4.4.4 notes the general case is
// unspecified and this package inherits that restriction).
//
// Swap operations never fail in the spec sense: a rejected move (one that
// would create a duplicate edge) is a valid outcome reported in Result, not
// a Go error. A returned error here indicates programmer misuse (e.g. a
// graph with fewer than two edges), grounded on the teacher's
// builder.impl_random_regular.go distinction between a rejected candidate
// (loop and retry) and a genuine construction error.
//
// Both algorithms defer canonicalization: single switch keeps the
// adjacency matrix synchronized immediately but leaves the lists unsorted,
// while Curveball writes both actors' lists back sorted but leaves the
// sub-block indexes and the matrix stale
// (Curveball never touches gmodel.Graph's matrix at all, since neither the
// bipartite CoocEngine sub-block path nor the Curveball perturbation
// measure reads it). Callers must run gmodel.Graph.Canonize before any
// operation that assumes sorted lists or current sub-block indexes, and
// gmodel.Graph.RebuildMatrixFromLists before any operation that reads the
// matrix (debug-mode invariant checks, Degree's matrix view, Equals).
package swap
