// Package gmodel implements the bit-packed graph of spec §3/§4.2: a dual
// adjacency-matrix + adjacency-list view over opaque actor/event node ids,
// kept consistent across transformations by the operations this package
// exposes.
//
// Canonical form (all adjacency lists sorted ascending, sub-block indexes
// current, edge links current for general graphs, matrix ≡ lists) is the
// contract every exported Graph method either preserves or restores before
// returning — except the low-level mutation primitives in mutate.go, which
// are documented as deferring canonicalization and are only meant to be
// driven by package swap.
//
// A Graph holds no lock: unlike core.Graph a gmodel.Graph is never shared
// for concurrent mutation, because §5 assigns each worker its own private
// Graph copy. Concurrent mutation of one Graph is not detected.
package gmodel
