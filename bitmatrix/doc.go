// Package bitmatrix provides a fixed-size, word-packed bit grid used as the
// adjacency-matrix view of a gmodel.Graph.
//
// A BitMatrix is a dense rows×cols grid where each row is backed by its own
// github.com/bits-and-blooms/bitset.BitSet. Rows are independent: callers may
// mutate distinct rows from distinct goroutines without coordination, but a
// single row is not safe for concurrent mutation (mirrors the per-row
// locking discipline lvlath's core.Graph uses for its adjacency maps).
//
// All operations are O(cols/W) where W is the machine word width, except
// the whole-matrix ones (Clone, Equal, CopyInto, XORPopcount), which are
// O(rows*cols/W).
package bitmatrix
