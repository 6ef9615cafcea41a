// Package cooc computes pairwise event co-occurrence counts over a
// gmodel.Graph (§4.5): for every event pair (row, row+col+1), the number of
// actors adjacent to both.
//
// The sub-block partitioning of §4.5.1 is the package's central technique:
// partitioning each actor's sorted adjacency list into S=5 contiguous
// sub-block ranges lets S*(S+1)/2 independent workers each own a disjoint
// set of half-matrix cells, so Compute's parallel fan-out needs no locking
// — grounded on the teacher's algorithms.BFS walker-struct style (an
// explicit per-worker struct carrying only the state that worker owns) and
// on golang.org/x/sync/errgroup for the fan-out/barrier itself, the same
// dependency the teacher's own concurrency-safe algorithms favor over raw
// goroutine+WaitGroup bookkeeping.
package cooc
