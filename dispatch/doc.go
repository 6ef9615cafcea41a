// Package dispatch implements Dispatcher (§4.10): the outer batch loop
// that owns W worker-local graph copies and W random streams, drives
// SwapEngine and CoocEngine per batch, folds results into the shared
// Accumulator, and queries SampleHeuristic for the stop decision.
//
// Cross-process reduction (§4.10 step 4, §5's message-passing fabric
// across OS processes) is a collaborator concern this package does not
// implement; ClusterReducer is the seam a collaborator's transport would
// plug into, and LocalReducer is the single-process identity
// implementation used when there is only one rank.
package dispatch
