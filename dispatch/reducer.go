package dispatch

import (
	"context"

	"github.com/katalvlaran/fdsm/accumulate"
)

// ClusterReducer performs the §4.10 step-4 cross-process reduction: summing
// an Accumulator across every rank and returning the combined result at
// rank 0. The actual message-passing fabric between OS processes is a
// collaborator concern (§1's "cluster-level process bootstrap" exclusion);
// this interface is the seam a collaborator's transport implements.
type ClusterReducer interface {
	Reduce(ctx context.Context, local *accumulate.Accumulator) (*accumulate.Accumulator, error)
}

// LocalReducer is the single-process identity ClusterReducer: there is
// only one rank, so "reduction" is a no-op that returns local unchanged.
type LocalReducer struct{}

// Reduce returns local unchanged.
func (LocalReducer) Reduce(_ context.Context, local *accumulate.Accumulator) (*accumulate.Accumulator, error) {
	return local, nil
}
