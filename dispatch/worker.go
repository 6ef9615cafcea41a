package dispatch

import (
	"github.com/katalvlaran/fdsm/cooc"
	"github.com/katalvlaran/fdsm/gmodel"
	"github.com/katalvlaran/fdsm/randsrc"
)

// Worker owns one worker-local graph copy, its own deterministic random
// stream, and a reusable per-batch scratch co-occurrence matrix (§4.10,
// §5: "Workers own disjoint graph copies").
type Worker struct {
	ID      int
	Graph   *gmodel.Graph
	RNG     *randsrc.Source
	Scratch *cooc.HalfMatrix
}

// newWorker builds worker k from a clone of original, seeded s+k.
func newWorker(original *gmodel.Graph, seed int64, k int) (*Worker, error) {
	g, err := original.Clone()
	if err != nil {
		return nil, err
	}
	return &Worker{
		ID:      k,
		Graph:   g,
		RNG:     randsrc.NewWorkerSource(seed, k),
		Scratch: cooc.NewHalfMatrix(original.Info().NEvents),
	}, nil
}
