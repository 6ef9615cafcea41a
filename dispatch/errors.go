package dispatch

import "errors"

var (
	// ErrNoWorkers is returned by NewDispatcher when cfg.NumWorkers <= 0.
	ErrNoWorkers = errors.New("dispatch: num_workers must be > 0")

	// ErrInvariantFailure names a failed graph-invariant check. Run performs
	// no invariant checks (it never calls gmodel.Graph.CheckInvariants) and
	// does not return this error.
	ErrInvariantFailure = errors.New("dispatch: graph invariant check failed")
)
