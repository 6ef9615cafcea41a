package dispatch

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fdsm/accumulate"
	"github.com/katalvlaran/fdsm/cooc"
	"github.com/katalvlaran/fdsm/fdsmconfig"
	"github.com/katalvlaran/fdsm/gmodel"
	"github.com/katalvlaran/fdsm/heuristic"
	"github.com/katalvlaran/fdsm/randsrc"
	"github.com/katalvlaran/fdsm/telemetry"
)

// Report is the Dispatcher's final §4.10 REPORT-state output: the number
// of samples actually run and the §4.7 ranking over every relevant pair.
type Report struct {
	Samples  int
	Rankings []accumulate.PairRank
}

// Dispatcher drives one full FDSM run: calibration, batched sampling, and
// the final ranked report.
type Dispatcher struct {
	Workers     []*Worker
	Accumulator *accumulate.Accumulator

	original       *gmodel.Graph
	originalCooc   *cooc.HalfMatrix
	algo           heuristic.Algorithm
	swapsOverride  int
	useElneSwaps   bool
	swapsPerSample int
	stopper        *heuristic.SampleStopper
	central        *randsrc.Source
	reducer        ClusterReducer
	emitter        telemetry.Emitter
	minCooc        int
	fixedSamples   int
	seed           int64

	state    State
	nSamples int
}

// NewDispatcher builds a Dispatcher for original (a canonical graph,
// already loaded): cfg.NumWorkers worker-local clones each with their own
// seeded stream, an Accumulator sized for original's events, and a
// SampleStopper — the rolling internal ground truth of §4.9, or a fixed
// external one if groundTruth is non-empty.
func NewDispatcher(original *gmodel.Graph, cfg *fdsmconfig.Config, groundTruth [][2]int, emitter telemetry.Emitter) (*Dispatcher, error) {
	if emitter == nil {
		emitter = telemetry.Nop
	}
	if cfg.NumWorkers <= 0 {
		return nil, ErrNoWorkers
	}

	algo := heuristic.AlgorithmCurveball
	if cfg.Swap.Strategy == fdsmconfig.StrategySingleSwitch {
		algo = heuristic.AlgorithmSingleSwitch
	}

	workers := make([]*Worker, cfg.NumWorkers)
	for k := range workers {
		w, err := newWorker(original, cfg.RNG.Seed, k)
		if err != nil {
			return nil, fmt.Errorf("dispatch.NewDispatcher: %w", err)
		}
		workers[k] = w
	}

	var stopper *heuristic.SampleStopper
	if len(groundTruth) > 0 {
		stopper = heuristic.NewExternalGroundTruth(groundTruth, cfg.Sampling.InternalPPVThreshold, cfg.Sampling.MaxSamples, cfg.Sampling.MinCooc)
	} else {
		stopper = heuristic.NewSampleStopper(cfg.Sampling.RatioGT, cfg.Sampling.InternalPPVThreshold, cfg.Sampling.MaxSamples, cfg.Sampling.MinCooc)
	}

	return &Dispatcher{
		Workers:       workers,
		Accumulator:   accumulate.NewAccumulator(original.Info().NEvents),
		original:      original,
		algo:          algo,
		swapsOverride: cfg.Swap.SwapsPerSample,
		useElneSwaps:  cfg.Swap.UseELNESwaps,
		stopper:       stopper,
		central:       randsrc.NewCentralSource(cfg.RNG.Seed),
		reducer:       LocalReducer{},
		emitter:       emitter,
		minCooc:       cfg.Sampling.MinCooc,
		fixedSamples:  cfg.Sampling.FixedSamples,
		seed:          cfg.RNG.Seed,
		state:         StateInit,
	}, nil
}

// State returns the Dispatcher's current run state.
func (d *Dispatcher) State() State { return d.state }

// Run drives the full §4.10 state machine to completion: the original
// co-occurrence computation, swap calibration, repeated sampling batches
// of len(Workers) samples each until SampleStopper says stop (or, with
// FixedSamples set, until that many samples are drawn; in either case no
// further than the sample cap), and the final ranked report.
func (d *Dispatcher) Run(ctx context.Context) (*Report, error) {
	d.state = StateLoaded
	d.emitter.Info("dispatch.Run", "starting run", map[string]interface{}{"workers": len(d.Workers)})

	originalCooc := cooc.NewHalfMatrix(d.original.Info().NEvents)
	if err := cooc.Compute(ctx, d.original, originalCooc); err != nil {
		return nil, fmt.Errorf("dispatch.Run: %w", err)
	}
	d.originalCooc = originalCooc
	d.state = StateOriginalCooc

	swapsPerSample, err := d.calibrate()
	if err != nil {
		return nil, fmt.Errorf("dispatch.Run: %w", err)
	}
	d.swapsPerSample = swapsPerSample
	d.state = StateSwapCalibrated
	d.emitter.Info("dispatch.Run", "calibration complete", map[string]interface{}{"swaps_per_sample": swapsPerSample})

	nRelevantPairs := countRelevantPairs(d.originalCooc, d.minCooc)

	d.state = StateSampling
	for {
		if err := d.runBatch(ctx); err != nil {
			return nil, fmt.Errorf("dispatch.Run: %w", err)
		}

		reduced, err := d.reducer.Reduce(ctx, d.Accumulator)
		if err != nil {
			return nil, fmt.Errorf("dispatch.Run: %w", err)
		}
		d.Accumulator = reduced

		var stop bool
		if d.fixedSamples > 0 {
			stop = d.nSamples >= d.fixedSamples
		} else {
			stop, err = d.stopper.Update(d.Accumulator, d.originalCooc, d.nSamples, nRelevantPairs, d.central)
			if err != nil {
				return nil, fmt.Errorf("dispatch.Run: %w", err)
			}
		}
		if d.nSamples >= d.stopper.MaxSamples() {
			stop = true
		}
		d.emitter.Debug("dispatch.Run", "batch complete", map[string]interface{}{"samples": d.nSamples, "stop": stop})
		if stop {
			break
		}
	}

	d.state = StateReport
	ranked, err := accumulate.RankPairs(d.Accumulator, d.originalCooc, d.nSamples, d.minCooc, nRelevantPairs, d.central)
	if err != nil {
		return nil, fmt.Errorf("dispatch.Run: %w", err)
	}
	d.state = StateDone

	return &Report{Samples: d.nSamples, Rankings: ranked}, nil
}

// calibrate resolves swapsPerSample: an explicit override, the "elne"
// closed-form shortcut, or a full SwapHeuristic calibration run against a
// dedicated stream (seeded one worker-id past the last real worker, so
// calibration never consumes a sample-stream draw).
func (d *Dispatcher) calibrate() (int, error) {
	if d.swapsOverride > 0 {
		return d.swapsOverride, nil
	}
	if d.useElneSwaps {
		n := d.original.NEdges()
		if n <= 1 {
			return 1, nil
		}
		return int(math.Ceil(float64(n) * math.Log(float64(n)))), nil
	}
	calibRNG := randsrc.NewWorkerSource(d.seed, len(d.Workers))
	clone, err := d.original.Clone()
	if err != nil {
		return 0, err
	}
	return heuristic.CalibrateSwaps(clone, d.algo, calibRNG)
}

// runBatch runs one batch of len(Workers) samples: each worker performs
// swapsPerSample swap moves then computes its scratch co-occurrence
// matrix, concurrently via errgroup (the cross-worker barrier of §4.10
// step 2 is errgroup.Wait), then folds every worker's scratch into the
// shared Accumulator serially (§4.10 step 3's "merge step sums them").
func (d *Dispatcher) runBatch(ctx context.Context) error {
	grp, gctx := errgroup.WithContext(ctx)
	for _, w := range d.Workers {
		w := w
		grp.Go(func() error {
			for i := 0; i < d.swapsPerSample; i++ {
				if err := heuristic.ApplySwap(w.Graph, d.algo, w.RNG); err != nil {
					return fmt.Errorf("dispatch.runBatch: worker %d: %w", w.ID, err)
				}
			}
			// Swap moves leave adjacency lists and sub-block indexes stale
			// (they defer canonicalization by design, see gmodel.mutate);
			// CoocEngine's sub-block partition requires both current.
			if err := w.Graph.Canonize(); err != nil {
				return fmt.Errorf("dispatch.runBatch: worker %d: %w", w.ID, err)
			}
			w.Scratch.Reset()
			if err := cooc.Compute(gctx, w.Graph, w.Scratch); err != nil {
				return fmt.Errorf("dispatch.runBatch: worker %d: %w", w.ID, err)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	for _, w := range d.Workers {
		if err := d.Accumulator.Accumulate(d.nSamples, w.Scratch, d.originalCooc); err != nil {
			return fmt.Errorf("dispatch.runBatch: %w", err)
		}
		d.nSamples++
	}
	return nil
}

// countRelevantPairs returns the number of event pairs whose OriginalCooc
// is >= minCooc, the nRelevantPairs of §4.9 used to size the rolling
// ground truth's k.
func countRelevantPairs(original *cooc.HalfMatrix, minCooc int) int {
	n := original.NEvents()
	count := 0
	for r := 0; r < n; r++ {
		for c := r + 1; c < n; c++ {
			v, err := original.At(r, c)
			if err == nil && int(v) >= minCooc {
				count++
			}
		}
	}
	return count
}
