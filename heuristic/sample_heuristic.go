package heuristic

import (
	"github.com/katalvlaran/fdsm/accumulate"
	"github.com/katalvlaran/fdsm/cooc"
	"github.com/katalvlaran/fdsm/randsrc"
)

// groundTruthPair is one event pair tracked in SampleStopper's internal or
// external ground truth.
type groundTruthPair struct {
	e1, e2 int
}

// SampleStopper implements SampleHeuristic (§4.9): a rolling internal
// ground truth with a PPV stability criterion, or a fixed
// collaborator-provided external ground truth.
type SampleStopper struct {
	ratioGt     float64
	threshold   float64
	nMaxSamples int
	minCooc     int

	external bool
	gtPairs  map[groundTruthPair]struct{}
	gtEvents map[int]struct{}

	firstBatch bool
}

// NewSampleStopper returns a SampleStopper tracking a rolling internal
// ground truth: each batch's top-k (k = max(1, floor(nRelevantPairs *
// ratioGt))) replaces the previous GT unless the PPV against it is at
// least threshold, in which case sampling stops. Sampling is capped at
// nMaxSamples regardless of PPV.
func NewSampleStopper(ratioGt, threshold float64, nMaxSamples, minCooc int) *SampleStopper {
	return &SampleStopper{
		ratioGt:     ratioGt,
		threshold:   threshold,
		nMaxSamples: nMaxSamples,
		minCooc:     minCooc,
		firstBatch:  true,
	}
}

// NewExternalGroundTruth returns a SampleStopper whose ground truth is the
// fixed, collaborator-provided set of event pairs, loaded once. The PPV
// criterion is otherwise identical: a batch stops sampling once the
// fraction of its top-k pairs touching a GT event that themselves are in
// GT reaches threshold.
func NewExternalGroundTruth(pairs [][2]int, threshold float64, nMaxSamples, minCooc int) *SampleStopper {
	s := &SampleStopper{
		threshold:   threshold,
		nMaxSamples: nMaxSamples,
		minCooc:     minCooc,
		external:    true,
		gtPairs:     make(map[groundTruthPair]struct{}, len(pairs)),
		gtEvents:    make(map[int]struct{}, len(pairs)*2),
	}
	for _, p := range pairs {
		s.gtPairs[groundTruthPair{p[0], p[1]}] = struct{}{}
		s.gtEvents[p[0]] = struct{}{}
		s.gtEvents[p[1]] = struct{}{}
	}
	return s
}

// MaxSamples returns the hard sampling cap.
func (s *SampleStopper) MaxSamples() int { return s.nMaxSamples }

// Update folds one completed batch's accumulator state into the stopper
// and reports whether sampling should stop. nSamples is the total number
// of samples folded into acc so far (used to derive Report/RankPairs).
// nRelevantPairs is the number of pairs whose OriginalCooc >= minCooc,
// used to size the internal GT's k (ignored for external ground truth).
func (s *SampleStopper) Update(acc *accumulate.Accumulator, original *cooc.HalfMatrix, nSamples, nRelevantPairs int, central *randsrc.Source) (stop bool, err error) {
	k := s.topK(nRelevantPairs)

	// Only a fresh internal GT (no prior batch, no external file) has no
	// events to filter by yet; every other case — external GT loaded at
	// construction, or an internal GT rolled from a prior batch — restricts
	// ranking to pairs touching a GT event before taking the top-k
	// (filterResultByGT).
	hasGroundTruth := s.external || !s.firstBatch
	var include func(e1, e2 int) bool
	if hasGroundTruth {
		include = func(e1, e2 int) bool {
			_, e1ok := s.gtEvents[e1]
			_, e2ok := s.gtEvents[e2]
			return e1ok || e2ok
		}
	}

	ranked, err := accumulate.RankPairsFiltered(acc, original, nSamples, s.minCooc, k, central, include)
	if err != nil {
		return false, err
	}

	if s.external {
		return s.ppv(ranked, k) >= s.threshold, nil
	}

	if s.firstBatch {
		s.firstBatch = false
		s.replaceGroundTruth(ranked)
		return false, nil
	}

	ppv := s.ppv(ranked, k)
	s.replaceGroundTruth(ranked)
	return ppv >= s.threshold, nil
}

// topK returns max(1, floor(nRelevantPairs * ratioGt)) for the internal
// ground truth, or len(s.gtPairs) for the external variant (the external
// GT's own size, since its top-k is compared directly against it).
func (s *SampleStopper) topK(nRelevantPairs int) int {
	if s.external {
		if len(s.gtPairs) == 0 {
			return 1
		}
		return len(s.gtPairs)
	}
	k := int(float64(nRelevantPairs) * s.ratioGt)
	if k < 1 {
		k = 1
	}
	return k
}

// ppv returns |ranked ∩ GT| / k, the positive predictive value of §4.9
// (calcPPV divides by the ground truth's own size, gt->nGTPairs, not by
// however many candidates the filtered set actually yielded).
func (s *SampleStopper) ppv(ranked []accumulate.PairRank, k int) float64 {
	if k == 0 {
		return 0
	}
	hits := 0
	for _, r := range ranked {
		if _, ok := s.gtPairs[groundTruthPair{r.E1, r.E2}]; ok {
			hits++
		}
	}
	return float64(hits) / float64(k)
}

// replaceGroundTruth overwrites the internal ground truth with ranked's
// pairs and the events they touch.
func (s *SampleStopper) replaceGroundTruth(ranked []accumulate.PairRank) {
	s.gtPairs = make(map[groundTruthPair]struct{}, len(ranked))
	s.gtEvents = make(map[int]struct{}, len(ranked)*2)
	for _, r := range ranked {
		s.gtPairs[groundTruthPair{r.E1, r.E2}] = struct{}{}
		s.gtEvents[r.E1] = struct{}{}
		s.gtEvents[r.E2] = struct{}{}
	}
}
