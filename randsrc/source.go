package randsrc

import "math/rand"

// Source is one deterministic random stream. It is not safe for concurrent
// use; each worker and the central tie-breaking stream own an independent
// *Source.
type Source struct {
	rng *rand.Rand
}

// mixSeed applies the SplitMix64-style avalanche finalizer (grounded on
// tsp.deriveSeed) to decorrelate adjacent input seeds before they feed
// math/rand.NewSource.
func mixSeed(seed int64) int64 {
	x := uint64(seed) + 0x9e3779b97f4a7c15
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// NewWorkerSource returns worker k's independent stream R_k, seeded from
// s+k and mixed through mixSeed.
func NewWorkerSource(seed int64, workerID int) *Source {
	return &Source{rng: rand.New(rand.NewSource(mixSeed(seed + int64(workerID))))}
}

// NewCentralSource returns the central stream used for breaking ranking
// ties (§4.7) — not a worker stream, so that rank stability is a
// run-level property independent of worker count.
func NewCentralSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(mixSeed(seed - 1)))}
}

// UniformInt returns a value in [0, n). Panics if n <= 0, matching
// math/rand.Intn's contract.
func (s *Source) UniformInt(n int) int {
	return s.rng.Intn(n)
}

// Shuffle performs a Fisher-Yates shuffle of n elements, calling swap(i, j)
// for each transposition, mirroring math/rand.Rand.Shuffle's contract.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// CoinFlip returns true or false with equal probability, used by the
// ranking tie-break's third level (§4.7).
func (s *Source) CoinFlip() bool {
	return s.rng.Intn(2) == 1
}

// ShuffleInts performs an in-place Fisher-Yates shuffle of a, matching the
// teacher's shuffleIntsInPlace shape for callers that prefer a slice
// helper over the swap-callback form.
func (s *Source) ShuffleInts(a []int) {
	s.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
}
