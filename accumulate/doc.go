// Package accumulate implements the Accumulator of §4.6: running
// coocSum/coocSquareSum/pValue tallies folded in per sample, the derived
// z-score report, and the §4.7 ranking with its three-way tie-break.
//
// Accumulate is the inner loop of every sampling batch (§4.10 step 3), so
// it reaches directly into cooc.HalfMatrix's live row slices rather than
// going through the bounds-checked At/Add accessors — the one place in
// this module that deliberately breaks the "treat Row() as read-only"
// convention, because here the accumulator owns the matrices it mutates.
package accumulate
