// Package heuristic implements SwapHeuristic (§4.8) and SampleHeuristic
// (§4.9): calibrating how many swap steps separate two samples, and
// deciding when the sampling loop has converged.
package heuristic
