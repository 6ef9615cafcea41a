// Package fdsm implements the Fixed Degree Sequence Model: a
// degree-preserving graph randomization engine for statistical
// co-occurrence null-model testing.
//
// Given a bipartite actor/event graph (or a general graph, for the
// single-actor case), fdsm repeatedly perturbs it with degree-preserving
// swap moves — single-edge switches or Curveball trades — and compares
// each randomized co-occurrence matrix against the original to build a
// per-pair p-value, mean, variance, and z-score. The result ranks event
// pairs by how surprising their real-world co-occurrence is against the
// population of graphs sharing the same degree sequence.
//
// Everything under the hood is organized by concern:
//
//	gmodel/     — the canonical bipartite/general graph representation
//	bitmatrix/  — bit-packed adjacency storage shared by gmodel and cooc
//	swap/       — single-switch and Curveball degree-preserving moves
//	cooc/       — concurrent co-occurrence matrix computation
//	heuristic/  — swap-count calibration and sampling stop conditions
//	accumulate/ — running tallies, p-value/z-score reports, and ranking
//	dispatch/   — the worker pool that drives calibration and sampling
//	randsrc/    — deterministic, stream-isolated random sources
//	fdsmconfig/ — configuration loading
//	telemetry/  — structured run logging
//	fdsmerr/    — error kinds and classification
//
// A typical run loads a graph with gmodel.LoadBipartite, builds a
// dispatch.Dispatcher from a fdsmconfig.Config, and calls Run to drive
// calibration, sampling, and ranking to completion:
//
//	g, err := gmodel.LoadBipartite(r)
//	cfg := fdsmconfig.Default()
//	d, err := dispatch.NewDispatcher(g, cfg, nil, telemetry.Nop)
//	report, err := d.Run(context.Background())
package fdsm
