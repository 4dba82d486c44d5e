// SPDX-License-Identifier: MIT

// Package search is the single entry point for callers that do not want
// to pick an engine package themselves.
//
// A Config names the capacitors, the target, the tolerance and a Method:
//
//	MethodSP         series-parallel expression trees (package sp)
//	MethodSPGraph    SP-reducible multigraphs with internal nodes (package spgraph)
//	MethodHeuristic  seeded random networks evaluated by nodal analysis (package heuristic)
//
// Validate rejects malformed input before any work starts. Preflight
// returns a *ComplexityWarning when an exhaustive method is expected to be
// slow; it is advisory and Run attaches it to the Result without stopping.
// Cancellation, through Config.Progress or Config.Ctx, yields a partial
// ranked Result with Cancelled set and a nil error.
package search
