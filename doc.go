// SPDX-License-Identifier: MIT

// Package capnet finds two-terminal capacitor networks whose equivalent
// capacitance best matches a target, using a fixed set of capacitors.
//
// What is in the box?
//
//	Three search engines that share one ranking and progress protocol:
//		• sp        : every series-parallel expression tree, closed-form C_eq
//		• spgraph   : every SP-reducible multigraph, including internal nodes
//		• heuristic : seeded random networks (bridges included), solved by nodal analysis
//
// Under the hood:
//
//	network/    Capacitor, the index-arena Network (A=0, B=1, internal 2..) and descriptors
//	matrix/     dense LU, Jacobi eigen, SVD least squares (gonum) for singular systems
//	laplacian/  nodal admittance solver: V_A=1, V_B=0, C_eq = current out of A
//	sp/         series-parallel expression trees and their enumeration
//	spgraph/    multigraph templates, capacitor placement, SP reduction
//	heuristic/  seeded random network sampler
//	builder/    fixed shapes (chain, bank, ladder, bridge, complete) for comparison
//	metrics/    absolute/relative error, tolerance flag, stable ranking, best-K collector
//	progress/   Report, callback and cadence ticker; the only cancellation checkpoint
//	search/     Config, Validate, Preflight complexity warning, Run dispatch
//	cmd/capnet  command-line front end
//
// Quick example, values in farads:
//
//	cfg := search.DefaultConfig()
//	cfg.Capacitors = network.Capacitors(3e-12, 2e-12, 3e-12, 1e-12)
//	cfg.Target = 1e-12
//	cfg.Method = search.MethodSPGraph
//	res, err := search.Run(cfg)
//
// Every engine is single-threaded and deterministic for a given input:
// equal inputs give identical ranked output, ties broken by generation
// order.
package capnet
