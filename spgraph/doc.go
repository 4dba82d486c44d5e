// SPDX-License-Identifier: MIT

// Package spgraph searches capacitor networks by enumerating multigraph
// topologies and keeping those that series/parallel reduction collapses.
//
// Where package sp builds expression trees directly, spgraph works on the
// graph form: it generates every connected loop-free multigraph with one
// edge per capacitor, chooses terminal pairs, places capacitors on edges,
// and asks Reduce whether the result is series-parallel between A and B.
// The reducible set contains every value package sp produces in Subsets
// mode; the graph view additionally yields the network as an edge list.
//
// Pipeline:
//
//	GenerateTopologies(E)   multigraphs up to isomorphism × terminal orbits
//	AssignCapacitors(t, c)  placements up to symmetry and equal values
//	Template.Network        instantiate a *network.Network
//	Reduce / IsSPReducible  parallel merge, series elimination, repeat
//
// Isomorphism is pluggable through WithIsomorphism. The default
// PermutationIsomorphism buckets graphs by a degree/multiplicity signature
// and confirms collisions with an exact backtracking search.
//
// Template counts grow fast (1, 3, 11, 43, 178 for one to five edges);
// RecommendedMaxCapacitors marks where interactive use stops.
//
// Errors:
//
//	network.ErrNoCapacitors, network.ErrNonPositiveValue,
//	network.ErrNonFiniteValue from Solve on invalid input.
package spgraph
