// SPDX-License-Identifier: MIT

// Package network provides the capacitor and two-terminal multigraph types
// shared by every search method in capnet.
//
// A Network is an index-based arena rather than a pointer-linked structure:
//
//	node 0          – terminal A
//	node 1          – terminal B
//	node 2..n-1     – internal nodes ("internal-1", "internal-2", …)
//	edges[i]        – one capacitor between two distinct nodes
//
// Parallel edges between the same node pair are allowed (multigraph);
// self-loops are rejected because a capacitor shorted onto one node never
// contributes to the equivalent capacitance.
//
// Why an arena?
//
//   - Cheap deep copies (Clone) for in-place reduction working sets.
//   - Integer node identities make isomorphism and canonical ordering trivial.
//   - Deterministic iteration: Edges() is returned in insertion order and
//     Neighbors() is sorted ascending.
//
// Descriptors:
//
//	Describe(caps) turns a Network into a node/edge list using the stable
//	labels A, B, internal-1, … together with each edge's capacitor ID and
//	value. The descriptor's String() is also the identity key used to drop
//	repeated networks in randomized search.
//
// Errors:
//
//	ErrNoCapacitors      – empty capacitor list.
//	ErrNonPositiveValue  – capacitance ≤ 0.
//	ErrNonFiniteValue    – capacitance is NaN or ±Inf.
//	ErrNodeOutOfRange    – edge endpoint outside [0, NodeCount()).
//	ErrSelfLoop          – edge endpoints are equal.
//	ErrEdgeNotFound      – edge index outside [0, EdgeCount()).
package network
