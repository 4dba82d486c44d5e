// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge lifecycle, queries and cloning for Network.
// Policy:
//   - All queries return fresh slices in deterministic order.
//   - Mutators validate and return sentinels; they never panic.

package network

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge appends a capacitor edge between from and to and returns its ID.
//
// Errors:
//   - ErrNodeOutOfRange if either endpoint is outside the arena.
//   - ErrSelfLoop if from == to.
//   - ErrNonFiniteValue / ErrNonPositiveValue for an invalid value.
//
// Complexity: O(1) amortized.
func (n *Network) AddEdge(from, to int, value float64, capacitor int) (int, error) {
	if from < 0 || from >= n.nodes || to < 0 || to >= n.nodes {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrNodeOutOfRange)
	}
	if from == to {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrSelfLoop)
	}
	if err := validateValue(value); err != nil {
		return 0, fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}

	id := len(n.edges)
	n.edges = append(n.edges, Edge{ID: id, From: from, To: to, Value: value, Capacitor: capacitor})

	return id, nil
}

// NodeCount returns the number of nodes, terminals included.
func (n *Network) NodeCount() int { return n.nodes }

// InternalCount returns the number of internal (non-terminal) nodes.
func (n *Network) InternalCount() int { return n.nodes - terminalCount }

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Edges returns a copy of the edge arena in insertion order.
// Complexity: O(E).
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Edge returns the edge with the given ID.
func (n *Network) Edge(id int) (Edge, error) {
	if id < 0 || id >= len(n.edges) {
		return Edge{}, fmt.Errorf("Edge(%d): %w", id, ErrEdgeNotFound)
	}

	return n.edges[id], nil
}

// Incident returns the IDs of edges touching v, ascending.
// Complexity: O(E).
func (n *Network) Incident(v int) []int {
	var ids []int
	for i := range n.edges {
		if n.edges[i].From == v || n.edges[i].To == v {
			ids = append(ids, i)
		}
	}

	return ids
}

// Degree returns the number of edge endpoints at v (parallel edges count
// separately).
func (n *Network) Degree(v int) int {
	d := 0
	for i := range n.edges {
		if n.edges[i].From == v || n.edges[i].To == v {
			d++
		}
	}

	return d
}

// Neighbors returns the distinct nodes adjacent to v, sorted ascending.
// Complexity: O(E + d·log d).
func (n *Network) Neighbors(v int) []int {
	seen := make(map[int]struct{})
	var out []int
	for i := range n.edges {
		e := n.edges[i]
		if e.From != v && e.To != v {
			continue
		}
		u := e.Other(v)
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	sort.Ints(out)

	return out
}

// adjacency builds per-node incident edge lists in edge-ID order.
// Used by traversal and the Laplacian assembly.
func (n *Network) adjacency() [][]int {
	adj := make([][]int, n.nodes)
	for i := range n.edges {
		e := n.edges[i]
		adj[e.From] = append(adj[e.From], i)
		adj[e.To] = append(adj[e.To], i)
	}

	return adj
}

// TotalCapacitance returns the sum of all edge values; it is an upper bound
// on any equivalent capacitance the network can present.
func (n *Network) TotalCapacitance() float64 {
	sum := 0.0
	for i := range n.edges {
		sum += n.edges[i].Value
	}

	return sum
}

// Clone returns a deep copy of n.
// Complexity: O(E).
func (n *Network) Clone() *Network {
	c := &Network{nodes: n.nodes, edges: make([]Edge, len(n.edges))}
	copy(c.edges, n.edges)

	return c
}

// validateValue enforces the capacitance numeric policy.
func validateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFiniteValue
	}
	if v <= 0 {
		return ErrNonPositiveValue
	}

	return nil
}
