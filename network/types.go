// SPDX-License-Identifier: MIT
// Package network declares Capacitor, Edge and Network, the sentinel
// errors of the package, and the New constructor.

package network

import (
	"errors"
	"strconv"
)

// Sentinel errors for capacitor validation and network construction.
var (
	// ErrNoCapacitors indicates that a search was requested with no capacitors.
	ErrNoCapacitors = errors.New("network: capacitor list is empty")

	// ErrNonPositiveValue indicates a capacitance that is zero or negative.
	ErrNonPositiveValue = errors.New("network: capacitance must be positive")

	// ErrNonFiniteValue indicates a capacitance that is NaN or ±Inf.
	ErrNonFiniteValue = errors.New("network: capacitance must be finite")

	// ErrNodeOutOfRange indicates an edge endpoint outside the node arena.
	ErrNodeOutOfRange = errors.New("network: node index out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("network: self-loop not allowed")

	// ErrEdgeNotFound indicates an edge index outside the edge arena.
	ErrEdgeNotFound = errors.New("network: edge not found")
)

// Terminal node indices. Every Network reserves the first two slots.
const (
	TerminalA = 0
	TerminalB = 1
)

// terminalCount is the number of reserved terminal slots.
const terminalCount = 2

// NoCapacitor marks an edge that does not map to an input capacitor, such as
// an edge synthesized by series/parallel reduction.
const NoCapacitor = -1

// Capacitor is one input component.
//
// ID is a human-facing label ("C1", "C2", …); Value is the capacitance in farads.
type Capacitor struct {
	// ID labels the capacitor in topology descriptions.
	ID string

	// Value is the capacitance in farads; must be finite and > 0.
	Value float64
}

// Capacitors names a list of values C1..Cn in input order.
// Complexity: O(n).
func Capacitors(values ...float64) []Capacitor {
	caps := make([]Capacitor, len(values))
	for i, v := range values {
		caps[i] = Capacitor{ID: "C" + strconv.Itoa(i+1), Value: v}
	}

	return caps
}

// Values extracts the capacitance values in input order.
func Values(caps []Capacitor) []float64 {
	out := make([]float64, len(caps))
	for i := range caps {
		out[i] = caps[i].Value
	}

	return out
}

// Edge is one capacitor placed between two nodes.
type Edge struct {
	// ID is the edge's index in the arena.
	ID int

	// From and To are node indices; order carries no meaning (undirected).
	From int
	To   int

	// Value is the edge capacitance in farads.
	Value float64

	// Capacitor is the index of the input capacitor occupying this edge,
	// or NoCapacitor for edges synthesized during reduction.
	Capacitor int
}

// Other returns the endpoint of e opposite to v.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// Network is an undirected, weighted two-terminal multigraph stored as an
// index arena. Node 0 is terminal A, node 1 is terminal B.
//
// A Network is not safe for concurrent mutation; every search call owns its
// own instances.
type Network struct {
	nodes int    // total node count, terminals included
	edges []Edge // arena, insertion order
}

// New creates a Network with the two terminals and `internal` internal nodes.
// Negative counts are treated as zero.
// Complexity: O(1).
func New(internal int) *Network {
	if internal < 0 {
		internal = 0
	}

	return &Network{nodes: terminalCount + internal}
}
