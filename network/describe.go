// SPDX-License-Identifier: MIT

package network

import (
	"strconv"
	"strings"
)

// FamilyGraph identifies node/edge list descriptors.
const FamilyGraph = "graph"

// EdgeDescriptor is one row of a node/edge list description.
type EdgeDescriptor struct {
	From      string  // node label, e.g. "A" or "internal-2"
	To        string  // node label
	Capacitor string  // capacitor ID, empty for synthesized edges
	Value     float64 // farads
}

// Descriptor is the renderer-facing description of a Network:
// labelled nodes and one row per capacitor.
type Descriptor struct {
	Nodes []string
	Edges []EdgeDescriptor
}

// Describe builds a Descriptor for n. Capacitor IDs are taken from caps by
// each edge's Capacitor index; edges without a valid index keep an empty ID.
// Complexity: O(V + E).
func (n *Network) Describe(caps []Capacitor) Descriptor {
	d := Descriptor{
		Nodes: make([]string, n.nodes),
		Edges: make([]EdgeDescriptor, len(n.edges)),
	}
	for v := 0; v < n.nodes; v++ {
		d.Nodes[v] = Label(v)
	}
	for i, e := range n.edges {
		from, to := e.From, e.To
		if from > to {
			from, to = to, from
		}
		row := EdgeDescriptor{From: Label(from), To: Label(to), Value: e.Value}
		if e.Capacitor >= 0 && e.Capacitor < len(caps) {
			row.Capacitor = caps[e.Capacitor].ID
		}
		d.Edges[i] = row
	}

	return d
}

// Family reports the descriptor family.
func (d Descriptor) Family() string { return FamilyGraph }

// String renders the edge list as "A-internal-1:C1=3e-12; internal-1-B:C2=2e-12".
func (d Descriptor) String() string {
	var b strings.Builder
	for i, e := range d.Edges {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.From)
		b.WriteByte('-')
		b.WriteString(e.To)
		b.WriteByte(':')
		if e.Capacitor != "" {
			b.WriteString(e.Capacitor)
			b.WriteByte('=')
		}
		b.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
	}

	return b.String()
}
