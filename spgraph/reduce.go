// SPDX-License-Identifier: MIT

package spgraph

import (
	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/sp"
)

// StepKind tags a ReductionStep.
type StepKind int

const (
	// StepParallel merged edges sharing both endpoints.
	StepParallel StepKind = iota
	// StepSeries eliminated an internal node of degree two.
	StepSeries
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	if k == StepSeries {
		return "series"
	}

	return "parallel"
}

// ReductionStep records one rewrite of the working copy.
type ReductionStep struct {
	Kind         StepKind
	Nodes        []int   // endpoints (parallel) or neighbor, node, neighbor (series)
	RemovedEdges []int   // working-copy edge ids retired by the step
	NewEdge      int     // working-copy id of the replacement edge
	Value        float64 // replacement edge value
}

// Reduction is the outcome of Reduce.
type Reduction struct {
	Value float64 // equivalent capacitance when OK
	OK    bool    // the graph collapsed to one A–B edge
	Steps []ReductionStep
}

// workEdge is an edge of the reduction working copy.
type workEdge struct {
	u, v  int
	value float64
	alive bool
}

// Reduce applies series/parallel rewrites to a private copy of g until
// nothing changes.
//
// Each round first merges every group of parallel edges into one edge
// carrying their sum, then eliminates one internal node (never a or b)
// with exactly two incident edges, replacing them by their series value.
// The graph is reducible iff a single edge between a and b remains.
//
// g is not modified. An invalid graph or terminal yields OK == false.
func Reduce(g *network.Network, a, b int) Reduction {
	if g == nil || a == b || a < 0 || b < 0 || a >= g.NodeCount() || b >= g.NodeCount() {
		return Reduction{}
	}
	src := g.Edges()
	work := make([]workEdge, len(src))
	for i, e := range src {
		work[i] = workEdge{u: e.From, v: e.To, value: e.Value, alive: true}
	}
	r := &reducer{n: g.NodeCount(), a: a, b: b, edges: work}
	for r.mergeParallel() || r.eliminateSeries() {
	}

	res := Reduction{Steps: r.steps}
	var last *workEdge
	alive := 0
	for i := range r.edges {
		if r.edges[i].alive {
			alive++
			last = &r.edges[i]
		}
	}
	if alive == 1 && ((last.u == a && last.v == b) || (last.u == b && last.v == a)) {
		res.OK, res.Value = true, last.value
	}

	return res
}

// IsSPReducible reports the equivalent capacitance of g between a and b
// when series/parallel reduction collapses it.
func IsSPReducible(g *network.Network, a, b int) (float64, bool) {
	r := Reduce(g, a, b)

	return r.Value, r.OK
}

type reducer struct {
	n, a, b int
	edges   []workEdge
	steps   []ReductionStep
}

// mergeParallel collapses every multi-edge group, scanning pairs in order
// of their first edge id. It reports whether anything changed.
func (r *reducer) mergeParallel() bool {
	changed := false
	var order [][2]int
	group := make(map[[2]int][]int)
	for id, e := range r.edges {
		if !e.alive {
			continue
		}
		k := pairKey(e.u, e.v)
		if _, ok := group[k]; !ok {
			order = append(order, k)
		}
		group[k] = append(group[k], id)
	}
	for _, k := range order {
		ids := group[k]
		if len(ids) < 2 {
			continue
		}
		vals := make([]float64, len(ids))
		for i, id := range ids {
			vals[i] = r.edges[id].value
			r.edges[id].alive = false
		}
		v := sp.ParallelValue(vals...)
		r.steps = append(r.steps, ReductionStep{
			Kind:         StepParallel,
			Nodes:        []int{k[0], k[1]},
			RemovedEdges: ids,
			NewEdge:      r.add(k[0], k[1], v),
			Value:        v,
		})
		changed = true
	}

	return changed
}

// eliminateSeries removes the lowest internal node of degree two whose
// edges reach two distinct neighbors. It reports whether one was found.
func (r *reducer) eliminateSeries() bool {
	incident := make([][]int, r.n)
	for id, e := range r.edges {
		if e.alive {
			incident[e.u] = append(incident[e.u], id)
			incident[e.v] = append(incident[e.v], id)
		}
	}
	for node := 0; node < r.n; node++ {
		if node == r.a || node == r.b || len(incident[node]) != 2 {
			continue
		}
		e1, e2 := incident[node][0], incident[node][1]
		x, y := other(r.edges[e1], node), other(r.edges[e2], node)
		if x == y {
			continue
		}
		r.edges[e1].alive = false
		r.edges[e2].alive = false
		v := sp.SeriesValue(r.edges[e1].value, r.edges[e2].value)
		r.steps = append(r.steps, ReductionStep{
			Kind:         StepSeries,
			Nodes:        []int{x, node, y},
			RemovedEdges: []int{e1, e2},
			NewEdge:      r.add(x, y, v),
			Value:        v,
		})

		return true
	}

	return false
}

func (r *reducer) add(u, v int, value float64) int {
	r.edges = append(r.edges, workEdge{u: u, v: v, value: value, alive: true})

	return len(r.edges) - 1
}

func other(e workEdge, v int) int {
	if e.u == v {
		return e.v
	}

	return e.u
}

func pairKey(u, v int) [2]int {
	if u > v {
		return [2]int{v, u}
	}

	return [2]int{u, v}
}
