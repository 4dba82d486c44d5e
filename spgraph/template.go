// SPDX-License-Identifier: MIT

package spgraph

import (
	"sort"

	"github.com/katalvlaran/capnet/network"
)

// Template is a topology without values: a connected multigraph whose
// vertex 0 is terminal A and vertex 1 is terminal B (internal vertices
// follow), plus the vertex symmetries that keep {A, B} in place.
type Template struct {
	Multigraph

	// Symmetries are the automorphisms mapping {0, 1} onto itself,
	// identity first. A symmetry may swap A and B.
	Symmetries [][]int
}

// Internal returns the number of internal vertices.
func (t Template) Internal() int { return t.Vertices - 2 }

// Network instantiates t with edge i carrying caps[assignment[i]].
func (t Template) Network(caps []network.Capacitor, assignment []int) (*network.Network, error) {
	g := network.New(t.Internal())
	for i, e := range t.Edges {
		c := assignment[i]
		if _, err := g.AddEdge(e[0], e[1], caps[c].Value, c); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// GenerateTopologies returns every connected loop-free multigraph with
// edgeCount edges on 2..edgeCount+1 vertices, unique up to isomorphism,
// crossed with every terminal pair unique up to automorphism.
//
// Implementation:
//   - Stage 1: For each vertex count, walk the multisets of vertex pairs in
//     lexicographic order. Keep connected graphs whose degrees do not
//     increase with the vertex index (every class has such a labelling).
//   - Stage 2: Bucket by Isomorphism.Signature; on collision compare with
//     Isomorphism.Isomorphic and keep the first representative.
//   - Stage 3: For each representative, keep terminal pairs {a, b} that are
//     lexicographically minimal over their automorphism orbit, and relabel
//     a→A, b→B, the rest ascending.
//
// Determinism:
//   - Output order follows vertex count, then generation order, then
//     terminal pair order.
//
// Complexity:
//   - Exponential in edgeCount; practical up to about 7.
func GenerateTopologies(edgeCount int, opts ...Option) []Template {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if edgeCount < 1 {
		return nil
	}

	iso := o.Isomorphism
	var (
		reps    []Multigraph
		buckets = make(map[string][]int)
	)
	for v := 2; v <= edgeCount+1; v++ {
		eachMultigraph(v, edgeCount, func(g Multigraph) {
			sig := iso.Signature(g)
			for _, idx := range buckets[sig] {
				if iso.Isomorphic(reps[idx], g) {
					return
				}
			}
			buckets[sig] = append(buckets[sig], len(reps))
			reps = append(reps, g)
		})
	}

	var out []Template
	for _, g := range reps {
		autos := iso.Automorphisms(g)
		for a := 0; a < g.Vertices; a++ {
			for b := a + 1; b < g.Vertices; b++ {
				if !minimalPair(a, b, autos) {
					continue
				}
				out = append(out, relabel(g, a, b, autos))
			}
		}
	}
	o.Logger.Debug("spgraph: topologies generated",
		"edges", edgeCount, "graphs", len(reps), "templates", len(out))

	return out
}

// eachMultigraph calls fn for every candidate multigraph with n vertices and
// m edges, in lexicographic order of the sorted pair list.
func eachMultigraph(n, m int, fn func(Multigraph)) {
	var pairs [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			pairs = append(pairs, [2]int{u, v})
		}
	}
	chosen := make([][2]int, 0, m)
	deg := make([]int, n)
	isolated := n

	var walk func(start int)
	walk = func(start int) {
		if len(chosen) == m {
			if isolated == 0 && nonIncreasing(deg) && connected(n, chosen) {
				fn(Multigraph{Vertices: n, Edges: append([][2]int(nil), chosen...)})
			}
			return
		}
		// Every remaining edge covers at most two isolated vertices.
		if isolated > 2*(m-len(chosen)) {
			return
		}
		for i := start; i < len(pairs); i++ {
			p := pairs[i]
			chosen = append(chosen, p)
			isolated -= bump(deg, p[0], 1) + bump(deg, p[1], 1)
			walk(i)
			isolated += bump(deg, p[0], -1) + bump(deg, p[1], -1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	walk(0)
}

// bump adds d to deg[v] and returns 1 if v left (d>0) or re-entered (d<0)
// the isolated set.
func bump(deg []int, v, d int) int {
	before := deg[v]
	deg[v] += d
	if (d > 0 && before == 0) || (d < 0 && deg[v] == 0) {
		return 1
	}

	return 0
}

func nonIncreasing(deg []int) bool {
	for i := 1; i < len(deg); i++ {
		if deg[i] > deg[i-1] {
			return false
		}
	}

	return true
}

// connected reports whether the edge list spans all n vertices.
func connected(n int, edges [][2]int) bool {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	comps := n
	for _, e := range edges {
		ra, rb := find(e[0]), find(e[1])
		if ra != rb {
			parent[ra] = rb
			comps--
		}
	}

	return comps == 1
}

// minimalPair reports whether {a, b} is the lexicographically smallest pair
// in its orbit under autos.
func minimalPair(a, b int, autos [][]int) bool {
	for _, phi := range autos {
		x, y := phi[a], phi[b]
		if x > y {
			x, y = y, x
		}
		if x < a || (x == a && y < b) {
			return false
		}
	}

	return true
}

// relabel moves a to 0, b to 1, and the rest after them in ascending order,
// and carries over the automorphisms that fix {a, b}.
func relabel(g Multigraph, a, b int, autos [][]int) Template {
	perm := make([]int, g.Vertices) // old → new
	perm[a], perm[b] = 0, 1
	next := 2
	for v := 0; v < g.Vertices; v++ {
		if v != a && v != b {
			perm[v] = next
			next++
		}
	}
	edges := make([][2]int, len(g.Edges))
	for i, e := range g.Edges {
		u, w := perm[e[0]], perm[e[1]]
		if u > w {
			u, w = w, u
		}
		edges[i] = [2]int{u, w}
	}
	sortEdges(edges)

	inv := make([]int, g.Vertices) // new → old
	for old, nw := range perm {
		inv[nw] = old
	}
	var syms [][]int
	for _, phi := range autos {
		if !((phi[a] == a && phi[b] == b) || (phi[a] == b && phi[b] == a)) {
			continue
		}
		s := make([]int, g.Vertices)
		for nw := range s {
			s[nw] = perm[phi[inv[nw]]]
		}
		syms = append(syms, s)
	}
	// Identity first, then lexicographic.
	sort.SliceStable(syms, func(i, j int) bool { return lessInts(syms[i], syms[j]) })

	return Template{Multigraph: Multigraph{Vertices: g.Vertices, Edges: edges}, Symmetries: syms}
}

func sortEdges(edges [][2]int) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
}

func lessInts(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
