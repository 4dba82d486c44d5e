// SPDX-License-Identifier: MIT

package spgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Multigraph is an undirected loop-free multigraph on vertices
// 0..Vertices-1. Each edge is stored as {u, v} with u < v; parallel edges
// repeat the pair.
type Multigraph struct {
	Vertices int
	Edges    [][2]int
}

// Isomorphism decides structural equality of multigraphs. GenerateTopologies
// uses Signature as a cheap pre-filter and calls Isomorphic only when two
// signatures collide.
type Isomorphism interface {
	// Signature returns an invariant string: isomorphic graphs must agree.
	Signature(g Multigraph) string
	// Isomorphic reports whether a vertex bijection maps g onto h.
	Isomorphic(g, h Multigraph) bool
	// Automorphisms returns every vertex permutation mapping g onto
	// itself, identity first, in a fixed order.
	Automorphisms(g Multigraph) [][]int
}

// PermutationIsomorphism is the default Isomorphism: a degree-sequence and
// edge-multiplicity signature, and an exact backtracking search over vertex
// maps that respect degree classes.
type PermutationIsomorphism struct{}

var _ Isomorphism = PermutationIsomorphism{}

// Signature encodes the vertex and edge counts, the sorted degree sequence,
// and the sorted multiset of (degree, degree, multiplicity) per adjacent
// pair.
func (PermutationIsomorphism) Signature(g Multigraph) string {
	a := newAdjacency(g)
	degs := append([]int(nil), a.deg...)
	sort.Sort(sort.Reverse(sort.IntSlice(degs)))

	var pairs []string
	for u := 0; u < a.n; u++ {
		for v := u + 1; v < a.n; v++ {
			if m := a.mult[u][v]; m > 0 {
				du, dv := a.deg[u], a.deg[v]
				if du > dv {
					du, dv = dv, du
				}
				pairs = append(pairs, fmt.Sprintf("%d-%dx%d", du, dv, m))
			}
		}
	}
	sort.Strings(pairs)

	return fmt.Sprintf("V%d E%d D%v M[%s]", a.n, len(g.Edges), degs, strings.Join(pairs, " "))
}

// Isomorphic reports whether g and h are the same multigraph up to vertex
// relabelling.
func (PermutationIsomorphism) Isomorphic(g, h Multigraph) bool {
	if g.Vertices != h.Vertices || len(g.Edges) != len(h.Edges) {
		return false
	}
	found := false
	matchVertices(newAdjacency(g), newAdjacency(h), func([]int) bool {
		found = true
		return false
	})

	return found
}

// Automorphisms lists every self-map of g in lexicographic order of the
// permutation, which puts the identity first.
func (PermutationIsomorphism) Automorphisms(g Multigraph) [][]int {
	a := newAdjacency(g)
	var out [][]int
	matchVertices(a, a, func(phi []int) bool {
		out = append(out, append([]int(nil), phi...))
		return true
	})

	return out
}

// adjacency is the dense multiplicity view of a Multigraph.
type adjacency struct {
	n    int
	mult [][]int
	deg  []int
}

func newAdjacency(g Multigraph) *adjacency {
	a := &adjacency{n: g.Vertices, mult: make([][]int, g.Vertices), deg: make([]int, g.Vertices)}
	for i := range a.mult {
		a.mult[i] = make([]int, g.Vertices)
	}
	for _, e := range g.Edges {
		a.mult[e[0]][e[1]]++
		a.mult[e[1]][e[0]]++
		a.deg[e[0]]++
		a.deg[e[1]]++
	}

	return a
}

// matchVertices enumerates bijections phi: g → h (phi[v] is v's image)
// preserving degree and every pairwise multiplicity, in lexicographic
// order. yield returning false stops the search.
func matchVertices(g, h *adjacency, yield func(phi []int) bool) {
	if g.n != h.n {
		return
	}
	phi := make([]int, g.n)
	used := make([]bool, h.n)
	var place func(v int) bool
	place = func(v int) bool {
		if v == g.n {
			return yield(phi)
		}
		for w := 0; w < h.n; w++ {
			if used[w] || g.deg[v] != h.deg[w] {
				continue
			}
			ok := true
			for u := 0; u < v; u++ {
				if g.mult[u][v] != h.mult[phi[u]][w] {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			phi[v], used[w] = w, true
			if !place(v + 1) {
				return false
			}
			used[w] = false
		}

		return true
	}
	place(0)
}
