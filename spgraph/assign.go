// SPDX-License-Identifier: MIT

package spgraph

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/capnet/network"
)

// AssignCapacitors returns the distinct ways to place caps on the edges of
// t, each as assignment[edge] = capacitor index.
//
// Two placements are the same network when one maps to the other by
// reordering parallel edges, by a symmetry of t, or by exchanging
// capacitors of equal value. Exactly one placement per class is returned:
// the one whose per-edge value classes are lexicographically smallest.
//
// Returns nil when len(caps) differs from the edge count.
//
// Complexity: O(P · |Symmetries| · E log E) for P multiset permutations.
func AssignCapacitors(t Template, caps []network.Capacitor) [][]int {
	e := len(t.Edges)
	if e == 0 || len(caps) != e {
		return nil
	}

	classOf, members := valueClasses(caps)
	perm := append([]int(nil), classOf...)
	sort.Ints(perm)

	groups := parallelGroups(t.Edges)
	var out [][]int
	for {
		if sortedWithinGroups(perm, groups) && canonical(t, perm) {
			out = append(out, materialize(perm, members))
		}
		if !nextPermutation(perm) {
			break
		}
	}

	return out
}

// valueClasses ranks distinct values ascending and returns each capacitor's
// class plus, per class, its capacitor indices in input order.
func valueClasses(caps []network.Capacitor) ([]int, [][]int) {
	vals := make([]float64, 0, len(caps))
	for _, c := range caps {
		vals = append(vals, c.Value)
	}
	sort.Float64s(vals)
	var distinct []float64
	for i, v := range vals {
		if i == 0 || v != vals[i-1] {
			distinct = append(distinct, v)
		}
	}
	classOf := make([]int, len(caps))
	members := make([][]int, len(distinct))
	for i, c := range caps {
		k := sort.SearchFloat64s(distinct, c.Value)
		classOf[i] = k
		members[k] = append(members[k], i)
	}

	return classOf, members
}

// parallelGroups returns [start, end) ranges of identical adjacent edges.
func parallelGroups(edges [][2]int) [][2]int {
	var groups [][2]int
	start := 0
	for i := 1; i <= len(edges); i++ {
		if i == len(edges) || edges[i] != edges[start] {
			if i-start > 1 {
				groups = append(groups, [2]int{start, i})
			}
			start = i
		}
	}

	return groups
}

func sortedWithinGroups(classes []int, groups [][2]int) bool {
	for _, g := range groups {
		for i := g[0] + 1; i < g[1]; i++ {
			if classes[i] < classes[i-1] {
				return false
			}
		}
	}

	return true
}

// labelledEdge is an edge image carrying its value class.
type labelledEdge struct {
	u, v, class int
}

// canonical reports whether no symmetry of t maps classes to a
// lexicographically smaller vector.
func canonical(t Template, classes []int) bool {
	img := make([]labelledEdge, len(t.Edges))
	for _, sym := range t.Symmetries {
		for i, e := range t.Edges {
			u, v := sym[e[0]], sym[e[1]]
			if u > v {
				u, v = v, u
			}
			img[i] = labelledEdge{u: u, v: v, class: classes[i]}
		}
		sort.Slice(img, func(i, j int) bool {
			a, b := img[i], img[j]
			if a.u != b.u {
				return a.u < b.u
			}
			if a.v != b.v {
				return a.v < b.v
			}
			return a.class < b.class
		})
		for i := range img {
			if img[i].class != classes[i] {
				if img[i].class < classes[i] {
					return false
				}
				break
			}
		}
	}

	return true
}

// materialize turns a class vector into capacitor indices, handing out the
// members of each class in input order.
func materialize(classes []int, members [][]int) []int {
	next := make([]int, len(members))
	out := make([]int, len(classes))
	for i, k := range classes {
		out[i] = members[k][next[k]]
		next[k]++
	}

	return out
}

// nextPermutation rearranges s into its lexicographic successor and
// reports false, leaving s sorted ascending, when s was the last one.
// Repeated elements yield each distinct arrangement once.
func nextPermutation[T constraints.Ordered](s []T) bool {
	i := len(s) - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		reverse(s)
		return false
	}
	j := len(s) - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	reverse(s[i+1:])

	return true
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
