// SPDX-License-Identifier: MIT

package sp

import (
	"iter"
	"math/bits"

	"github.com/katalvlaran/capnet/network"
)

// MaxCapacitors is the largest input Enumerate accepts; subsets are
// tracked as 64-bit masks.
const MaxCapacitors = 64

// PartitionMode selects how a capacitor set is split into two sides.
type PartitionMode int

const (
	// Contiguous splits the ordered list into a prefix and a suffix only.
	// Tree counts follow the large Schröder numbers 1, 2, 6, 22, 90, ….
	Contiguous PartitionMode = iota

	// Subsets splits into every pair of complementary non-empty subsets.
	// Tree counts follow 1, 2, 8, 52, 472, ….
	Subsets
)

// String implements fmt.Stringer.
func (m PartitionMode) String() string {
	if m == Subsets {
		return "subsets"
	}

	return "contiguous"
}

// Enumerate returns every flattened series-parallel tree over caps paired
// with its equivalent capacitance.
//
// The sequence is lazy and restartable: each range over it starts from
// scratch with a fresh memo. Order is fixed for a given input. When values
// repeat, trees that only differ by swapping equal capacitors are emitted
// once, the first in order winning.
//
// Implementation:
//   - A Series tree on S is a non-Series tree on the left side L (which
//     holds the lowest index of S) followed by the children of any tree on
//     S\L. Parallel trees mirror this. Each flattened tree arises once.
//   - Sub-results are memoized per subset mask for the duration of one
//     iteration. The top level is generated on demand.
//
// Partition defaults to Contiguous, which keeps capacitors in input order
// and leaves networks that need reordering or internal nodes to package
// spgraph; with 3, 2, 3 and 1 pF it cannot reach 1 pF, while Subsets can
// via (3+3+(2||1)).
//
// Edge cases: no capacitors yields nothing; one yields its leaf; more than
// MaxCapacitors yields nothing.
func Enumerate(caps []network.Capacitor, opts ...Option) iter.Seq2[*Node, float64] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	values := append([]network.Capacitor(nil), caps...)

	return func(yield func(*Node, float64) bool) {
		n := len(values)
		if n == 0 || n > MaxCapacitors {
			return
		}
		e := newEnumerator(values, o.Partition)
		if n == 1 {
			yield(e.leaves[0], e.leaves[0].ceq)
			return
		}

		var seen map[string]struct{}
		if e.dedup {
			seen = make(map[string]struct{})
		}
		emit := func(t *Node) bool {
			if seen != nil {
				k := t.valueKey()
				if _, dup := seen[k]; dup {
					return true
				}
				seen[k] = struct{}{}
			}

			return yield(t, t.ceq)
		}
		if e.each(e.full, Series, emit) {
			e.each(e.full, Parallel, emit)
		}
	}
}

// enumerator holds the per-iteration memo.
type enumerator struct {
	leaves []*Node
	mode   PartitionMode
	full   uint64
	dedup  bool
	memo   [2]map[uint64][]*Node // by Series-1 / Parallel-1
	all    map[uint64][]*Node
}

func newEnumerator(caps []network.Capacitor, mode PartitionMode) *enumerator {
	e := &enumerator{
		leaves: make([]*Node, len(caps)),
		mode:   mode,
		full:   uint64(1)<<uint(len(caps)) - 1,
		all:    make(map[uint64][]*Node),
	}
	e.memo[0] = make(map[uint64][]*Node)
	e.memo[1] = make(map[uint64][]*Node)
	values := make(map[float64]struct{}, len(caps))
	for i, c := range caps {
		e.leaves[i] = NewLeaf(i, c)
		if _, dup := values[c.Value]; dup {
			e.dedup = true
		}
		values[c.Value] = struct{}{}
	}

	return e
}

// each yields every kind-rooted tree on s in canonical order and reports
// whether the consumer wants more.
func (e *enumerator) each(s uint64, kind Kind, yield func(*Node) bool) bool {
	other := Parallel
	if kind == Parallel {
		other = Series
	}
	for l := range e.splits(s) {
		firsts := e.rooted(l, other)
		rests := e.trees(s &^ l)
		for _, f := range firsts {
			for _, r := range rests {
				if !yield(e.join(kind, f, r)) {
					return false
				}
			}
		}
	}

	return true
}

// join builds kind(f, r) with r's children absorbed when r shares the kind.
func (e *enumerator) join(kind Kind, f, r *Node) *Node {
	var children []*Node
	if r.Kind == kind {
		children = make([]*Node, 0, len(r.Children)+1)
		children = append(children, f)
		children = append(children, r.Children...)
	} else {
		children = []*Node{f, r}
	}
	vals := make([]float64, len(children))
	for i, c := range children {
		vals[i] = c.ceq
	}
	n := &Node{Kind: kind, Children: children, ready: true}
	if kind == Series {
		n.ceq = SeriesValue(vals...)
	} else {
		n.ceq = ParallelValue(vals...)
	}

	return n
}

// rooted returns the trees on s that are a single leaf or rooted at kind.
func (e *enumerator) rooted(s uint64, kind Kind) []*Node {
	if bits.OnesCount64(s) == 1 {
		return []*Node{e.leaves[bits.TrailingZeros64(s)]}
	}

	return e.combined(s, kind)
}

// combined returns the memoized kind-rooted trees on s.
func (e *enumerator) combined(s uint64, kind Kind) []*Node {
	m := e.memo[kind-1]
	if list, ok := m[s]; ok {
		return list
	}
	var (
		list []*Node
		keys map[string]struct{}
	)
	if e.dedup {
		keys = make(map[string]struct{})
	}
	e.each(s, kind, func(t *Node) bool {
		if keys != nil {
			k := t.valueKey()
			if _, dup := keys[k]; dup {
				return true
			}
			keys[k] = struct{}{}
		}
		list = append(list, t)
		return true
	})
	m[s] = list

	return list
}

// trees returns every tree on s: the leaf, or Series trees then Parallel.
func (e *enumerator) trees(s uint64) []*Node {
	if bits.OnesCount64(s) == 1 {
		return []*Node{e.leaves[bits.TrailingZeros64(s)]}
	}
	if list, ok := e.all[s]; ok {
		return list
	}
	ser := e.combined(s, Series)
	par := e.combined(s, Parallel)
	list := make([]*Node, 0, len(ser)+len(par))
	list = append(list, ser...)
	list = append(list, par...)
	e.all[s] = list

	return list
}

// splits yields the proper left sides of s, each holding the lowest bit.
func (e *enumerator) splits(s uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		low := s & -s
		if e.mode == Contiguous {
			for l := low; l != s; l = (l | l<<1) & s {
				if !yield(l) {
					return
				}
			}
			return
		}
		rest := s &^ low
		for sub := uint64(0); sub != rest; sub = (sub - rest) & rest {
			if !yield(low | sub) {
				return
			}
		}
	}
}
