// SPDX-License-Identifier: MIT

package sp

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/capnet/network"
)

// FamilySP identifies series-parallel expression descriptors.
const FamilySP = "sp"

// Sentinel errors reported by Node.Validate.
var (
	// ErrMalformed indicates a leaf with children or a composite with fewer than two.
	ErrMalformed = errors.New("sp: malformed node")

	// ErrNotFlattened indicates a Series child under Series or Parallel under Parallel.
	ErrNotFlattened = errors.New("sp: flattening invariant violated")

	// ErrLeafMultiset indicates leaves that do not cover the inputs exactly once.
	ErrLeafMultiset = errors.New("sp: leaves do not match the capacitor list")
)

// Kind tags a Node variant.
type Kind int

const (
	// Leaf is a single capacitor.
	Leaf Kind = iota
	// Series chains its children end to end.
	Series
	// Parallel joins its children across the same two nodes.
	Parallel
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Series:
		return "series"
	case Parallel:
		return "parallel"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one vertex of a series-parallel expression tree.
//
// Leaves carry a capacitor; Series and Parallel nodes carry at least two
// children, never of their own kind. Trees produced by Enumerate share
// subtrees with each other and must be treated as read-only; use Clone
// before modifying one.
type Node struct {
	Kind      Kind
	Capacitor int     // leaf: index into the input capacitor list
	ID        string  // leaf: capacitor label
	Value     float64 // leaf: capacitance in farads
	Children  []*Node // Series/Parallel: ordered operands

	ceq   float64
	ready bool
	key   string
}

// NewLeaf returns a leaf for capacitor c at input index idx.
func NewLeaf(idx int, c network.Capacitor) *Node {
	return &Node{Kind: Leaf, Capacitor: idx, ID: c.ID, Value: c.Value, ceq: c.Value, ready: true}
}

// NewSeries combines children in series, absorbing Series children so the
// result stays flat.
func NewSeries(children ...*Node) *Node { return combine(Series, children...) }

// NewParallel combines children in parallel, absorbing Parallel children.
func NewParallel(children ...*Node) *Node { return combine(Parallel, children...) }

func combine(kind Kind, children ...*Node) *Node {
	flat := make([]*Node, 0, len(children)+2)
	for _, c := range children {
		if c.Kind == kind {
			flat = append(flat, c.Children...)
			continue
		}
		flat = append(flat, c)
	}
	vals := make([]float64, len(flat))
	for i, c := range flat {
		vals[i] = c.Ceq()
	}
	n := &Node{Kind: kind, Children: flat, ready: true}
	if kind == Series {
		n.ceq = SeriesValue(vals...)
	} else {
		n.ceq = ParallelValue(vals...)
	}

	return n
}

// SeriesValue is the series combination 1/Σ(1/c). It returns 0 when any
// value is 0 and for an empty list.
func SeriesValue(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var inv float64
	for _, v := range values {
		if v == 0 {
			return 0
		}
		inv += 1 / v
	}

	return 1 / inv
}

// ParallelValue is the parallel combination Σc.
func ParallelValue(values ...float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum
}

// Ceq returns the closed-form equivalent capacitance of the subtree.
// Complexity: O(1) for constructed nodes, O(size) for literal ones.
func (n *Node) Ceq() float64 {
	if n.ready {
		return n.ceq
	}
	switch n.Kind {
	case Leaf:
		return n.Value
	case Series, Parallel:
		vals := make([]float64, len(n.Children))
		for i, c := range n.Children {
			vals[i] = c.Ceq()
		}
		if n.Kind == Series {
			return SeriesValue(vals...)
		}

		return ParallelValue(vals...)
	default:
		return 0
	}
}

// Family implements metrics.Topology.
func (n *Node) Family() string { return FamilySP }

// String renders the tree as an expression such as "((C1||C2)+C3)".
// Series joins with "+", Parallel with "||".
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)

	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n.Kind == Leaf {
		if n.ID != "" {
			b.WriteString(n.ID)
			return
		}
		b.WriteString("C" + strconv.Itoa(n.Capacitor+1))
		return
	}
	sep := "+"
	if n.Kind == Parallel {
		sep = "||"
	}
	b.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(sep)
		}
		c.write(b)
	}
	b.WriteByte(')')
}

// Leaves returns the leaf capacitor indices in left-to-right order.
func (n *Node) Leaves() []int {
	var out []int
	var walk func(*Node)
	walk = func(x *Node) {
		if x.Kind == Leaf {
			out = append(out, x.Capacitor)
			return
		}
		for _, c := range x.Children {
			walk(c)
		}
	}
	walk(n)

	return out
}

// Validate checks that n is well formed, flat, and uses each of the
// capacitor indices 0..count-1 exactly once.
func (n *Node) Validate(count int) error {
	if err := n.validateShape(); err != nil {
		return err
	}
	seen := make([]bool, count)
	for _, idx := range n.Leaves() {
		if idx < 0 || idx >= count || seen[idx] {
			return fmt.Errorf("Validate: leaf %d: %w", idx, ErrLeafMultiset)
		}
		seen[idx] = true
	}
	for i, ok := range seen {
		if !ok {
			return fmt.Errorf("Validate: capacitor %d unused: %w", i, ErrLeafMultiset)
		}
	}

	return nil
}

func (n *Node) validateShape() error {
	switch n.Kind {
	case Leaf:
		if len(n.Children) != 0 {
			return fmt.Errorf("Validate: leaf with children: %w", ErrMalformed)
		}
		return nil
	case Series, Parallel:
		if len(n.Children) < 2 {
			return fmt.Errorf("Validate: %s with %d children: %w", n.Kind, len(n.Children), ErrMalformed)
		}
		for _, c := range n.Children {
			if c.Kind == n.Kind {
				return fmt.Errorf("Validate: %s under %s: %w", c.Kind, n.Kind, ErrNotFlattened)
			}
			if err := c.validateShape(); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("Validate: %s: %w", n.Kind, ErrMalformed)
	}
}

// Clone returns a deep copy that shares nothing with n.
func (n *Node) Clone() *Node {
	cp := *n
	if n.Children != nil {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.Clone()
		}
	}

	return &cp
}

// Network lays the tree out as a graph between network.TerminalA and
// network.TerminalB. Each Series of k children adds k-1 internal nodes.
// caps supplies edge values by leaf index.
func (n *Node) Network(caps []network.Capacitor) (*network.Network, error) {
	g := network.New(n.internalNodes())
	next := 2
	var lay func(x *Node, a, b int) error
	lay = func(x *Node, a, b int) error {
		switch x.Kind {
		case Leaf:
			if x.Capacitor < 0 || x.Capacitor >= len(caps) {
				return fmt.Errorf("Network: leaf %d: %w", x.Capacitor, ErrLeafMultiset)
			}
			_, err := g.AddEdge(a, b, caps[x.Capacitor].Value, x.Capacitor)
			return err
		case Parallel:
			for _, c := range x.Children {
				if err := lay(c, a, b); err != nil {
					return err
				}
			}
			return nil
		default:
			from := a
			for i, c := range x.Children {
				to := b
				if i < len(x.Children)-1 {
					to = next
					next++
				}
				if err := lay(c, from, to); err != nil {
					return err
				}
				from = to
			}
			return nil
		}
	}
	if err := lay(n, network.TerminalA, network.TerminalB); err != nil {
		return nil, err
	}

	return g, nil
}

func (n *Node) internalNodes() int {
	if n.Kind == Leaf {
		return 0
	}
	total := 0
	if n.Kind == Series {
		total = len(n.Children) - 1
	}
	for _, c := range n.Children {
		total += c.internalNodes()
	}

	return total
}

// valueKey is the commutative value form: children sorted, leaves by
// value. Trees with equal keys are indistinguishable electrically and
// structurally once identical capacitors are interchanged.
func (n *Node) valueKey() string {
	if n.key != "" {
		return n.key
	}
	if n.Kind == Leaf {
		n.key = strconv.FormatFloat(n.Value, 'g', -1, 64)
		return n.key
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.valueKey()
	}
	sort.Strings(parts)
	tag := "S("
	if n.Kind == Parallel {
		tag = "P("
	}
	n.key = tag + strings.Join(parts, ",") + ")"

	return n.key
}
