// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/katalvlaran/capnet/network"
)

// Canonical shape names, also used as error context.
const (
	MethodChain    = "chain"
	MethodBank     = "bank"
	MethodLadder   = "ladder"
	MethodBridge   = "bridge"
	MethodComplete = "complete"
)

// Constructor builds one network from already validated capacitors.
// It places every capacitor exactly once and returns sentinel errors, never
// panics.
type Constructor func(caps []network.Capacitor) (*network.Network, error)

var shapes = map[string]Constructor{
	MethodChain:    Chain(),
	MethodBank:     Bank(),
	MethodLadder:   Ladder(),
	MethodBridge:   Bridge(),
	MethodComplete: Complete(),
}

// Build validates caps and applies cons.
//
// Errors:
//   - ErrNilConstructor for a nil cons.
//   - network sentinels for invalid caps.
//   - the constructor's sentinel, wrapped with "Build: ".
func Build(caps []network.Capacitor, cons Constructor) (*network.Network, error) {
	if cons == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilConstructor)
	}
	if err := network.ValidateCapacitors(caps); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	g, err := cons(caps)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

// ByName resolves one of Shapes().
func ByName(name string) (Constructor, error) {
	c, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownShape)
	}

	return c, nil
}

// Shapes lists the names accepted by ByName in sorted order.
func Shapes() []string {
	names := lo.Keys(shapes)
	sort.Strings(names)

	return names
}

// edgeAdder places capacitors in order and remembers the first failure.
type edgeAdder struct {
	method string
	g      *network.Network
	caps   []network.Capacitor
	next   int
	err    error
}

func newEdgeAdder(method string, internal int, caps []network.Capacitor) *edgeAdder {
	return &edgeAdder{method: method, g: network.New(internal), caps: caps}
}

// add places the next capacitor between u and v.
func (a *edgeAdder) add(u, v int) {
	if a.err != nil {
		return
	}
	c := a.caps[a.next]
	if _, err := a.g.AddEdge(u, v, c.Value, a.next); err != nil {
		a.err = fmt.Errorf("%s: AddEdge(%s→%s): %w", a.method, network.Label(u), network.Label(v), err)
		return
	}
	a.next++
}

func (a *edgeAdder) result() (*network.Network, error) {
	if a.err != nil {
		return nil, a.err
	}

	return a.g, nil
}
