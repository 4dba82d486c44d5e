// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/capnet/network"
)

// Chain returns a Constructor putting every capacitor in series:
// n capacitors use n-1 internal nodes.
//
// Complexity: O(n).
func Chain() Constructor {
	return func(caps []network.Capacitor) (*network.Network, error) {
		n := len(caps)
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d: %w", MethodChain, n, ErrTooFewCapacitors)
		}
		a := newEdgeAdder(MethodChain, n-1, caps)
		prev := network.TerminalA
		for i := 0; i < n-1; i++ {
			node := i + 2
			a.add(prev, node)
			prev = node
		}
		a.add(prev, network.TerminalB)

		return a.result()
	}
}

// Bank returns a Constructor putting every capacitor directly across A–B.
//
// Complexity: O(n).
func Bank() Constructor {
	return func(caps []network.Capacitor) (*network.Network, error) {
		if len(caps) < 1 {
			return nil, fmt.Errorf("%s: n=0: %w", MethodBank, ErrTooFewCapacitors)
		}
		a := newEdgeAdder(MethodBank, 0, caps)
		for range caps {
			a.add(network.TerminalA, network.TerminalB)
		}

		return a.result()
	}
}

// Ladder returns a Constructor alternating series arms and shunts to B:
// caps[0] from A to n1, caps[1] from n1 to B, caps[2] from n1 to n2, and
// so on. With an odd count the last capacitor closes the final arm onto B.
//
// Complexity: O(n).
func Ladder() Constructor {
	return func(caps []network.Capacitor) (*network.Network, error) {
		n := len(caps)
		if n < 2 {
			return nil, fmt.Errorf("%s: n=%d < min=2: %w", MethodLadder, n, ErrTooFewCapacitors)
		}
		a := newEdgeAdder(MethodLadder, n/2, caps)
		prev, next := network.TerminalA, 2
		for j := 0; j < n; j++ {
			switch {
			case j%2 == 1:
				a.add(prev, network.TerminalB)
			case j == n-1:
				a.add(prev, network.TerminalB)
			default:
				a.add(prev, next)
				prev = next
				next++
			}
		}

		return a.result()
	}
}
