// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/capnet/network"
)

const bridgeCapacitors = 5

// Bridge returns a Constructor for the Wheatstone bridge over exactly five
// capacitors: A–n1, A–n2, n1–B, n2–B, then the n1–n2 crossing.
func Bridge() Constructor {
	return func(caps []network.Capacitor) (*network.Network, error) {
		if len(caps) != bridgeCapacitors {
			return nil, fmt.Errorf("%s: n=%d, want %d: %w", MethodBridge, len(caps), bridgeCapacitors, ErrCapacitorCount)
		}
		a := newEdgeAdder(MethodBridge, 2, caps)
		a.add(network.TerminalA, 2)
		a.add(network.TerminalA, 3)
		a.add(2, network.TerminalB)
		a.add(3, network.TerminalB)
		a.add(2, 3)

		return a.result()
	}
}

// Complete returns a Constructor joining every pair of k nodes once, where
// len(caps) = k(k-1)/2 and k >= 2. Pairs are filled in lexicographic order
// (A–B, A–n1, …, B–n1, …).
//
// Complexity: O(k²).
func Complete() Constructor {
	return func(caps []network.Capacitor) (*network.Network, error) {
		k := completeOrder(len(caps))
		if k < 2 {
			return nil, fmt.Errorf("%s: n=%d is not k(k-1)/2: %w", MethodComplete, len(caps), ErrCapacitorCount)
		}
		a := newEdgeAdder(MethodComplete, k-2, caps)
		for u := 0; u < k; u++ {
			for v := u + 1; v < k; v++ {
				a.add(u, v)
			}
		}

		return a.result()
	}
}

// completeOrder returns k with k(k-1)/2 == m, or 0.
func completeOrder(m int) int {
	for k := 2; k*(k-1)/2 <= m; k++ {
		if k*(k-1)/2 == m {
			return k
		}
	}

	return 0
}
