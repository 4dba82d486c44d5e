// SPDX-License-Identifier: MIT

package network

// walker encapsulates mutable breadth-first state.
type walker struct {
	adj     [][]int
	edges   []Edge
	queue   []int
	visited []bool
	order   []int
}

// Reachable marks every node reachable from any of the given sources.
// Sources outside the arena are ignored.
//
// Traversal is breadth-first with sources and incident edges visited in
// ascending order, so the result is deterministic.
// Complexity: O(V + E).
func (n *Network) Reachable(sources ...int) []bool {
	w := n.newWalker()
	for _, s := range sources {
		if s < 0 || s >= n.nodes || w.visited[s] {
			continue
		}
		w.enqueue(s)
	}
	w.loop()

	return w.visited
}

// Order returns nodes reachable from start in breadth-first visit order.
func (n *Network) Order(start int) []int {
	if start < 0 || start >= n.nodes {
		return nil
	}
	w := n.newWalker()
	w.enqueue(start)
	w.loop()

	return w.order
}

// Connected reports whether a path joins a and b.
func (n *Network) Connected(a, b int) bool {
	if a < 0 || a >= n.nodes || b < 0 || b >= n.nodes {
		return false
	}
	if a == b {
		return true
	}

	return n.Reachable(a)[b]
}

// IsConnected reports whether every node lies in one component.
func (n *Network) IsConnected() bool {
	seen := n.Reachable(TerminalA)
	for _, ok := range seen {
		if !ok {
			return false
		}
	}

	return true
}

func (n *Network) newWalker() *walker {
	return &walker{
		adj:     n.adjacency(),
		edges:   n.edges,
		queue:   make([]int, 0, n.nodes),
		visited: make([]bool, n.nodes),
		order:   make([]int, 0, n.nodes),
	}
}

// enqueue marks v visited and appends it to the queue.
func (w *walker) enqueue(v int) {
	w.visited[v] = true
	w.queue = append(w.queue, v)
}

// loop drains the queue.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		v := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, v)
		for _, id := range w.adj[v] {
			u := w.edges[id].Other(v)
			if !w.visited[u] {
				w.enqueue(u)
			}
		}
	}
}
