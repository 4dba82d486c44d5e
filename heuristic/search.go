// SPDX-License-Identifier: MIT

package heuristic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/capnet/laplacian"
	"github.com/katalvlaran/capnet/metrics"
	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/progress"
)

// Search evaluates opts.Iterations random networks built from all of caps
// and returns the best ones against target.
//
// Implementation:
//   - Stage 1: Validate caps and opts, seed one *rand.Rand from opts.Seed.
//   - Stage 2: Per iteration draw k internal nodes, a random spanning tree
//     whose A→B path edges come first, and a shuffled capacitor order.
//     Capacitors fill tree edges in order; the rest land on random node
//     pairs. With fewer capacitors than tree edges the tail of the tree
//     stays empty and the network may be disconnected; it is evaluated
//     anyway (C_eq = 0) so the draw sequence never depends on the outcome.
//   - Stage 3: Evaluate with laplacian.Solve and offer the Solution to a
//     bounded collector that keeps each edge list once.
//
// Progress reports (iteration, Iterations, best absolute error) every
// ProgressEvery iterations; a false return or a cancelled Ctx stops the
// run after the current iteration with Cancelled set.
//
// Determinism:
//   - Identical caps, target and Options give a bit-identical Result.
//
// Errors:
//   - network.ErrNoCapacitors, network.ErrNonPositiveValue,
//     network.ErrNonFiniteValue for invalid caps.
//   - metrics.ErrBadTarget for a negative or non-finite target.
//   - ErrBadIterations, ErrBadInternalNodes, ErrBadMaxResults,
//     ErrBadTolerance, ErrBadProgressEvery for invalid opts.
//
// Complexity: O(Iterations · (k+2)³) dominated by the Laplacian solve.
func Search(caps []network.Capacitor, target float64, opts Options) (metrics.Result, error) {
	if err := network.ValidateCapacitors(caps); err != nil {
		return metrics.Result{}, fmt.Errorf("Search: %w", err)
	}
	if err := metrics.ValidateTarget(target); err != nil {
		return metrics.Result{}, fmt.Errorf("Search: %w", err)
	}
	if err := validateOptions(opts); err != nil {
		return metrics.Result{}, err
	}

	rng := rngFromSeed(opts.Seed)
	col := metrics.NewCollector(opts.MaxResults).Unique()
	tk := progress.NewTicker(opts.Ctx, opts.Progress, opts.ProgressEvery)
	log := opts.logger()

	var processed, disconnected, fallbacks int
	for i := 0; i < opts.Iterations; i++ {
		g, err := randomNetwork(rng, caps, opts.MaxInternalNodes)
		if err != nil {
			return metrics.Result{}, fmt.Errorf("Search: iteration %d: %w", i, err)
		}
		res, err := laplacian.Solve(g, network.TerminalA, network.TerminalB)
		if err != nil {
			return metrics.Result{}, fmt.Errorf("Search: iteration %d: %w", i, err)
		}
		if res.Disconnected {
			disconnected++
		}
		if res.Fallback {
			fallbacks++
		}
		s := metrics.NewSolution(g.Describe(caps), res.Ceq, target, opts.TolerancePct, i)
		s.Disconnected = res.Disconnected
		col.Add(s)

		processed++
		if !tk.Step(progress.Report{Processed: processed, Total: opts.Iterations, BestError: col.BestError()}) {
			break
		}
	}
	tk.Finish(progress.Report{Processed: processed, Total: opts.Iterations, BestError: col.BestError()})
	log.Debug("heuristic: search finished",
		"iterations", processed, "kept", col.Len(), "disconnected", disconnected,
		"fallbacks", fallbacks, "seed", opts.Seed, "cancelled", tk.Cancelled())

	return metrics.Result{
		Solutions: col.Solutions(),
		Processed: processed,
		Total:     opts.Iterations,
		Cancelled: tk.Cancelled(),
	}, nil
}

// randomNetwork draws one network with every capacitor placed once.
// The draw order is fixed: k, internal order, path length, tree
// attachments, capacitor order, then one node pair per leftover capacitor.
func randomNetwork(rng *rand.Rand, caps []network.Capacitor, maxInternal int) (*network.Network, error) {
	k := rng.Intn(maxInternal + 1)
	n := k + 2
	g := network.New(k)
	tree := spanningTree(rng, k)
	order := rng.Perm(len(caps))

	next := 0
	for _, e := range tree {
		if next == len(order) {
			break
		}
		c := order[next]
		if _, err := g.AddEdge(e[0], e[1], caps[c].Value, c); err != nil {
			return nil, err
		}
		next++
	}
	for ; next < len(order); next++ {
		c := order[next]
		u := rng.Intn(n)
		v := otherNode(rng, n, u)
		if _, err := g.AddEdge(u, v, caps[c].Value, c); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// spanningTree returns k+1 edges spanning A, B and k internal nodes.
// The first edges walk A → internal… → B; every remaining internal node
// hangs off a uniformly chosen node already in the tree.
func spanningTree(rng *rand.Rand, k int) [][2]int {
	internals := rng.Perm(k)
	for i := range internals {
		internals[i] += 2
	}
	onPath := rng.Intn(k + 1)

	edges := make([][2]int, 0, k+1)
	inTree := make([]int, 0, k+2)
	inTree = append(inTree, network.TerminalA)
	prev := network.TerminalA
	for _, v := range internals[:onPath] {
		edges = append(edges, [2]int{prev, v})
		inTree = append(inTree, v)
		prev = v
	}
	edges = append(edges, [2]int{prev, network.TerminalB})
	inTree = append(inTree, network.TerminalB)

	for _, v := range internals[onPath:] {
		u := inTree[rng.Intn(len(inTree))]
		edges = append(edges, [2]int{u, v})
		inTree = append(inTree, v)
	}

	return edges
}
