// SPDX-License-Identifier: MIT

package search_test

import (
	"fmt"

	"github.com/katalvlaran/capnet/network"
	"github.com/katalvlaran/capnet/search"
)

// ExampleRun compares the tree enumerator with the graph enumerator on a
// value set where only the graph form reaches the target exactly.
func ExampleRun() {
	cfg := search.DefaultConfig()
	cfg.Capacitors = network.Capacitors(3e-12, 2e-12, 3e-12, 1e-12)
	cfg.Target = 1e-12
	cfg.MaxResults = 1

	for _, m := range []search.Method{search.MethodSP, search.MethodSPGraph} {
		cfg.Method = m
		res, err := search.Run(cfg)
		if err != nil {
			fmt.Println(err)
			return
		}
		best, _ := res.Best()
		fmt.Printf("%-8s %.3f pF  %.2f%%\n", m, best.Ceq*1e12, best.RelativeError*100)
	}
	// Output:
	// sp       0.923 pF  7.69%
	// spgraph  1.000 pF  0.00%
}
