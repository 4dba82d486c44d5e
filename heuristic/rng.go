// SPDX-License-Identifier: MIT

package heuristic

import "math/rand"

// defaultSeed replaces a zero Options.Seed.
const defaultSeed int64 = 1

// rngFromSeed returns the run's only random stream.
// seed == 0 maps to defaultSeed; any other value is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// otherNode draws a node in [0, n) different from u. Requires n >= 2.
func otherNode(rng *rand.Rand, n, u int) int {
	v := rng.Intn(n - 1)
	if v >= u {
		v++
	}

	return v
}
