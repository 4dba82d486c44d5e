// SPDX-License-Identifier: MIT

// Package sp enumerates series-parallel (SP) networks as expression trees.
//
// A tree is a Leaf (one capacitor) or a Series/Parallel node over two or
// more children. Trees are kept flat: a Series node never has a Series
// child, a Parallel node never a Parallel child, so every electrically
// distinct arrangement has exactly one shape. Equivalent capacitance is
// closed form:
//
//	leaf      c
//	parallel  Σ cᵢ
//	series    1 / Σ (1/cᵢ)
//
// # Enumeration
//
// Enumerate yields every tree over the input list as a lazy iter.Seq2 of
// (tree, C_eq). Two split policies exist:
//
//   - Contiguous (default): a set is split into a prefix and a suffix of
//     the input order. Counts follow the large Schröder numbers.
//   - Subsets: every split into complementary subsets. Counts grow as
//     1, 2, 8, 52, 472, 5504 and become impractical past about 8 values.
//
// Sub-results are memoized per subset bitmask within one iteration only.
// Repeated capacitor values are collapsed: trees that differ only by
// swapping equal capacitors are emitted once.
//
// # Solving
//
// Solve runs the enumeration, scores every tree through package metrics,
// and reports progress through package progress. Options follow the
// functional style: WithPartition, WithContext, WithProgress,
// WithProgressEvery, WithMaxResults, WithTolerance.
//
// # Errors
//
//   - network.ErrNoCapacitors, network.ErrNonPositiveValue,
//     network.ErrNonFiniteValue: invalid input to Solve.
//   - ErrTooManyCapacitors: more than MaxCapacitors inputs.
//   - ErrMalformed, ErrNotFlattened, ErrLeafMultiset: Node.Validate.
package sp
