// SPDX-License-Identifier: MIT

// Package laplacian computes the equivalent capacitance between two terminals
// of an arbitrary capacitor network by nodal analysis.
//
// Capacitors are admittances: drive terminal A at 1 V and hold terminal B at
// 0 V, solve Kirchhoff's current law at every internal node, and the charge
// leaving A equals the equivalent capacitance:
//
//	C_eq = Σ_{edges (A,v)} w · (V_A − V_v)
//
// # Pipeline
//
//   - Reachability from A. If B is not reachable the network is
//     disconnected and C_eq is exactly 0 (no linear solve is attempted).
//   - Nodes outside the A–B component are floating: they carry no current
//     and are excluded from the system. They are listed in Result.Floating.
//   - The reduced Laplacian over the remaining internal nodes is assembled
//     with weights normalized by the largest capacitance.
//   - Primary solve: LU with partial pivoting (matrix.Factorize).
//   - Fallback when the factorization is singular, the pivot ratio is below
//     PivotRatioThreshold, the solution is non-finite, or its residual is
//     large: minimum-norm least squares (matrix.LeastSquares, gonum SVD),
//     then a Jacobi pseudo-inverse (matrix.SymmetricPseudoSolve).
//
// The result is clamped to a finite, non-negative value. Structural misuse
// (nil graph, terminals out of range, A == B) is the only error path;
// numerical trouble never surfaces as an error.
//
// # Complexity
//
//	Time:   O(V + E) assembly + O(m³) solve for m internal nodes.
//	Memory: O(m²).
package laplacian
