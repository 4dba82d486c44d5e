// SPDX-License-Identifier: MIT

// Package matrix offers the small dense linear-algebra kernel used by the
// Laplacian solver.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set/AddAt.
//   - LU factorization with partial pivoting and triangular solves, plus a
//     pivot-ratio estimate used to flag ill-conditioned systems.
//   - Eigen: Jacobi eigen-decomposition for symmetric matrices.
//   - LeastSquares: minimum-norm least-squares solve through a thin SVD
//     (gonum), the recovery path for singular systems.
//   - SymmetricPseudoSolve: pseudo-inverse solve through Eigen, used when the
//     SVD path is unavailable.
//
// All kernels are deterministic: fixed loop orders, no randomness, no
// goroutines. Errors are package sentinels wrapped with an operation tag;
// match them with errors.Is.
package matrix
