// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultRCond is the relative singular-value cutoff used when callers pass
// a non-positive rcond to LeastSquares.
const DefaultRCond = 1e-12

// LeastSquares returns the minimum-norm x minimizing |m·x - b|₂.
//
// Implementation:
//   - Stage 1: Validate square input and b; copy into gonum storage.
//   - Stage 2: Thin SVD; effective rank counts singular values above
//     rcond·σ_max.
//   - Stage 3: Rank 0 yields the zero vector; otherwise solve on the
//     leading rank singular triplets.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (validation).
//   - ErrFactorizationFailed if the SVD does not converge.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LeastSquares(m *Dense, b []float64, rcond float64) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if err := ValidateVecLen(b, m.r); err != nil {
		return nil, matrixErrorf(opLeastSquares, err)
	}
	if !allFinite(m.data) || !allFinite(b) {
		return nil, matrixErrorf(opLeastSquares, ErrNaNInf)
	}
	if rcond <= 0 || math.IsNaN(rcond) {
		rcond = DefaultRCond
	}

	n := m.r
	a := mat.NewDense(n, n, append([]float64(nil), m.data...))
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, matrixErrorf(opLeastSquares, ErrFactorizationFailed)
	}

	rank := svd.Rank(rcond)
	if rank == 0 {
		return make([]float64, n), nil
	}

	var x mat.VecDense
	svd.SolveVecTo(&x, mat.NewVecDense(n, append([]float64(nil), b...)), rank)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}
	if !allFinite(out) {
		return nil, matrixErrorf(opLeastSquares, ErrNaNInf)
	}

	return out, nil
}

// SymmetricPseudoSolve solves m·x = b for symmetric m through its
// eigendecomposition, discarding eigenvalues with |λ| ≤ tol·max|λ|:
// x = Σ v·(vᵀb)/λ over the kept pairs.
//
// Errors:
//   - validation errors as for Eigen.
//   - ErrEigenFailed if Jacobi does not converge.
//
// Complexity:
//   - Time O(maxIter·n² + n²), Space O(n²).
func SymmetricPseudoSolve(m *Dense, b []float64, tol float64) ([]float64, error) {
	if err := ValidateSymmetric(m, symmetryTol(m)); err != nil {
		return nil, matrixErrorf(opPseudoSolve, err)
	}
	if err := ValidateVecLen(b, m.r); err != nil {
		return nil, matrixErrorf(opPseudoSolve, err)
	}
	if tol <= 0 || math.IsNaN(tol) {
		tol = DefaultRCond
	}

	n := m.r
	eigs, q, err := Eigen(m, symmetryTol(m), 100*n*n+100)
	if err != nil {
		return nil, matrixErrorf(opPseudoSolve, err)
	}

	var maxAbs float64
	for _, l := range eigs {
		if a := math.Abs(l); a > maxAbs {
			maxAbs = a
		}
	}
	x := make([]float64, n)
	if maxAbs == 0 {
		return x, nil
	}

	cut := tol * maxAbs
	var i, k int
	var proj float64
	for k = 0; k < n; k++ {
		if math.Abs(eigs[k]) <= cut {
			continue
		}
		proj = 0
		for i = 0; i < n; i++ {
			proj += q.data[i*n+k] * b[i]
		}
		proj /= eigs[k]
		for i = 0; i < n; i++ {
			x[i] += q.data[i*n+k] * proj
		}
	}
	if !allFinite(x) {
		return nil, matrixErrorf(opPseudoSolve, ErrNaNInf)
	}

	return x, nil
}

// symmetryTol scales an absolute tolerance to the matrix magnitude. It
// serves both the symmetry check and the Jacobi stopping rule.
func symmetryTol(m *Dense) float64 {
	if m == nil {
		return 0
	}
	var maxAbs float64
	for _, v := range m.data {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	return 1e-12 * maxAbs
}
