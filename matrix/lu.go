// SPDX-License-Identifier: MIT

package matrix

import "math"

// ZeroPivot is the sentinel for detecting an exactly-zero pivot.
const ZeroPivot = 0.0

// LU holds a row-pivoted Doolittle factorization P·A = L·U packed in one
// Dense: the strict lower triangle stores L (unit diagonal implied), the
// upper triangle stores U.
type LU struct {
	lu       *Dense
	piv      []int   // piv[i] = original row placed at position i
	minPivot float64 // smallest |U[i,i]|
	maxPivot float64 // largest |U[i,i]|
}

// Factorize computes the LU factorization of a square matrix with partial
// pivoting (largest |a| in the current column wins; lowest row index on ties).
//
// Implementation:
//   - Stage 1: Validate square input; copy A into the working buffer.
//   - Stage 2: For k=0..n-1 pick the pivot row, swap, eliminate below.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from validation.
//   - ErrNaNInf if A holds non-finite entries.
//   - ErrSingular if a column has no non-zero pivot candidate.
//
// Determinism:
//   - Fixed k→i→j loop order and a deterministic tie rule.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(m *Dense) (*LU, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if !allFinite(m.data) {
		return nil, matrixErrorf(opLU, ErrNaNInf)
	}

	n := m.r
	w := m.Clone()
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}

	var (
		i, j, k, p int
		best, abs  float64
		factor     float64
		rowK, rowI int
	)
	f := &LU{lu: w, piv: piv, minPivot: math.Inf(1)}
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p, best = k, math.Abs(w.data[k*n+k])
		for i = k + 1; i < n; i++ {
			abs = math.Abs(w.data[i*n+k])
			if abs > best {
				p, best = i, abs
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			rowK, rowI = k*n, p*n
			for j = 0; j < n; j++ {
				w.data[rowK+j], w.data[rowI+j] = w.data[rowI+j], w.data[rowK+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}
		if best < f.minPivot {
			f.minPivot = best
		}
		if best > f.maxPivot {
			f.maxPivot = best
		}

		// Eliminate rows below k.
		rowK = k * n
		for i = k + 1; i < n; i++ {
			rowI = i * n
			factor = w.data[rowI+k] / w.data[rowK+k]
			w.data[rowI+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				w.data[rowI+j] -= factor * w.data[rowK+j]
			}
		}
	}

	return f, nil
}

// PivotRatio returns min|U[i,i]| / max|U[i,i]|, a cheap reciprocal
// condition estimate in (0, 1]. Values near zero flag ill-conditioning.
func (f *LU) PivotRatio() float64 {
	if f.maxPivot == 0 {
		return 0
	}

	return f.minPivot / f.maxPivot
}

// Solve returns x with A·x = b using the stored factors.
// Errors: ErrDimensionMismatch/ErrNilMatrix (bad b), ErrNaNInf if the
// solution overflows.
// Complexity: O(n²).
func (f *LU) Solve(b []float64) ([]float64, error) {
	n := f.lu.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var (
		i, k int
		sum  float64
		d    = f.lu.data
		y    = make([]float64, n)
		x    = make([]float64, n)
	)
	// Forward substitution on the permuted right-hand side: L·y = P·b.
	for i = 0; i < n; i++ {
		sum = b[f.piv[i]]
		for k = 0; k < i; k++ {
			sum -= d[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= d[i*n+k] * x[k]
		}
		x[i] = sum / d[i*n+i]
	}
	if !allFinite(x) {
		return nil, matrixErrorf(opSolve, ErrNaNInf)
	}

	return x, nil
}

// Solve factorizes m and solves m·x = b in one call.
func Solve(m *Dense, b []float64) ([]float64, error) {
	f, err := Factorize(m)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
