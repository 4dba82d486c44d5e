// SPDX-License-Identifier: MIT

package matrix

import "math"

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply a rotation; accumulate rotations into Q.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix).
//   - *Dense: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrDimensionMismatch, ErrAsymmetry (validation).
//   - ErrEigenFailed if max off-diagonal ≥ tol after maxIter rotations.
//
// Determinism:
//   - Fixed pivot scan and update order.
//
// Complexity:
//   - Time O(maxIter * n²), Space O(n²).
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.r
	a := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter               int
		p, r               int
		maxOff, off        float64
		app, arr, apr      float64
		aip, air, qip, qir float64
		newIP, newIR       float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Pivot (p,r) maximizing |A[p,r]|.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff == 0 || maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			newIP = c*aip - s*air
			newIR = s*aip + c*air
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+r], a.data[r*n+i] = newIR, newIR
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff > 0 && maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
