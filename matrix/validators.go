// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Canonical validation checks shared by every kernel.
//  - Return sentinel errors tagged with the validator name; kernels add
//    their own operation tag on top.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return matrixErrorf(opValidateNoNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return matrixErrorf(opValidateSq, ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has length n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return matrixErrorf(opValidateVec, ErrNilMatrix)
	}
	if len(x) != n {
		return matrixErrorf(opValidateVec, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j]-A[j,i]| ≤ tol over the strict upper triangle.
// A negative tol is used by absolute value; NaN/Inf tol yields ErrNaNInf.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return matrixErrorf(opValidateSym, ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return matrixErrorf(opValidateSym, ErrAsymmetry)
			}
		}
	}

	return nil
}

// allFinite reports whether every entry of x is finite.
func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
