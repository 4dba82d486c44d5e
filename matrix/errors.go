// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels wrapped with an operation tag via
// matrixErrorf; callers match with errors.Is. No kernel panics on
// user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix or vector was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not, within eps.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a zero pivot is met during LU factorization.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates that the Jacobi routine did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrFactorizationFailed indicates that the SVD backend could not factorize.
	ErrFactorizationFailed = errors.New("matrix: factorization failed")
)

// Operation tags for unified error wrapping.
const (
	opAt            = "At"
	opSet           = "Set"
	opMatVec        = "MatVec"
	opLU            = "LU"
	opSolve         = "Solve"
	opEigen         = "Eigen"
	opLeastSquares  = "LeastSquares"
	opPseudoSolve   = "SymmetricPseudoSolve"
	opValidateSym   = "ValidateSymmetric"
	opValidateVec   = "ValidateVecLen"
	opValidateSq    = "ValidateSquare"
	opValidateNoNil = "ValidateNotNil"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
