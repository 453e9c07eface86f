// SPDX-License-Identifier: MIT
// Package mat: sentinel errors.
//
// NOTE ON NAMING
//
//	Every sentinel is prefixed "mat:" so a wrapped chain printed by an
//	application still identifies the layer that rejected the call. Match
//	with errors.Is, never by string.
//
// ERROR CLASSES
//
//	Caller errors (bad shape, bad index, mismatched dimensions, asking a
//	square-only question of a rectangle) return sentinels. Mathematical
//	absences (no solution, no inverse under LU) use (value, ok) returns;
//	the one exception is Inverse, where a singular matrix is reported as
//	ErrSingular so the cause survives into wrapped error chains.

package mat

import "errors"

var (
	// ErrBadShape reports a negative or otherwise unusable matrix shape.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange reports a row or column index outside the matrix.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch reports operands whose dimensions do not agree.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare reports a square-only operation on a rectangular matrix.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrSingular reports an inversion of a singular matrix.
	ErrSingular = errors.New("mat: matrix is singular")
)
