// SPDX-License-Identifier: MIT
// Package mat: Gaussian elimination to echelon forms, rank, and inversion.
//
// Both echelon transforms work in place and return the has-pivot vector:
// one flag per column, set when the column received a pivot. The rank is
// the popcount of that vector, and its flipped bits name the free columns,
// which is exactly what the Gauss solver consumes.

package mat

import (
	"fmt"

	"github.com/katalvlaran/gf2/store"
)

// EchelonForm transforms the matrix to row echelon form in place and
// returns the has-pivot vector of Cols() flags. The echelon form is not
// unique.
//
// Errors:
//   - ErrBadShape if the matrix is empty.
func (m *Mat) EchelonForm() (*store.Vec, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("EchelonForm: empty matrix: %w", ErrBadShape)
	}

	hasPivot, _ := store.ZerosVec(m.cols)
	r := 0 // the echelon row currently being built
	for j := 0; j < m.cols; j++ {
		// Find a pivot for this column at or below row r.
		p := r
		for p < len(m.rows) && !m.at(p, j) {
			p++
		}
		if p == len(m.rows) {
			continue
		}

		hasPivot.Set(j, true)
		m.rows[p], m.rows[r] = m.rows[r], m.rows[p]

		// Clear the column below the pivot.
		for i := r + 1; i < len(m.rows); i++ {
			if m.at(i, j) {
				_ = store.Xor(m.rows[i], m.rows[r])
			}
		}

		r++
		if r == len(m.rows) {
			break
		}
	}

	return hasPivot, nil
}

// ReducedEchelonForm transforms the matrix to reduced row echelon form in
// place and returns the has-pivot vector of Cols() flags. The reduced form
// is unique.
//
// Errors:
//   - ErrBadShape if the matrix is empty.
func (m *Mat) ReducedEchelonForm() (*store.Vec, error) {
	hasPivot, err := m.EchelonForm()
	if err != nil {
		return nil, fmt.Errorf("ReducedEchelonForm: %w", err)
	}

	// Walk the pivot rows bottom-up, clearing each pivot column above its
	// pivot.
	rank := store.CountOnes(hasPivot)
	for r := rank - 1; r > 0; r-- {
		j, ok := store.FirstSet(m.rows[r])
		if !ok {
			continue
		}
		for i := 0; i < r; i++ {
			if m.at(i, j) {
				_ = store.Xor(m.rows[i], m.rows[r])
			}
		}
	}

	return hasPivot, nil
}

// Rank returns the rank of the matrix. The matrix is not modified; the
// elimination runs on a scratch copy. The empty matrix has rank 0.
func (m *Mat) Rank() int {
	if m.IsEmpty() {
		return 0
	}
	scratch := m.Clone()
	hasPivot, _ := scratch.EchelonForm()

	return store.CountOnes(hasPivot)
}

// Inverse returns the inverse of the matrix, computed by reducing the
// augmented matrix [M | I] and reading the inverse off the right half.
//
// Errors:
//   - ErrNonSquare if the matrix is not square.
//   - ErrSingular if the matrix has no inverse.
func (m *Mat) Inverse() (*Mat, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("Inverse: shape %d x %d: %w", len(m.rows), m.cols, ErrNonSquare)
	}
	n := len(m.rows)
	if n == 0 {
		return &Mat{}, nil // the empty matrix is its own inverse
	}

	aug := m.Clone()
	id, _ := Identity(n)
	_ = aug.AppendCols(id)
	hasPivot, _ := aug.ReducedEchelonForm()

	// Every original column needs a pivot, otherwise the matrix is rank
	// deficient.
	left, _ := hasPivot.Sub(0, n)
	if store.CountOnes(left) != n {
		return nil, fmt.Errorf("Inverse: rank %d of %d: %w", store.CountOnes(left), n, ErrSingular)
	}

	return aug.SubMatrix(0, n, n, 2*n)
}
