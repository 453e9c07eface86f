// SPDX-License-Identifier: MIT
// Package mat: characteristic polynomials via Danilevsky's algorithm.
//
// The route to the characteristic polynomial is similarity transforms, not
// determinants: FrobeniusForm reduces the matrix to block companion form,
// and the characteristic polynomial is the product of the blocks' easily
// read-off polynomials. Each Danilevsky step is a sparse similarity
// transform M^-1 * A * M where M is the identity with one row replaced, so
// over GF(2) a step is a handful of row XORs and M^-1 == M.
//
// Companion blocks here have their defining row on TOP and ones on the
// principal sub-diagonal, matching the Companion constructor. Some texts
// put the arbitrary entries in the last column instead; the characteristic
// polynomial is the same either way.

package mat

import (
	"fmt"

	"github.com/katalvlaran/gf2/poly"
	"github.com/katalvlaran/gf2/store"
)

// CharPoly returns the characteristic polynomial of the matrix, a monic
// polynomial of degree Rows(). The empty matrix yields the zero
// polynomial.
//
// Errors:
//   - ErrNonSquare if the matrix is not square.
func (m *Mat) CharPoly() (*poly.Poly, error) {
	tops, err := m.FrobeniusForm()
	if err != nil {
		return nil, fmt.Errorf("CharPoly: %w", err)
	}
	if len(tops) == 0 {
		return poly.Zero(), nil
	}

	result := CompanionCharPoly(tops[0])
	for _, top := range tops[1:] {
		result = result.Mul(CompanionCharPoly(top))
	}

	return result, nil
}

// CompanionCharPoly returns the characteristic polynomial of the companion
// matrix with the given top row: a monic polynomial of degree n whose low
// coefficients are the top row reversed.
func CompanionCharPoly(topRow *store.Vec) *poly.Poly {
	n := topRow.Len()
	coeffs, _ := store.OnesVec(n + 1)
	for j := 0; j < n; j++ {
		coeffs.Set(n-j-1, topRow.Get(j))
	}

	return poly.FromVec(coeffs)
}

// FrobeniusForm reduces a copy of the matrix to Frobenius (block
// companion) form and returns the blocks compactly as their top rows, in
// bottom-right to top-left order. The top rows' lengths sum to Rows().
//
// Errors:
//   - ErrNonSquare if the matrix is not square.
func (m *Mat) FrobeniusForm() ([]*store.Vec, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("FrobeniusForm: shape %d x %d: %w", len(m.rows), m.cols, ErrNonSquare)
	}

	var tops []*store.Vec
	work := m.Clone()
	for n := len(m.rows); n > 0; {
		top := work.danilevskyStep(n)
		n -= top.Len()
		tops = append(tops, top)
	}

	return tops, nil
}

// danilevskyStep reduces the bottom rows of the top-left n x n sub-matrix
// until the bottom-right corner is a companion block, and returns that
// block's top row. Rows below n are finished blocks from earlier calls and
// have no support in the first n columns, so full-length row and column
// operations cannot disturb them.
func (w *Mat) danilevskyStep(n int) *store.Vec {
	if n == 1 {
		top, _ := store.ZerosVec(1)
		top.Set(0, w.at(0, 0))

		return top
	}

	k := n - 1
	for k > 0 {
		// The transform needs a one on the sub-diagonal of row k. If it is
		// missing, try to steal one from an earlier column; the matching
		// row swap keeps the transform a similarity.
		if !w.at(k, k-1) {
			for j := 0; j < k-1; j++ {
				if w.at(k, j) {
					_ = w.SwapRows(j, k-1)
					_ = w.SwapCols(j, k-1)

					break
				}
			}
		}

		// Still missing: the bottom-right (n-k) x (n-k) corner is already
		// a companion block that nothing couples back into.
		if !w.at(k, k-1) {
			break
		}

		// self <- M^-1 * self * M, where M is the identity with row k-1
		// replaced by row k of self. M is self-inverse over GF(2), so the
		// row half of the transform rewrites row k-1 as m dotted with each
		// column.
		m := w.rows[k].Clone()
		newRow, _ := store.ZerosVec(n)
		for j := 0; j < n; j++ {
			dot, _ := store.Dot(m, w.colVec(j))
			newRow.Set(j, dot)
		}
		dst, _ := w.rows[k-1].Slice(0, n)
		_ = store.CopyStore(dst, newRow)

		// The column half: rows above k pick up m wherever their k-1
		// column is set, except that the k-1 column itself is preserved
		// (m's sub-diagonal entry is the one we just secured).
		for i := 0; i < k; i++ {
			if w.at(i, k-1) {
				row, _ := w.rows[i].Slice(0, n)
				mLow, _ := m.Slice(0, n)
				_ = store.Xor(row, mLow)
				w.setAt(i, k-1, true)
			}
		}

		// Row k collapses to companion form.
		store.Fill(w.rows[k], false)
		w.setAt(k, k-1, true)

		k--
	}

	// The corner block starting at (k, k) is in companion form; hand back
	// its top row.
	top, _ := store.ZerosVec(n - k)
	for j := 0; j < n-k; j++ {
		top.Set(j, w.at(k, k+j))
	}

	return top
}

// EvalPoly evaluates a polynomial at a square matrix by Horner's rule,
// returning sum p_i * M^i with p_0 on the identity. By Cayley-Hamilton,
// evaluating a matrix's own characteristic polynomial yields zero.
//
// Errors:
//   - ErrNonSquare if the matrix is not square.
func EvalPoly(p *poly.Poly, m *Mat) (*Mat, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("EvalPoly: shape %d x %d: %w", len(m.rows), m.cols, ErrNonSquare)
	}

	result := zeros(len(m.rows), m.cols)
	for i := p.Len() - 1; i >= 0; i-- {
		result, _ = result.Mul(m)
		if p.Coeff(i) {
			_ = result.AddIdentity()
		}
	}

	return result, nil
}
