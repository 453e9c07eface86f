// SPDX-License-Identifier: MIT
// Package mat: LU decomposition with partial pivoting.
//
// The factorization is packed: one matrix carries the unit-lower L below
// the diagonal and U on and above it, and the row permutation is kept as a
// LAPACK-style swaps vector ("at step i, swap rows i and swaps[i]"). Over
// GF(2) the arithmetic collapses pleasantly: a pivot is just a 1, row
// elimination is XOR, and the determinant is 1 exactly when the matrix has
// full rank, because row swaps cannot flip a sign that does not exist.

package mat

import (
	"fmt"

	"github.com/katalvlaran/gf2/store"
)

// LU is the LU decomposition of a square matrix with partial pivoting:
// P*A = L*U. Construction does all the work; the object never mutates
// afterwards.
type LU struct {
	lu    *Mat  // L below the diagonal, U on and above it
	swaps []int // LAPACK form: at step i, row i was swapped with swaps[i]
	rank  int
}

// NewLU factors a copy of A.
//
// Errors:
//   - ErrNonSquare if A is not square.
func NewLU(a *Mat) (*LU, error) {
	if !a.IsSquare() {
		return nil, fmt.Errorf("NewLU: shape %d x %d: %w", len(a.rows), a.cols, ErrNonSquare)
	}

	n := len(a.rows)
	lu := a.Clone()
	swaps := make([]int, n)
	rank := n

	for j := 0; j < n; j++ {
		swaps[j] = j

		// Find a pivot on or below the diagonal.
		p := j
		for p < n && !lu.at(p, j) {
			p++
		}
		if p == n {
			// No pivot: rank deficient in this column, move along.
			rank--

			continue
		}
		if p != j {
			lu.rows[p], lu.rows[j] = lu.rows[j], lu.rows[p]
			swaps[j] = p
		}

		// Eliminate below the pivot, touching only the columns right of j
		// so the L entries already written stay in place.
		pivotTail, _ := lu.rows[j].Slice(j+1, n)
		for i := j + 1; i < n; i++ {
			if lu.at(i, j) {
				tail, _ := lu.rows[i].Slice(j+1, n)
				_ = store.Xor(tail, pivotTail)
			}
		}
	}

	return &LU{lu: lu, swaps: swaps, rank: rank}, nil
}

// Rank returns the rank of the factored matrix.
func (d *LU) Rank() int { return d.rank }

// IsSingular reports whether the factored matrix is rank deficient.
func (d *LU) IsSingular() bool { return d.rank < len(d.lu.rows) }

// Determinant returns the determinant. Over GF(2) it is 1 exactly for
// full-rank matrices; row swaps do not change it.
func (d *LU) Determinant() bool { return !d.IsSingular() }

// L returns the unit-lower-triangular factor as a full matrix.
func (d *LU) L() *Mat {
	n := len(d.lu.rows)
	out := zeros(n, n)
	for i := 0; i < n; i++ {
		out.rows[i].Set(i, true)
		for j := 0; j < i; j++ {
			if d.lu.at(i, j) {
				out.rows[i].Set(j, true)
			}
		}
	}

	return out
}

// U returns the upper-triangular factor as a full matrix.
func (d *LU) U() *Mat {
	n := len(d.lu.rows)
	out := zeros(n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if d.lu.at(i, j) {
				out.rows[i].Set(j, true)
			}
		}
	}

	return out
}

// P returns the permutation as a full matrix, so P*A equals L()*U().
func (d *LU) P() *Mat {
	p, _ := Identity(len(d.lu.rows))
	for i, s := range d.swaps {
		p.rows[i], p.rows[s] = p.rows[s], p.rows[i]
	}

	return p
}

// Swaps returns a copy of the row-swap instructions in LAPACK form:
// "at step i, swap rows i and Swaps()[i]". Entries never point upward.
func (d *LU) Swaps() []int {
	out := make([]int, len(d.swaps))
	copy(out, d.swaps)

	return out
}

// PermutationVector returns the permutation as an index vector: entry i
// names the row of A that ended up in row i of P*A. For example swaps
// [0, 2, 2] is the permutation vector [0, 2, 1].
func (d *LU) PermutationVector() []int {
	p := make([]int, len(d.swaps))
	for i := range p {
		p[i] = i
	}
	for i, s := range d.swaps {
		p[i], p[s] = p[s], p[i]
	}

	return p
}

// PermuteMatrix applies the stored row permutation to b in place.
//
// Errors:
//   - ErrDimensionMismatch unless b has one row per swap instruction.
func (d *LU) PermuteMatrix(b *Mat) error {
	if len(b.rows) != len(d.swaps) {
		return fmt.Errorf("PermuteMatrix: %d rows, %d swap instructions: %w",
			len(b.rows), len(d.swaps), ErrDimensionMismatch)
	}
	for i, s := range d.swaps {
		b.rows[i], b.rows[s] = b.rows[s], b.rows[i]
	}

	return nil
}

// PermuteVec applies the stored row permutation to b in place.
//
// Errors:
//   - ErrDimensionMismatch unless b has one element per swap instruction.
func (d *LU) PermuteVec(b *store.Vec) error {
	if b.Len() != len(d.swaps) {
		return fmt.Errorf("PermuteVec: %d elements, %d swap instructions: %w",
			b.Len(), len(d.swaps), ErrDimensionMismatch)
	}
	for i, s := range d.swaps {
		_ = store.SwapBits(b, i, s)
	}

	return nil
}

// Solve solves A*x = b for the factored A. The solution is absent
// (ok == false) when A is singular.
//
// Errors:
//   - ErrDimensionMismatch unless b has one element per row of A.
func (d *LU) Solve(b *store.Vec) (*store.Vec, bool, error) {
	n := len(d.lu.rows)
	if b.Len() != n {
		return nil, false, fmt.Errorf("Solve: vector of %d elements, matrix has %d rows: %w",
			b.Len(), n, ErrDimensionMismatch)
	}
	if d.IsSingular() {
		return nil, false, nil
	}

	x := b.Clone()
	_ = d.PermuteVec(x)
	d.substituteColumn(func(i int) bool { return x.Get(i) }, func(i int, v bool) { x.Set(i, v) })

	return x, true, nil
}

// SolveMatrix solves A*X = B column by column. The solution is absent
// (ok == false) when A is singular.
//
// Errors:
//   - ErrDimensionMismatch unless B has one row per row of A.
func (d *LU) SolveMatrix(b *Mat) (*Mat, bool, error) {
	n := len(d.lu.rows)
	if len(b.rows) != n {
		return nil, false, fmt.Errorf("SolveMatrix: %d rows, matrix has %d: %w", len(b.rows), n, ErrDimensionMismatch)
	}
	if d.IsSingular() {
		return nil, false, nil
	}

	x := b.Clone()
	_ = d.PermuteMatrix(x)
	for c := 0; c < x.cols; c++ {
		d.substituteColumn(func(i int) bool { return x.at(i, c) }, func(i int, v bool) { x.setAt(i, c, v) })
	}

	return x, true, nil
}

// substituteColumn runs forward then backward substitution over one
// right-hand-side column presented through element accessors. All pivots
// are 1 for a non-singular factorization, so no division step exists.
func (d *LU) substituteColumn(get func(int) bool, set func(int, bool)) {
	n := len(d.lu.rows)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if d.lu.at(i, j) && get(j) {
				set(i, !get(i))
			}
		}
	}
	for i := n - 1; i >= 0; i-- {
		for j := i + 1; j < n; j++ {
			if d.lu.at(i, j) && get(j) {
				set(i, !get(i))
			}
		}
	}
}

// Inverse returns the inverse of the factored matrix, or ok == false when
// it is singular.
func (d *LU) Inverse() (*Mat, bool) {
	if d.IsSingular() {
		return nil, false
	}
	id, _ := Identity(len(d.lu.rows))
	inv, ok, _ := d.SolveMatrix(id)

	return inv, ok
}
