// SPDX-License-Identifier: MIT
// Package mat: the frozen Gaussian solver for A*x = b.
//
// All the elimination happens once, at construction: the solver reduces
// the augmented matrix [A | b] and freezes the result. Every query after
// that is cheap, and Xi can enumerate the full solution set of an
// underdetermined system deterministically: solution i assigns the bits of
// i to the free variables (least significant bit to the first free column)
// and back-substitutes the rest.

package mat

import (
	"fmt"

	"github.com/katalvlaran/gf2/store"
)

// maxIndexableSolutions caps SolutionCount at the largest power of two an
// index can address; an underdetermined system over hundreds of free
// variables has more solutions than that.
const maxIndexableSolutions = uint64(1) << 63

// Solver is a frozen Gaussian elimination of a square system A*x = b.
// Construction does all the work; the solver never mutates afterwards, so
// a single Solver can serve any number of queries.
type Solver struct {
	aRef *Mat       // reduced echelon form of A
	bRef *store.Vec // b carried through the same elimination
	rank int
	free []int // columns without a pivot, ascending

	// 0 when inconsistent, otherwise min(2^len(free), 2^63).
	solutionCount uint64
}

// NewSolver builds a frozen solver for A*x = b. A is copied; later changes
// to A or b do not affect the solver.
//
// Errors:
//   - ErrNonSquare if A is not square.
//   - ErrDimensionMismatch unless b has one element per row of A.
func NewSolver(a *Mat, b *store.Vec) (*Solver, error) {
	if !a.IsSquare() {
		return nil, fmt.Errorf("NewSolver: shape %d x %d: %w", len(a.rows), a.cols, ErrNonSquare)
	}
	if b.Len() != len(a.rows) {
		return nil, fmt.Errorf("NewSolver: vector of %d elements, matrix has %d rows: %w",
			b.Len(), len(a.rows), ErrDimensionMismatch)
	}

	// The empty system is trivially consistent with the single empty
	// solution.
	if len(a.rows) == 0 {
		return &Solver{aRef: &Mat{}, bRef: store.NewVec(), solutionCount: 1}, nil
	}

	// Reduce the augmented [A | b], then detach b again.
	aRef := a.Clone()
	_ = aRef.AppendCol(b)
	hasPivot, _ := aRef.ReducedEchelonForm()
	bRef, _ := aRef.RemoveCol()
	hasPivot.Pop() // the augmented column's flag is not A's business

	rank := store.CountOnes(hasPivot)

	// Columns without a pivot are the free variables.
	store.FlipAll(hasPivot)
	free := store.SetBits(hasPivot)

	// Consistency: the zero rows at the bottom of the reduced form must
	// pair with zero entries of the reduced b.
	consistent := true
	for i := rank; i < len(aRef.rows); i++ {
		if bRef.Get(i) {
			consistent = false

			break
		}
	}

	var count uint64
	if consistent {
		count = maxIndexableSolutions
		if len(free) < 63 {
			count = uint64(1) << len(free)
		}
	}

	return &Solver{aRef: aRef, bRef: bRef, rank: rank, free: free, solutionCount: count}, nil
}

// Rank returns the rank of A.
func (s *Solver) Rank() int { return s.rank }

// FreeCount returns the number of free variables.
func (s *Solver) FreeCount() int { return len(s.free) }

// IsUnderdetermined reports whether the system has free variables. An
// underdetermined system has either no solutions or 2^FreeCount of them.
func (s *Solver) IsUnderdetermined() bool { return len(s.free) > 0 }

// IsConsistent reports whether the system has at least one solution.
func (s *Solver) IsConsistent() bool { return s.solutionCount > 0 }

// SolutionCount returns the number of indexable solutions: 0 for an
// inconsistent system, otherwise min(2^FreeCount, 2^63).
func (s *Solver) SolutionCount() uint64 { return s.solutionCount }

// X returns one solution of the system, or ok == false if the system is
// inconsistent. Free variables are assigned at random, so repeated calls
// on an underdetermined system sample the solution set.
func (s *Solver) X() (*store.Vec, bool) {
	if !s.IsConsistent() {
		return nil, false
	}

	// Back substitution overwrites every pivot variable, so a random
	// starting point randomizes exactly the free ones.
	x, _ := store.RandomVec(s.bRef.Len())
	s.backSubstitute(x)

	return x, true
}

// Xi returns solution number i, or ok == false if the system is
// inconsistent or i >= SolutionCount. The enumeration is deterministic:
// bit 0 of i drives the first free column, bit 1 the second, and so on,
// with the pivot variables back-substituted. For a consistent determined
// system Xi(0) is the unique solution.
func (s *Solver) Xi(i uint64) (*store.Vec, bool) {
	if !s.IsConsistent() || i >= s.solutionCount {
		return nil, false
	}

	x, _ := store.ZerosVec(s.bRef.Len())
	for _, col := range s.free {
		x.Set(col, i&1 != 0)
		i >>= 1
	}
	s.backSubstitute(x)

	return x, true
}

// backSubstitute fills in the pivot variables of x from the bottom
// non-zero row up, leaving the free variables as the caller set them.
func (s *Solver) backSubstitute(x *store.Vec) {
	for i := s.rank - 1; i >= 0; i-- {
		row := s.aRef.rows[i]
		j, _ := store.FirstSet(row)
		val := s.bRef.Get(i)
		for k, ok := store.NextSet(row, j); ok; k, ok = store.NextSet(row, k) {
			if x.Get(k) {
				val = !val
			}
		}
		x.Set(j, val)
	}
}
