// SPDX-License-Identifier: MIT
package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/mat"
	"github.com/katalvlaran/gf2/store"
)

func TestSolverUnderdetermined(t *testing.T) {
	a := mustMat(t, "111 111 111")
	b := mustVec(t, "111")
	s, err := mat.NewSolver(a, b)
	require.NoError(t, err)

	require.Equal(t, 1, s.Rank())
	require.Equal(t, 2, s.FreeCount())
	require.True(t, s.IsUnderdetermined())
	require.True(t, s.IsConsistent())
	require.Equal(t, uint64(4), s.SolutionCount())

	// The enumeration is fixed: free bits come from the index, low bit
	// first.
	for i, want := range []string{"100", "010", "001", "111"} {
		x, ok := s.Xi(uint64(i))
		require.True(t, ok, "solution %d", i)
		require.Equal(t, want, x.String(), "solution %d", i)
	}
	_, ok := s.Xi(4)
	require.False(t, ok)
}

func TestSolverDetermined(t *testing.T) {
	id, err := mat.Identity(3)
	require.NoError(t, err)
	b := mustVec(t, "101")
	s, err := mat.NewSolver(id, b)
	require.NoError(t, err)

	require.Equal(t, 3, s.Rank())
	require.Equal(t, 0, s.FreeCount())
	require.False(t, s.IsUnderdetermined())
	require.Equal(t, uint64(1), s.SolutionCount())

	x, ok := s.Xi(0)
	require.True(t, ok)
	require.Equal(t, "101", x.String())
	_, ok = s.Xi(1)
	require.False(t, ok)

	// With a unique solution, X agrees with Xi(0).
	x2, ok := s.X()
	require.True(t, ok)
	require.True(t, store.Equal(x, x2))
}

func TestSolverAllSolutionsSatisfySystem(t *testing.T) {
	a, err := mat.Ones(4, 4)
	require.NoError(t, err)
	b := mustVec(t, "1111")
	s, err := mat.NewSolver(a, b)
	require.NoError(t, err)

	require.Equal(t, 1, s.Rank())
	require.Equal(t, 3, s.FreeCount())
	require.Equal(t, uint64(8), s.SolutionCount())

	seen := map[string]bool{}
	for i := uint64(0); i < s.SolutionCount(); i++ {
		x, ok := s.Xi(i)
		require.True(t, ok, "solution %d", i)
		got, err := a.MulVec(x)
		require.NoError(t, err)
		require.True(t, store.Equal(got, b), "solution %d does not satisfy A*x = b", i)
		seen[x.String()] = true
	}
	require.Len(t, seen, 8, "solutions must be distinct")

	// X samples the same solution set.
	for trial := 0; trial < 5; trial++ {
		x, ok := s.X()
		require.True(t, ok)
		require.True(t, seen[x.String()])
	}
}

func TestSolverInconsistent(t *testing.T) {
	a := mustMat(t, "11 11")
	s, err := mat.NewSolver(a, mustVec(t, "10"))
	require.NoError(t, err)

	require.False(t, s.IsConsistent())
	require.Equal(t, uint64(0), s.SolutionCount())
	require.Equal(t, 1, s.Rank())
	require.Equal(t, 1, s.FreeCount()) // free variables exist, solutions do not

	_, ok := s.X()
	require.False(t, ok)
	_, ok = s.Xi(0)
	require.False(t, ok)
}

func TestSolverDeterministic(t *testing.T) {
	a, err := mat.RandomSeeded(16, 16, 31)
	require.NoError(t, err)
	b, err := store.RandomVecSeeded(16, 32)
	require.NoError(t, err)

	s1, err := mat.NewSolver(a, b)
	require.NoError(t, err)
	s2, err := mat.NewSolver(a, b)
	require.NoError(t, err)

	require.Equal(t, s1.Rank(), s2.Rank())
	require.Equal(t, s1.SolutionCount(), s2.SolutionCount())
	for i := uint64(0); i < s1.SolutionCount() && i < 4; i++ {
		x1, ok1 := s1.Xi(i)
		x2, ok2 := s2.Xi(i)
		require.Equal(t, ok1, ok2)
		if ok1 {
			require.True(t, store.Equal(x1, x2), "solution %d", i)
			got, err := a.MulVec(x1)
			require.NoError(t, err)
			require.True(t, store.Equal(got, b), "solution %d", i)
		}
	}
}

func TestSolverFrozen(t *testing.T) {
	// The solver copies its inputs at construction.
	a := mustMat(t, "10 01")
	b := mustVec(t, "11")
	s, err := mat.NewSolver(a, b)
	require.NoError(t, err)

	require.NoError(t, a.Set(0, 0, false))
	b.Set(0, false)

	x, ok := s.Xi(0)
	require.True(t, ok)
	require.Equal(t, "11", x.String())
}

func TestSolverEmptyAndErrors(t *testing.T) {
	empty, err := mat.New(0, 0)
	require.NoError(t, err)
	s, err := mat.NewSolver(empty, store.NewVec())
	require.NoError(t, err)
	require.True(t, s.IsConsistent())
	require.Equal(t, uint64(1), s.SolutionCount())
	x, ok := s.Xi(0)
	require.True(t, ok)
	require.Equal(t, 0, x.Len())

	_, err = mat.NewSolver(mustMat(t, "10 01 11"), mustVec(t, "111"))
	require.ErrorIs(t, err, mat.ErrNonSquare)
	_, err = mat.NewSolver(mustMat(t, "10 01"), mustVec(t, "111"))
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
}
