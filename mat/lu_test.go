// SPDX-License-Identifier: MIT
package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/mat"
	"github.com/katalvlaran/gf2/store"
)

func TestLUFactorization(t *testing.T) {
	// P*A = L*U holds for any square matrix, singular or not.
	for _, seed := range []uint64{2, 19, 404} {
		for _, n := range []int{1, 4, 10, 33} {
			a, err := mat.RandomSeeded(n, n, seed)
			require.NoError(t, err)
			lu, err := mat.NewLU(a)
			require.NoError(t, err)

			prod, err := lu.L().Mul(lu.U())
			require.NoError(t, err)
			pa := a.Clone()
			require.NoError(t, lu.PermuteMatrix(pa))
			require.True(t, pa.Equal(prod), "P*A != L*U for seed %d, n %d", seed, n)

			// The full permutation matrix agrees with the swaps form.
			pm, err := lu.P().Mul(a)
			require.NoError(t, err)
			require.True(t, pm.Equal(prod), "seed %d, n %d", seed, n)
		}
	}
}

func TestLUFactorShapes(t *testing.T) {
	a, err := mat.RandomSeeded(8, 8, 7)
	require.NoError(t, err)
	lu, err := mat.NewLU(a)
	require.NoError(t, err)

	l, u := lu.L(), lu.U()
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			li, err := l.At(i, j)
			require.NoError(t, err)
			ui, err := u.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.True(t, li, "L diagonal must be ones")
			}
			if j > i {
				require.False(t, li, "L must be lower triangular")
			}
			if j < i {
				require.False(t, ui, "U must be upper triangular")
			}
		}
	}
}

func TestLURankAndDeterminant(t *testing.T) {
	l, err := mat.LeftRotation(12, 5)
	require.NoError(t, err)
	lu, err := mat.NewLU(l)
	require.NoError(t, err)
	require.Equal(t, 12, lu.Rank())
	require.False(t, lu.IsSingular())
	require.True(t, lu.Determinant())

	ones, err := mat.Ones(3, 3)
	require.NoError(t, err)
	lu, err = mat.NewLU(ones)
	require.NoError(t, err)
	require.Equal(t, 1, lu.Rank())
	require.True(t, lu.IsSingular())
	require.False(t, lu.Determinant())

	_, err = mat.NewLU(mustMat(t, "10 01 11"))
	require.ErrorIs(t, err, mat.ErrNonSquare)
}

func TestLUSolve(t *testing.T) {
	a, err := mat.LeftRotation(10, 3)
	require.NoError(t, err)
	lu, err := mat.NewLU(a)
	require.NoError(t, err)

	b, err := store.RandomVecSeeded(10, 55)
	require.NoError(t, err)
	x, ok, err := lu.Solve(b)
	require.NoError(t, err)
	require.True(t, ok)
	got, err := a.MulVec(x)
	require.NoError(t, err)
	require.True(t, store.Equal(got, b))

	_, _, err = lu.Solve(mustVec(t, "111"))
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)

	// Singular: the answer is absent, not an error.
	ones, err := mat.Ones(2, 2)
	require.NoError(t, err)
	sing, err := mat.NewLU(ones)
	require.NoError(t, err)
	_, ok, err = sing.Solve(mustVec(t, "10"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLUSolveMatrix(t *testing.T) {
	a, err := mat.RandomSeeded(9, 9, 111)
	require.NoError(t, err)
	lu, err := mat.NewLU(a)
	require.NoError(t, err)
	if lu.IsSingular() {
		// Pick a guaranteed invertible system instead.
		a, err = mat.LeftRotation(9, 2)
		require.NoError(t, err)
		lu, err = mat.NewLU(a)
		require.NoError(t, err)
	}

	b, err := mat.RandomSeeded(9, 4, 222)
	require.NoError(t, err)
	x, ok, err := lu.SolveMatrix(b)
	require.NoError(t, err)
	require.True(t, ok)
	got, err := a.Mul(x)
	require.NoError(t, err)
	require.True(t, got.Equal(b))

	_, _, err = lu.SolveMatrix(mustMat(t, "1 1"))
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
}

func TestLUInverse(t *testing.T) {
	l, err := mat.LeftRotation(5, 1)
	require.NoError(t, err)
	r, err := mat.RightRotation(5, 1)
	require.NoError(t, err)

	lu, err := mat.NewLU(l)
	require.NoError(t, err)
	inv, ok := lu.Inverse()
	require.True(t, ok)
	require.True(t, inv.Equal(r))

	// Agrees with the elimination-based inverse.
	inv2, err := l.Inverse()
	require.NoError(t, err)
	require.True(t, inv.Equal(inv2))

	ones, err := mat.Ones(3, 3)
	require.NoError(t, err)
	sing, err := mat.NewLU(ones)
	require.NoError(t, err)
	_, ok = sing.Inverse()
	require.False(t, ok)
}

func TestLUPermutations(t *testing.T) {
	// The antidiagonal swap matrix pivots immediately.
	a := mustMat(t, "01 10")
	lu, err := mat.NewLU(a)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, lu.Swaps())
	require.Equal(t, []int{1, 0}, lu.PermutationVector())
	require.True(t, lu.P().Equal(a))

	// No pivoting needed for the identity.
	id, err := mat.Identity(3)
	require.NoError(t, err)
	lu, err = mat.NewLU(id)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, lu.Swaps())
	require.True(t, lu.P().IsIdentity())

	v := mustVec(t, "10")
	luSwap, err := mat.NewLU(a)
	require.NoError(t, err)
	require.NoError(t, luSwap.PermuteVec(v))
	require.Equal(t, "01", v.String())
	require.ErrorIs(t, luSwap.PermuteVec(mustVec(t, "111")), mat.ErrDimensionMismatch)
	require.ErrorIs(t, luSwap.PermuteMatrix(mustMat(t, "1 1 1")), mat.ErrDimensionMismatch)
}
