// SPDX-License-Identifier: MIT
package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/store"
)

func TestSliceReadsMatchSource(t *testing.T) {
	v, err := store.RandomVecSeeded(130, 99)
	require.NoError(t, err)

	// A misaligned view straddling two word boundaries.
	s, err := v.Slice(60, 130)
	require.NoError(t, err)
	require.Equal(t, 70, s.Len())
	require.Equal(t, 2, s.Words())

	for i := 0; i < s.Len(); i++ {
		require.Equal(t, v.Get(60+i), s.Get(i), "element %d", i)
	}

	// Logical words agree with a bit-by-bit reconstruction, padding zeroed.
	for wi := 0; wi < s.Words(); wi++ {
		var want uint64
		for j := 0; j < 64 && wi*64+j < s.Len(); j++ {
			if s.Get(wi*64 + j) {
				want |= uint64(1) << j
			}
		}
		require.Equal(t, want, s.Word(wi), "word %d", wi)
	}
}

func TestSliceWritesStayInBounds(t *testing.T) {
	v, err := store.ZerosVec(130)
	require.NoError(t, err)
	s, err := v.Slice(60, 124)
	require.NoError(t, err)

	store.Fill(s, true)
	for i := 0; i < 130; i++ {
		require.Equal(t, i >= 60 && i < 124, v.Get(i), "element %d", i)
	}

	// SetWord splices into the word pair without touching neighbors.
	v2, err := store.OnesVec(130)
	require.NoError(t, err)
	s2, err := v2.Slice(60, 124)
	require.NoError(t, err)
	s2.SetWord(0, 0)
	for i := 0; i < 130; i++ {
		require.Equal(t, i < 60 || i >= 124, v2.Get(i), "element %d", i)
	}

	// Writes through the view are visible in the source and vice versa.
	s2.Set(0, true)
	require.True(t, v2.Get(60))
	v2.Set(61, true)
	require.True(t, s2.Get(1))
}

func TestSliceOfSlice(t *testing.T) {
	v := mustVec(t, "0011010011")
	outer, err := v.Slice(2, 9)
	require.NoError(t, err)
	require.Equal(t, "1101001", outer.String())

	inner, err := store.NewSlice(outer, 2, 6)
	require.NoError(t, err)
	require.Equal(t, "0100", inner.String())

	inner.Set(0, true)
	require.True(t, v.Get(4))
}

func TestSliceBounds(t *testing.T) {
	v := mustVec(t, "10101")
	_, err := v.Slice(-1, 3)
	require.ErrorIs(t, err, store.ErrOutOfRange)
	_, err = v.Slice(3, 2)
	require.ErrorIs(t, err, store.ErrOutOfRange)
	_, err = v.Slice(0, 6)
	require.ErrorIs(t, err, store.ErrOutOfRange)

	// Empty and full ranges are valid.
	empty, err := v.Slice(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	full, err := v.Slice(0, 5)
	require.NoError(t, err)
	require.True(t, store.Equal(v, full))
}

func TestSliceGenericOps(t *testing.T) {
	// Generic operations accept views wherever they accept owners.
	v := mustVec(t, "110010101100")
	a, err := v.Slice(0, 6)
	require.NoError(t, err)
	b, err := v.Slice(6, 12)
	require.NoError(t, err)

	dot, err := store.Dot(a, b)
	require.NoError(t, err)
	// 110010 and 101100 overlap in element 0 only.
	require.True(t, dot)

	sum := store.VecFromStore(a)
	require.NoError(t, store.Xor(sum, b))
	require.Equal(t, "011110", sum.String())
}
