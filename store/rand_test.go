// SPDX-License-Identifier: MIT
package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gf2/store"
)

func TestSeededFillsReproduce(t *testing.T) {
	a, err := store.RandomVecSeeded(256, 42)
	require.NoError(t, err)
	b, err := store.RandomVecSeeded(256, 42)
	require.NoError(t, err)
	require.True(t, store.Equal(a, b))

	c, err := store.RandomVecSeeded(256, 43)
	require.NoError(t, err)
	require.False(t, store.Equal(a, c))

	// Reproducibility holds regardless of interleaved unseeded draws.
	_, err = store.RandomVec(256)
	require.NoError(t, err)
	d, err := store.RandomVecSeeded(256, 42)
	require.NoError(t, err)
	require.True(t, store.Equal(a, d))
}

func TestBiasedFillSaturates(t *testing.T) {
	v, err := store.ZerosVec(100)
	require.NoError(t, err)

	store.FillRandomBiased(v, 1.5)
	require.True(t, store.All(v))
	store.FillRandomBiased(v, -0.5)
	require.True(t, store.None(v))
	store.FillRandomBiased(v, 0)
	require.True(t, store.None(v))
}

func TestBiasedFillDensity(t *testing.T) {
	v, err := store.ZerosVec(4096)
	require.NoError(t, err)

	store.FillRandomBiasedSeeded(v, 0.25, 1234)
	ones := store.CountOnes(v)
	require.Greater(t, ones, 700)
	require.Less(t, ones, 1400)

	store.FillRandomBiasedSeeded(v, 0.5, 1234)
	ones = store.CountOnes(v)
	require.Greater(t, ones, 1700)
	require.Less(t, ones, 2400)
}

func TestRandomLengthValidation(t *testing.T) {
	_, err := store.RandomVec(-1)
	require.ErrorIs(t, err, store.ErrBadLength)
	_, err = store.RandomVecSeeded(-1, 9)
	require.ErrorIs(t, err, store.ErrBadLength)
	_, err = store.RandomArray(-1)
	require.ErrorIs(t, err, store.ErrBadLength)
}
