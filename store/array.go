// SPDX-License-Identifier: MIT
// Package store: Array, the fixed-length bit-store.
//
// An Array's length is decided at construction and never changes: there is
// no Push/Pop/Resize surface to misuse when a codec or register bank has a
// known width. It otherwise shares the full generic operation set with Vec
// through the Store contract.

package store

import (
	"fmt"

	gbit "github.com/katalvlaran/gf2/bit"
)

// Array is a bit-store whose length is fixed at construction.
type Array struct {
	n     int
	words []uint64
}

var _ Store = (*Array)(nil)

// NewArray returns a fixed-length bit-store of n zero elements.
//
// Errors:
//   - ErrBadLength if n is negative.
func NewArray(n int) (*Array, error) {
	if err := checkLen("NewArray", n); err != nil {
		return nil, err
	}

	return &Array{n: n, words: make([]uint64, gbit.WordsNeeded(n))}, nil
}

// OnesArray returns a fixed-length bit-store of n set elements.
//
// Errors:
//   - ErrBadLength if n is negative.
func OnesArray(n int) (*Array, error) {
	a, err := NewArray(n)
	if err != nil {
		return nil, fmt.Errorf("OnesArray: %w", err)
	}
	Fill(a, true)

	return a, nil
}

// ArrayFromStore returns a fixed-length bit-store copied from any store.
func ArrayFromStore[S Store](src S) *Array {
	a := &Array{n: src.Len(), words: make([]uint64, gbit.WordsNeeded(src.Len()))}
	_ = CopyStore(a, src)

	return a
}

// ArrayFromString parses a bit string (see VecFromString for the accepted
// formats) into a fixed-length bit-store.
//
// Errors:
//   - ErrBadString if s is not parsable.
func ArrayFromString(s string) (*Array, error) {
	v, err := VecFromString(s)
	if err != nil {
		return nil, fmt.Errorf("ArrayFromString: %w", err)
	}

	return ArrayFromStore(v), nil
}

// RandomArray returns a fixed-length bit-store with fair-coin elements.
//
// Errors:
//   - ErrBadLength if n is negative.
func RandomArray(n int) (*Array, error) {
	a, err := NewArray(n)
	if err != nil {
		return nil, fmt.Errorf("RandomArray: %w", err)
	}
	FillRandom(a)

	return a, nil
}

// Len returns the number of accessible bits.
func (a *Array) Len() int { return a.n }

// Words returns the number of backing words.
func (a *Array) Words() int { return len(a.words) }

// Word returns logical word i. i must be in [0, Words()).
func (a *Array) Word(i int) uint64 { return a.words[i] }

// SetWord overwrites logical word i, trimming padding in the final word.
// i must be in [0, Words()).
func (a *Array) SetWord(i int, w uint64) {
	if i == len(a.words)-1 {
		w &= lastWordMask(a.n)
	}
	a.words[i] = w
}

// Get returns element i. i must be in [0, Len()).
func (a *Array) Get(i int) bool {
	idx, mask := gbit.IndexAndMask(i)

	return a.words[idx]&mask != 0
}

// Set writes element i. i must be in [0, Len()).
func (a *Array) Set(i int, val bool) {
	idx, mask := gbit.IndexAndMask(i)
	if val {
		a.words[idx] |= mask
	} else {
		a.words[idx] &^= mask
	}
}

// Clone returns an independent copy of the array.
func (a *Array) Clone() *Array {
	out := &Array{n: a.n, words: make([]uint64, len(a.words))}
	copy(out.words, a.words)

	return out
}

// Slice returns a mutable view of the half-open element range [start, end).
//
// Errors:
//   - ErrOutOfRange unless 0 <= start <= end <= Len().
func (a *Array) Slice(start, end int) (*Slice[*Array], error) {
	return NewSlice(a, start, end)
}

// String renders the array as 0s and 1s in vector order.
func (a *Array) String() string { return BinaryString(a) }

// Hex renders the array in the suffixed-hex format. See HexString.
func (a *Array) Hex() string { return HexString(a) }
