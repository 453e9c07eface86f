// SPDX-License-Identifier: MIT
// Package store: Vec, the dynamic owning bit-vector.
//
// Purpose:
//   - Provide the workhorse store: heap backed, growable, cheap to clone.
//   - Own the constructors the algebra layers build everything from.
//
// Notes:
//   - Get/Set/Flip are the unchecked fast path: the index must already be
//     known valid (matrix kernels validate shapes once at their facades).
//     The checked, error-returning surface is Bit/SetBit/FlipBit.

package store

import (
	"fmt"

	gbit "github.com/katalvlaran/gf2/bit"
)

// Vec is a dynamically sized bit-vector packed into uint64 words, least
// significant bit first. The zero value is an empty vector ready to use.
type Vec struct {
	n     int
	words []uint64
}

// compile-time check: *Vec satisfies the Store contract.
var _ Store = (*Vec)(nil)

// NewVec returns an empty bit-vector.
func NewVec() *Vec { return &Vec{} }

// mustZeros is the internal constructor for lengths already known valid.
func mustZeros(n int) *Vec {
	return &Vec{n: n, words: make([]uint64, gbit.WordsNeeded(n))}
}

// checkLen validates a requested store length.
func checkLen(op string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: length %d: %w", op, n, ErrBadLength)
	}

	return nil
}

// ZerosVec returns a bit-vector of n zero elements.
//
// Errors:
//   - ErrBadLength if n is negative.
func ZerosVec(n int) (*Vec, error) {
	if err := checkLen("ZerosVec", n); err != nil {
		return nil, err
	}

	return mustZeros(n), nil
}

// OnesVec returns a bit-vector of n set elements.
//
// Errors:
//   - ErrBadLength if n is negative.
func OnesVec(n int) (*Vec, error) {
	v, err := ZerosVec(n)
	if err != nil {
		return nil, fmt.Errorf("OnesVec: %w", err)
	}
	Fill(v, true)

	return v, nil
}

// ConstantVec returns a bit-vector of n copies of val.
//
// Errors:
//   - ErrBadLength if n is negative.
func ConstantVec(val bool, n int) (*Vec, error) {
	v, err := ZerosVec(n)
	if err != nil {
		return nil, fmt.Errorf("ConstantVec: %w", err)
	}
	if val {
		Fill(v, true)
	}

	return v, nil
}

// AlternatingVec returns the bit-vector 1010... of n elements.
//
// Errors:
//   - ErrBadLength if n is negative.
func AlternatingVec(n int) (*Vec, error) {
	v, err := ZerosVec(n)
	if err != nil {
		return nil, fmt.Errorf("AlternatingVec: %w", err)
	}
	for i := 0; i < v.Words(); i++ {
		v.SetWord(i, 0x5555555555555555)
	}

	return v, nil
}

// VecFromFn returns a bit-vector of n elements where element i is f(i).
//
// Errors:
//   - ErrBadLength if n is negative.
func VecFromFn(n int, f func(int) bool) (*Vec, error) {
	v, err := ZerosVec(n)
	if err != nil {
		return nil, fmt.Errorf("VecFromFn: %w", err)
	}
	CopyFn(v, f)

	return v, nil
}

// VecFromStore returns a new bit-vector holding a copy of any store's bits.
func VecFromStore[S Store](src S) *Vec {
	v := mustZeros(src.Len())
	_ = CopyStore(v, src)

	return v
}

// Len returns the number of accessible bits.
func (v *Vec) Len() int { return v.n }

// Words returns the number of backing words.
func (v *Vec) Words() int { return len(v.words) }

// Word returns logical word i. i must be in [0, Words()).
func (v *Vec) Word(i int) uint64 { return v.words[i] }

// SetWord overwrites logical word i, trimming padding in the final word.
// i must be in [0, Words()).
func (v *Vec) SetWord(i int, w uint64) {
	if i == len(v.words)-1 {
		w &= lastWordMask(v.n)
	}
	v.words[i] = w
}

// Get returns element i. i must be in [0, Len()); see Bit for the checked
// form.
func (v *Vec) Get(i int) bool {
	idx, mask := gbit.IndexAndMask(i)

	return v.words[idx]&mask != 0
}

// Set writes element i. i must be in [0, Len()); see SetBit for the
// checked form.
func (v *Vec) Set(i int, val bool) {
	idx, mask := gbit.IndexAndMask(i)
	if val {
		v.words[idx] |= mask
	} else {
		v.words[idx] &^= mask
	}
}

// Flip inverts element i. i must be in [0, Len()).
func (v *Vec) Flip(i int) {
	idx, mask := gbit.IndexAndMask(i)
	v.words[idx] ^= mask
}

// Clone returns an independent copy of the vector.
func (v *Vec) Clone() *Vec {
	out := &Vec{n: v.n, words: make([]uint64, len(v.words))}
	copy(out.words, v.words)

	return out
}

// Resize changes the length to n, zero-filling any new elements and
// discarding any excess. Negative n is treated as 0.
func (v *Vec) Resize(n int) {
	if n < 0 {
		n = 0
	}
	need := gbit.WordsNeeded(n)
	switch {
	case need > len(v.words):
		grown := make([]uint64, need)
		copy(grown, v.words)
		v.words = grown
	case need < len(v.words):
		v.words = v.words[:need]
	}
	v.n = n

	// Shrinking may leave stale bits in the new final word's padding.
	if n > 0 {
		v.words[need-1] &= lastWordMask(n)
	}
}

// Push appends a single element to the end of the vector.
func (v *Vec) Push(val bool) {
	v.Resize(v.n + 1)
	if val {
		v.Set(v.n-1, true)
	}
}

// Pop removes and returns the final element, or ok == false if the vector
// is empty.
func (v *Vec) Pop() (bool, bool) {
	if v.n == 0 {
		return false, false
	}
	val := v.Get(v.n - 1)
	v.Resize(v.n - 1)

	return val, true
}

// Append copies the bits of src onto the end of dst.
func Append[S Store](dst *Vec, src S) {
	at := dst.n
	dst.Resize(at + src.Len())
	_ = CopyStore(&Slice[*Vec]{src: dst, start: at, n: src.Len()}, src)
}

// Slice returns a mutable view of the half-open element range [start, end).
//
// Errors:
//   - ErrOutOfRange unless 0 <= start <= end <= Len().
func (v *Vec) Slice(start, end int) (*Slice[*Vec], error) {
	return NewSlice(v, start, end)
}

// Sub returns a new Vec copied from the element range [start, end).
//
// Errors:
//   - ErrOutOfRange unless 0 <= start <= end <= Len().
func (v *Vec) Sub(start, end int) (*Vec, error) {
	s, err := v.Slice(start, end)
	if err != nil {
		return nil, fmt.Errorf("Sub: %w", err)
	}

	return VecFromStore(s), nil
}

// String renders the vector as 0s and 1s in vector order.
func (v *Vec) String() string { return BinaryString(v) }

// Hex renders the vector in the suffixed-hex format. See HexString.
func (v *Vec) Hex() string { return HexString(v) }
