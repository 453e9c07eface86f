// SPDX-License-Identifier: MIT
// Package store: the Store contract and the generic operation set.
//
// Purpose:
//   - Declare the word-addressable contract every bit-store satisfies.
//   - Implement each operation between stores exactly ONCE as a generic
//     function, so Vec/Array/Slice never duplicate algorithm code and the
//     compiler instantiates static, vtable-free loops per concrete type.
//
// Notes:
//   - All word loops may read the final word's padding freely: the contract
//     guarantees padding bits are zero, and SetWord re-establishes that.
//   - Caller errors (bad index, length mismatch) return sentinels from
//     errors.go; mathematical absences use (value, ok) returns.

package store

import (
	"fmt"
	"math/bits"
	"strings"

	gbit "github.com/katalvlaran/gf2/bit"
)

// Store is the uniform word-addressable contract shared by Vec, Array, and
// Slice.
//
// Invariant (zero padding): when Len is not a multiple of 64, the bits of
// the final word at offsets >= Len%64 are zero. Word must honor it and
// SetWord must restore it by masking the incoming word.
type Store interface {
	// Len returns the number of accessible bits.
	Len() int

	// Words returns the number of 64-bit words backing the accessible bits.
	Words() int

	// Word returns logical word i. i must be in [0, Words()).
	Word(i int) uint64

	// SetWord overwrites logical word i. i must be in [0, Words()).
	// Bits beyond Len in the final word are discarded.
	SetWord(i int, w uint64)
}

// lastWordMask returns the mask of accessible bits in the final word of a
// store with n bits. n must be positive.
func lastWordMask(n int) uint64 {
	if r := n % gbit.W; r != 0 {
		return (uint64(1) << r) - 1
	}

	return ^uint64(0)
}

// getBit reads element i without a range check. Internal fast path; public
// callers go through Bit.
func getBit[S Store](s S, i int) bool {
	idx, mask := gbit.IndexAndMask(i)

	return s.Word(idx)&mask != 0
}

// setBit writes element i without a range check. Internal fast path; public
// callers go through SetBit.
func setBit[S Store](s S, i int, v bool) {
	idx, mask := gbit.IndexAndMask(i)
	w := s.Word(idx)
	if v {
		w |= mask
	} else {
		w &^= mask
	}
	s.SetWord(idx, w)
}

// Bit returns element i of the store.
//
// Errors:
//   - ErrOutOfRange if i is not in [0, Len()).
func Bit[S Store](s S, i int) (bool, error) {
	if i < 0 || i >= s.Len() {
		return false, fmt.Errorf("Bit: index %d, length %d: %w", i, s.Len(), ErrOutOfRange)
	}

	return getBit(s, i), nil
}

// SetBit sets element i of the store to v.
//
// Errors:
//   - ErrOutOfRange if i is not in [0, Len()).
func SetBit[S Store](s S, i int, v bool) error {
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("SetBit: index %d, length %d: %w", i, s.Len(), ErrOutOfRange)
	}
	setBit(s, i, v)

	return nil
}

// FlipBit inverts element i of the store.
//
// Errors:
//   - ErrOutOfRange if i is not in [0, Len()).
func FlipBit[S Store](s S, i int) error {
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("FlipBit: index %d, length %d: %w", i, s.Len(), ErrOutOfRange)
	}
	setBit(s, i, !getBit(s, i))

	return nil
}

// SwapBits exchanges elements i and j of the store.
//
// Errors:
//   - ErrOutOfRange if either index is not in [0, Len()).
func SwapBits[S Store](s S, i, j int) error {
	n := s.Len()
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("SwapBits: indices %d, %d, length %d: %w", i, j, n, ErrOutOfRange)
	}
	vi, vj := getBit(s, i), getBit(s, j)
	if vi != vj {
		setBit(s, i, vj)
		setBit(s, j, vi)
	}

	return nil
}

// CountOnes returns the number of set elements in the store.
// Padding bits are zero by the contract so whole-word popcounts are exact.
func CountOnes[S Store](s S) int {
	sum := 0
	for i := 0; i < s.Words(); i++ {
		sum += bits.OnesCount64(s.Word(i))
	}

	return sum
}

// CountZeros returns the number of unset elements in the store.
func CountZeros[S Store](s S) int { return s.Len() - CountOnes(s) }

// Any reports whether at least one element is set.
func Any[S Store](s S) bool {
	for i := 0; i < s.Words(); i++ {
		if s.Word(i) != 0 {
			return true
		}
	}

	return false
}

// None reports whether no element is set. True for an empty store.
func None[S Store](s S) bool { return !Any(s) }

// All reports whether every element is set. True for an empty store.
func All[S Store](s S) bool {
	n := s.Len()
	if n == 0 {
		return true
	}
	last := s.Words() - 1
	for i := 0; i < last; i++ {
		if s.Word(i) != ^uint64(0) {
			return false
		}
	}

	return s.Word(last) == lastWordMask(n)
}

// Fill sets every element of the store to v.
func Fill[S Store](s S, v bool) {
	w := uint64(0)
	if v {
		w = ^uint64(0) // SetWord trims the final word's padding
	}
	for i := 0; i < s.Words(); i++ {
		s.SetWord(i, w)
	}
}

// FlipAll inverts every element of the store.
func FlipAll[S Store](s S) {
	for i := 0; i < s.Words(); i++ {
		s.SetWord(i, ^s.Word(i))
	}
}

// CopyFn sets element i of the store to f(i) for every i.
func CopyFn[S Store](s S, f func(int) bool) {
	n := s.Len()
	for wi := 0; wi < s.Words(); wi++ {
		var w uint64
		base := wi * gbit.W
		top := gbit.W
		if base+top > n {
			top = n - base
		}
		for j := 0; j < top; j++ {
			if f(base + j) {
				w |= uint64(1) << j
			}
		}
		s.SetWord(wi, w)
	}
}

// CopyStore copies the bits of src into dst word by word.
//
// Errors:
//   - ErrLengthMismatch if the operands have different lengths.
func CopyStore[D, S Store](dst D, src S) error {
	if dst.Len() != src.Len() {
		return fmt.Errorf("CopyStore: %d != %d: %w", dst.Len(), src.Len(), ErrLengthMismatch)
	}
	for i := 0; i < dst.Words(); i++ {
		dst.SetWord(i, src.Word(i))
	}

	return nil
}

// Equal reports whether a and b have the same length and the same elements.
func Equal[A, B Store](a A, b B) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Words(); i++ {
		if a.Word(i) != b.Word(i) {
			return false
		}
	}

	return true
}

// FirstSet returns the index of the first set element, or ok == false if
// the store has none.
func FirstSet[S Store](s S) (int, bool) {
	for i := 0; i < s.Words(); i++ {
		if w := s.Word(i); w != 0 {
			return i*gbit.W + bits.TrailingZeros64(w), true
		}
	}

	return 0, false
}

// LastSet returns the index of the last set element, or ok == false if the
// store has none.
func LastSet[S Store](s S) (int, bool) {
	for i := s.Words() - 1; i >= 0; i-- {
		if w := s.Word(i); w != 0 {
			hi, _ := gbit.HighestSet(w)

			return i*gbit.W + hi, true
		}
	}

	return 0, false
}

// NextSet returns the index of the first set element strictly after i, or
// ok == false if there is none. i may be negative to scan from the start.
func NextSet[S Store](s S, i int) (int, bool) {
	i++
	if i < 0 {
		i = 0
	}
	if i >= s.Len() {
		return 0, false
	}
	wi, off := gbit.IndexAndOffset(i)

	// Partial first word: drop the bits at or below the starting offset.
	if w := s.Word(wi) &^ ((uint64(1) << off) - 1); w != 0 {
		return wi*gbit.W + bits.TrailingZeros64(w), true
	}
	for wi++; wi < s.Words(); wi++ {
		if w := s.Word(wi); w != 0 {
			return wi*gbit.W + bits.TrailingZeros64(w), true
		}
	}

	return 0, false
}

// FirstUnset returns the index of the first unset element, or ok == false
// if every element is set.
func FirstUnset[S Store](s S) (int, bool) {
	n := s.Len()
	for i := 0; i < s.Words(); i++ {
		if w := s.Word(i); w != ^uint64(0) {
			idx := i*gbit.W + bits.TrailingZeros64(^w)
			if idx < n {
				return idx, true
			}

			return 0, false // the hole was in the padding
		}
	}

	return 0, false
}

// SetBits returns the indices of all set elements in ascending order.
func SetBits[S Store](s S) []int {
	out := make([]int, 0, CountOnes(s))
	for i := 0; i < s.Words(); i++ {
		w := s.Word(i)
		for w != 0 {
			out = append(out, i*gbit.W+bits.TrailingZeros64(w))
			w &= w - 1 // clear the lowest set bit
		}
	}

	return out
}

// Xor computes dst ^= src element-wise. Over GF(2) this is also both
// element-wise addition and subtraction; Add and Sub name the same
// operation.
//
// Errors:
//   - ErrLengthMismatch if the operands have different lengths.
func Xor[D, S Store](dst D, src S) error {
	if dst.Len() != src.Len() {
		return fmt.Errorf("Xor: %d != %d: %w", dst.Len(), src.Len(), ErrLengthMismatch)
	}
	for i := 0; i < dst.Words(); i++ {
		dst.SetWord(i, dst.Word(i)^src.Word(i))
	}

	return nil
}

// Add computes dst += src element-wise. Addition in GF(2) is XOR.
func Add[D, S Store](dst D, src S) error { return Xor(dst, src) }

// Sub computes dst -= src element-wise. Every element is its own additive
// inverse, so subtraction is XOR too.
func Sub[D, S Store](dst D, src S) error { return Xor(dst, src) }

// And computes dst &= src element-wise.
//
// Errors:
//   - ErrLengthMismatch if the operands have different lengths.
func And[D, S Store](dst D, src S) error {
	if dst.Len() != src.Len() {
		return fmt.Errorf("And: %d != %d: %w", dst.Len(), src.Len(), ErrLengthMismatch)
	}
	for i := 0; i < dst.Words(); i++ {
		dst.SetWord(i, dst.Word(i)&src.Word(i))
	}

	return nil
}

// Or computes dst |= src element-wise.
//
// Errors:
//   - ErrLengthMismatch if the operands have different lengths.
func Or[D, S Store](dst D, src S) error {
	if dst.Len() != src.Len() {
		return fmt.Errorf("Or: %d != %d: %w", dst.Len(), src.Len(), ErrLengthMismatch)
	}
	for i := 0; i < dst.Words(); i++ {
		dst.SetWord(i, dst.Word(i)|src.Word(i))
	}

	return nil
}

// Dot returns the GF(2) scalar product of a and b: the parity of the
// popcount of the element-wise AND.
//
// Errors:
//   - ErrLengthMismatch if the operands have different lengths.
func Dot[A, B Store](a A, b B) (bool, error) {
	if a.Len() != b.Len() {
		return false, fmt.Errorf("Dot: %d != %d: %w", a.Len(), b.Len(), ErrLengthMismatch)
	}
	var sum uint64
	for i := 0; i < a.Words(); i++ {
		sum ^= a.Word(i) & b.Word(i)
	}

	return gbit.Parity(sum), nil
}

// ShiftLeft shifts all elements toward index 0 by k places in vector order:
// [v0,v1,v2,v3] shifted by 1 becomes [v1,v2,v3,0]. Zeros enter on the
// right. Non-positive k is a no-op; k >= Len clears the store.
func ShiftLeft[S Store](s S, k int) {
	if k <= 0 || s.Len() == 0 {
		return
	}
	if k >= s.Len() {
		Fill(s, false)

		return
	}

	// Whole-word phase first.
	wordShift := k / gbit.W
	endWord := s.Words() - wordShift
	if wordShift > 0 {
		for i := 0; i < endWord; i++ {
			s.SetWord(i, s.Word(i+wordShift))
		}
		for i := endWord; i < s.Words(); i++ {
			s.SetWord(i, 0)
		}
		k -= wordShift * gbit.W
	}

	// Partial phase: bits cross one word boundary at a time.
	if k != 0 {
		kc := uint(gbit.W - k)
		for i := 0; i < endWord-1; i++ {
			lo := s.Word(i) >> uint(k)
			hi := s.Word(i+1) << kc
			s.SetWord(i, lo|hi)
		}
		s.SetWord(endWord-1, s.Word(endWord-1)>>uint(k))
	}
}

// ShiftRight shifts all elements away from index 0 by k places in vector
// order: [v0,v1,v2,v3] shifted by 1 becomes [0,v0,v1,v2]. Zeros enter on
// the left. Non-positive k is a no-op; k >= Len clears the store.
func ShiftRight[S Store](s S, k int) {
	if k <= 0 || s.Len() == 0 {
		return
	}
	if k >= s.Len() {
		Fill(s, false)

		return
	}

	// Whole-word phase first, walking down from the top.
	wordShift := k / gbit.W
	if wordShift > 0 {
		for i := s.Words() - 1; i >= wordShift; i-- {
			s.SetWord(i, s.Word(i-wordShift))
		}
		for i := 0; i < wordShift; i++ {
			s.SetWord(i, 0)
		}
		k -= wordShift * gbit.W
	}

	// Partial phase.
	if k != 0 {
		kc := uint(gbit.W - k)
		for i := s.Words() - 1; i > wordShift; i-- {
			lo := s.Word(i-1) >> kc
			hi := s.Word(i) << uint(k)
			s.SetWord(i, lo|hi)
		}
		s.SetWord(wordShift, s.Word(wordShift)<<uint(k))
	}
}

// RiffleInto fills dst with the elements of src interleaved with zeros.
// If src is abcde then dst becomes a0b0c0d0e — length 2*Len-1, with no
// trailing zero. A src shorter than two bits is copied unchanged.
func RiffleInto[S Store](src S, dst *Vec) {
	n := src.Len()
	if n < 2 {
		dst.Resize(n)
		_ = CopyStore(dst, src)

		return
	}

	// One word riffles into two adjacent output words.
	dst.Resize(2 * n)
	dstWords := dst.Words()
	for i := 0; i < src.Words(); i++ {
		lo, hi := gbit.Riffle(src.Word(i))
		dst.SetWord(2*i, lo)
		if 2*i+1 < dstWords {
			dst.SetWord(2*i+1, hi)
		}
	}

	// abcde riffles to a0b0c0d0e0; drop the final zero.
	dst.Pop()
}

// Riffled returns a new Vec with the elements of src interleaved with
// zeros. See RiffleInto.
func Riffled[S Store](src S) *Vec {
	dst := NewVec()
	RiffleInto(src, dst)

	return dst
}

// Convolve returns the GF(2) convolution of a and b as a new Vec of length
// a.Len()+b.Len()-1:
//
//	(a * b)[k] = sum_j a[j] b[k-j]
//
// An empty operand yields an empty result.
func Convolve[A, B Store](a A, b B) *Vec {
	if a.Len() == 0 || b.Len() == 0 {
		return NewVec()
	}
	result := mustZeros(a.Len() + b.Len() - 1)

	// All-zero operands convolve to all zeros.
	aLast, aAny := LastSet(a)
	bLast, bAny := LastSet(b)
	if !aAny || !bAny {
		return result
	}

	// Only words of b up to its last set bit ever contribute.
	bWordsEnd := gbit.WordIndex(bLast) + 1

	// Seed the result with b, then walk a's bits from the top set bit down:
	// shift the accumulator up one place and add b back in wherever a has
	// a set bit.
	for i := 0; i < bWordsEnd; i++ {
		result.SetWord(i, b.Word(i))
	}
	for i := aLast - 1; i >= 0; i-- {
		var prev uint64
		for j := 0; j < result.Words(); j++ {
			carry := prev >> (gbit.W - 1)
			prev = result.Word(j)
			result.SetWord(j, prev<<1|carry)
		}
		if getBit(a, i) {
			for j := 0; j < bWordsEnd; j++ {
				result.SetWord(j, result.Word(j)^b.Word(j))
			}
		}
	}

	return result
}

// SplitAt copies the first at elements of src into left and the remainder
// into right, resizing both.
//
// Errors:
//   - ErrOutOfRange if at is not in [0, Len()].
func SplitAt[S Store](src S, at int, left, right *Vec) error {
	n := src.Len()
	if at < 0 || at > n {
		return fmt.Errorf("SplitAt: at %d, length %d: %w", at, n, ErrOutOfRange)
	}
	left.Resize(at)
	_ = CopyStore(left, &Slice[S]{src: src, start: 0, n: at})
	right.Resize(n - at)
	_ = CopyStore(right, &Slice[S]{src: src, start: at, n: n - at})

	return nil
}

// Describe returns a multi-line debugging summary of the store. The format
// is informal and may change.
func Describe[S Store](s S) string {
	var b strings.Builder
	fmt.Fprintf(&b, "binary format:         %s\n", BinaryString(s))
	fmt.Fprintf(&b, "hex format:            %s\n", HexString(s))
	fmt.Fprintf(&b, "number of bits:        %d\n", s.Len())
	fmt.Fprintf(&b, "number of set bits:    %d\n", CountOnes(s))
	fmt.Fprintf(&b, "number of unset bits:  %d\n", CountZeros(s))
	fmt.Fprintf(&b, "bits per word:         %d\n", gbit.W)
	fmt.Fprintf(&b, "word count:            %d\n", s.Words())
	b.WriteString("words in hex:         [\n")
	for i := 0; i < s.Words(); i++ {
		fmt.Fprintf(&b, "  %016X\n", s.Word(i))
	}
	b.WriteString("]\n")

	return b.String()
}
