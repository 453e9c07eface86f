// SPDX-License-Identifier: MIT
// Package bit: word-level primitives shared by every bit-store.
// All functions are pure, deterministic, and allocation-free. Panics are
// reserved for programmer errors (malformed bit ranges) and guarded by the
// callers in store/; nothing here fails on user input.

package bit

import "math/bits"

// W is the number of bits in a storage word.
const W = 64

// WordsNeeded returns the number of uint64 words needed to store n bits.
// WordsNeeded(0) == 0, WordsNeeded(1) == 1, WordsNeeded(65) == 2.
func WordsNeeded(n int) int { return (n + W - 1) / W }

// WordIndex returns the index of the word holding bit element i.
func WordIndex(i int) int { return i / W }

// BitOffset returns the position of bit element i within its word.
func BitOffset(i int) uint { return uint(i % W) }

// IndexAndOffset returns the (word index, bit offset) pair locating element i.
func IndexAndOffset(i int) (int, uint) { return WordIndex(i), BitOffset(i) }

// IndexAndMask returns the word index holding element i together with a
// single-bit mask that isolates it within that word.
func IndexAndMask(i int) (int, uint64) { return WordIndex(i), uint64(1) << BitOffset(i) }

// WithSetBits returns a word with every bit in the half-open range
// [start, end) set and all other bits clear. start <= end <= W is assumed.
func WithSetBits(start, end uint) uint64 {
	// Build the mask from two unbounded shifts so empty ranges yield zero.
	return unboundedShl(^uint64(0), start) & unboundedShr(^uint64(0), W-end)
}

// ReplaceBits returns dst with the bits in [start, end) replaced by the
// corresponding bits of with. Bits outside the range are untouched.
func ReplaceBits(dst uint64, start, end uint, with uint64) uint64 {
	mask := WithSetBits(start, end)

	return (dst &^ mask) | (with & mask)
}

// Riffle interleaves the bits of w with zeros, splitting the result across
// two words. If w is b63...b1b0 then lo carries 0b31...0b1 0b0 (each low-half
// bit followed by a zero) and hi carries the high half the same way.
func Riffle(w uint64) (lo, hi uint64) {
	lo = w & (^uint64(0) >> (W / 2)) // low 32 bits
	hi = w >> (W / 2)                // high 32 bits

	// Classic bit "spreading": at each pass the mask keeps every run of i
	// bits and the shift-XOR doubles the gaps between them.
	for i := uint(W / 4); i > 0; i /= 2 {
		mask := ^uint64(0) / ((1 << i) | 1)
		lo = (lo ^ (lo << i)) & mask
		hi = (hi ^ (hi << i)) & mask
	}

	return lo, hi
}

// Parity reports whether w has an odd number of set bits.
// This is the GF(2) "sum" of the bits in the word.
func Parity(w uint64) bool { return bits.OnesCount64(w)%2 == 1 }

// PrevPowerOfTwo returns the greatest power of two <= n, or 0 when n is 0.
// The companion to bits.Len-style ceilings; in C++ terms this is bit_floor.
func PrevPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	return uint64(1) << (bits.Len64(n) - 1)
}

// LowestSet returns the index of the lowest set bit in w, or ok == false if
// w is zero.
func LowestSet(w uint64) (int, bool) {
	if w == 0 {
		return 0, false
	}

	return bits.TrailingZeros64(w), true
}

// HighestSet returns the index of the highest set bit in w, or ok == false
// if w is zero.
func HighestSet(w uint64) (int, bool) {
	if w == 0 {
		return 0, false
	}

	return W - bits.LeadingZeros64(w) - 1, true
}

// unboundedShl is a left shift that yields zero for shifts >= W instead of
// the undefined-by-wraparound result of the native operator.
func unboundedShl(w uint64, s uint) uint64 {
	if s >= W {
		return 0
	}

	return w << s
}

// unboundedShr is a right shift that yields zero for shifts >= W.
func unboundedShr(w uint64, s uint) uint64 {
	if s >= W {
		return 0
	}

	return w >> s
}
