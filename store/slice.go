// SPDX-License-Identifier: MIT
// Package store: Slice, the non-owning view into any bit-store.
//
// A Slice addresses the element range [start, start+n) of its source store
// while presenting the same word-addressable contract as an owning store:
// logical word i of the view is synthesized from at most two underlying
// words. Writes go straight through to the source; bits of the source
// outside the view are never disturbed.
//
// The view is generic over its source type so slice loops instantiate
// statically, and a Slice of a Slice composes without special cases (the
// inner view is just another Store).

package store

import (
	"fmt"

	gbit "github.com/katalvlaran/gf2/bit"
)

// Slice is a mutable view of a contiguous range of bits within a source
// store. The view borrows the source: mutating either is visible in both.
type Slice[S Store] struct {
	src   S
	start int
	n     int
}

var _ Store = (*Slice[*Vec])(nil)

// NewSlice returns a view of the half-open element range [start, end) of
// src.
//
// Errors:
//   - ErrOutOfRange unless 0 <= start <= end <= src.Len().
func NewSlice[S Store](src S, start, end int) (*Slice[S], error) {
	if start < 0 || end < start || end > src.Len() {
		return nil, fmt.Errorf("NewSlice: range [%d, %d), length %d: %w", start, end, src.Len(), ErrOutOfRange)
	}

	return &Slice[S]{src: src, start: start, n: end - start}, nil
}

// Len returns the number of accessible bits in the view.
func (s *Slice[S]) Len() int { return s.n }

// Words returns the number of logical words presented by the view.
func (s *Slice[S]) Words() int { return gbit.WordsNeeded(s.n) }

// recipe returns, for logical word i, the index of the first underlying
// word it draws from and how many bits come from that word (u0Bits) and
// from its successor (u1Bits). u0Bits+u1Bits is 64 except possibly in the
// final logical word.
func (s *Slice[S]) recipe(i int) (u, u0Bits, u1Bits int) {
	off := int(gbit.BitOffset(s.start))
	u = gbit.WordIndex(s.start) + i
	u0Bits = gbit.W - off
	u1Bits = off

	// The final logical word may stop short of a full 64 bits.
	if i == s.Words()-1 {
		lastOff := (off + (s.n-1)%gbit.W) % gbit.W
		if lastOff < off {
			u1Bits = lastOff + 1 // the view's last bit sits in the second word
		} else {
			u0Bits = lastOff - off + 1
			u1Bits = 0
		}
	}

	return u, u0Bits, u1Bits
}

// Word returns logical word i of the view, padding with zeros beyond the
// view's length. i must be in [0, Words()).
func (s *Slice[S]) Word(i int) uint64 {
	u, u0Bits, u1Bits := s.recipe(i)
	off := gbit.BitOffset(s.start)

	w := (s.src.Word(u) >> off) & gbit.WithSetBits(0, uint(u0Bits))
	if u1Bits > 0 {
		w |= (s.src.Word(u+1) & gbit.WithSetBits(0, uint(u1Bits))) << uint(u0Bits)
	}

	return w
}

// SetWord overwrites logical word i of the view, splicing the bits into
// the underlying word pair without touching the source outside the view.
// i must be in [0, Words()).
func (s *Slice[S]) SetWord(i int, w uint64) {
	u, u0Bits, u1Bits := s.recipe(i)
	off := uint(gbit.BitOffset(s.start))

	// Trim anything past the view's final element.
	w &= gbit.WithSetBits(0, uint(u0Bits+u1Bits))

	s.src.SetWord(u, gbit.ReplaceBits(s.src.Word(u), off, off+uint(u0Bits), w<<off))
	if u1Bits > 0 {
		s.src.SetWord(u+1, gbit.ReplaceBits(s.src.Word(u+1), 0, uint(u1Bits), w>>uint(u0Bits)))
	}
}

// Get returns element i of the view. i must be in [0, Len()).
func (s *Slice[S]) Get(i int) bool { return getBit(s.src, s.start+i) }

// Set writes element i of the view. i must be in [0, Len()).
func (s *Slice[S]) Set(i int, val bool) { setBit(s.src, s.start+i, val) }

// String renders the view as 0s and 1s in vector order.
func (s *Slice[S]) String() string { return BinaryString(s) }
