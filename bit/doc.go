// Package bit supplies the 64-bit word primitives that back every bit-store
// in gf2.
//
// A bit-store packs its elements into uint64 words, least significant bit
// first, so element i of a store lives at bit offset i%64 of word i/64.
// This package owns that addressing arithmetic (WordsNeeded, IndexAndMask,
// ...) together with the word-level kernels the algebra layers lean on:
// bit-range masks, ReplaceBits, the zero-interleaving Riffle used for
// polynomial squaring, and parity.
//
// Everything here is a pure function on uint64 built on math/bits; there is
// no state and nothing can fail.
package bit
