// Package store provides packed bit-stores over GF(2) and the word-parallel
// operations shared by all of them.
//
// The store package provides:
//
//   - The Store contract: a length plus word-addressable access with a
//     zero-padding invariant on the final word.
//   - Vec, a dynamic owning bit-vector; Array, a fixed-length bit-store;
//     and Slice, a non-owning view of a bit range within any store.
//   - One generic implementation per operation (XOR, AND, OR, shifts, dot
//     product, riffling, convolution, scans, copies) instantiated per
//     concrete store type, so the hot loops dispatch statically.
//   - String construction and rendering in binary and suffixed-hex forms,
//     and reproducible random fills backed by a split-mix64 generator.
//
// Element order is vector order throughout: element 0 prints first and
// occupies the least significant bit of word 0.
//
// See the examples in this package and in poly and mat for usage patterns.
package store
