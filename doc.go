// Package gf2 is an in-memory toolkit for linear algebra over GF(2),
// the two-element Galois field where addition is XOR and multiplication is AND.
//
// 🚀 What is gf2?
//
//	A compact, allocation-conscious library that packs bits into 64-bit words
//	and works on whole words at a time:
//		• Bit-stores: dynamic vectors, fixed-length arrays, non-owning slices
//		• Polynomials: GF(2) arithmetic, squaring by riffling, x^N mod P(x)
//		• Matrices: echelon forms, inversion, characteristic polynomials
//		• Solvers: Gaussian elimination with solution enumeration, LU with
//		  partial pivoting
//
// ✨ Why choose gf2?
//
//   - Word-parallel kernels – 64 field operations per machine instruction
//   - Rock-solid error surface – sentinel errors, errors.Is everywhere
//   - Pure Go – no cgo, no hidden deps
//   - Generic over stores – one implementation per operation, no vtables
//     in the hot loops
//
// Under the hood, everything is organized under four subpackages:
//
//	bit/   — 64-bit word primitives (masks, riffling, bit ranges)
//	store/ — the Store contract plus Vec, Array, and Slice implementations
//	poly/  — bit-polynomials and modular reduction
//	mat/   — bit-matrices, Gaussian solver, LU decomposition
//
// Quick ASCII example:
//
//	    | 1 1 |       -1   | 1 1 |
//	A = | 0 1 |      A   = | 0 1 |     over GF(2), A is its own inverse.
//
// Dive into the package docs for full examples and the supported string
// formats for constructing vectors and matrices.
//
//	go get github.com/katalvlaran/gf2
package gf2
