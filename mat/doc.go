// SPDX-License-Identifier: MIT

// Package mat implements matrices over GF(2), the two-element field.
//
// A Mat is row-major: each row is a bit-vector from package store, so row
// operations (the workhorse of every elimination algorithm here) are
// whole-word XORs. On top of the structural surface the package provides:
//
//   - Products: matrix-vector, vector-matrix, matrix-matrix, and powers
//     including Pow2 for the repeated-squaring exponent 2^n.
//   - Echelon forms: in-place Gaussian elimination to echelon and reduced
//     echelon form, rank, and inversion.
//   - Characteristic polynomials via Danilevsky similarity transforms to
//     Frobenius (block companion) form, which needs O(n) GF(2) row sweeps
//     per block instead of symbolic determinant expansion.
//   - Solver: a frozen Gaussian solver for A·x = b that can enumerate the
//     full solution set of an underdetermined system.
//   - LU: an LU decomposition with LAPACK-style row-swap bookkeeping.
//
// Invertibility is common: a fair-coin square bit-matrix is invertible
// with probability about 29 percent at any size past 10 or so, which is
// why the solvers treat singularity as an ordinary outcome rather than an
// exceptional one.
package mat
