// SPDX-License-Identifier: MIT

// Package poly implements polynomials over GF(2), the two-element field.
//
// A Poly is a coefficient bit-vector: the coefficient of x^i lives at
// element i. Addition is XOR, multiplication is carry-less convolution,
// and squaring is the Frobenius map, so p(x)^2 == p(x^2) and squaring
// reduces to interleaving the coefficients with zeros.
//
// The package's centerpiece is modular exponentiation of x: XPowModP
// computes x^n mod P by square-and-multiply over precomputed residues
// x^d..x^(2d-2) mod P, and XPow2PowModP computes x^(2^N) mod P by repeated
// squaring alone, which keeps N itself out of the arithmetic and makes
// astronomically large exponents cheap. Those two power residues are the
// working parts of period finding for linear feedback shift registers.
//
// Polynomials are not normalized: a Poly may carry high-order zero
// coefficients, and Degree reports the highest set coefficient (0 for the
// zero polynomial).
package poly
