// SPDX-License-Identifier: MIT
// Package poly: sentinel errors.
//
// NOTE ON NAMING
//
//	Every sentinel is prefixed "poly:" so a wrapped chain printed by an
//	application still identifies the layer that rejected the call. Match
//	with errors.Is, never by string.
//
// ERROR CLASSES
//
//	Caller errors (bad degree, zero modulus) return sentinels. Questions
//	with no mathematical answer use (value, ok) returns instead; asking for
//	x^n modulo the zero polynomial is not such a question, it is a misuse,
//	hence ErrZeroModulus.

package poly

import "errors"

var (
	// ErrBadDegree reports a negative degree or length argument.
	ErrBadDegree = errors.New("poly: invalid degree")

	// ErrZeroModulus reports an attempted reduction modulo the zero
	// polynomial.
	ErrZeroModulus = errors.New("poly: reduction modulo the zero polynomial")
)
