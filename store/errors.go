// SPDX-License-Identifier: MIT
// Package store: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the store
// package. All operations return these sentinels and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package store

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "store: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR CLASSES (documented, enforced in tests):
// Everything here is a *caller* error: a bad index, a bad length, operands
// whose lengths disagree, or an unparsable string. Mathematical absences
// (no set bit to find, nothing to pop) are reported with (value, ok)
// returns, never with errors.

var (
	// ErrBadLength is returned when a requested store length is negative.
	ErrBadLength = errors.New("store: invalid length")

	// ErrOutOfRange indicates that a bit index or slice bound is outside
	// the valid range for the store.
	ErrOutOfRange = errors.New("store: index out of range")

	// ErrLengthMismatch indicates that two operands of a pairwise operation
	// (XOR, AND, OR, dot, copy) have different lengths.
	ErrLengthMismatch = errors.New("store: length mismatch")

	// ErrBadString indicates that a string could not be parsed as a
	// bit-vector in either the binary or the suffixed-hex format.
	ErrBadString = errors.New("store: unparsable string")
)
