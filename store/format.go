// SPDX-License-Identifier: MIT
// Package store: string rendering and parsing for bit-stores.
//
// Two textual forms are supported, both in vector order (element 0 first):
//
//   - Binary: "10110" — one character per element.
//   - Suffixed hex: every hex digit encodes four elements, most significant
//     digit bit first, and an optional ".2", ".4", or ".8" suffix declares
//     the base of the FINAL digit so lengths that are not multiples of four
//     can round-trip: "F1.2" is 11111, "1.8" is 001.
//
// Parsing accepts whitespace, commas, and underscores as ignored
// separators, and optional "0b"/"0x"/"0X" prefixes to force a base.

package store

import (
	"fmt"
	"math/bits"
	"strings"
)

// BinaryString renders the store as 0s and 1s in vector order.
func BinaryString[S Store](s S) string { return CustomBinaryString(s, "", "", "") }

// PrettyString renders the store as space-separated bits in brackets, e.g.
// "[1 0 1]".
func PrettyString[S Store](s S) string { return CustomBinaryString(s, " ", "[", "]") }

// CustomBinaryString renders the store as 0s and 1s with a custom element
// separator and custom left/right delimiters.
func CustomBinaryString[S Store](s S, sep, left, right string) string {
	if s.Len() == 0 {
		return left + right
	}

	// Reversing each word puts element 0 at the most significant end, so a
	// zero-padded binary print comes out in vector order.
	var b strings.Builder
	for i := 0; i < s.Words(); i++ {
		fmt.Fprintf(&b, "%064b", bits.Reverse64(s.Word(i)))
	}
	raw := b.String()[:s.Len()] // the final word over-prints its padding

	if sep == "" {
		return left + raw + right
	}
	parts := make([]string, len(raw))
	for i, c := range raw {
		parts[i] = string(c)
	}

	return left + strings.Join(parts, sep) + right
}

// HexString renders the store as hex digits in vector order, each digit
// encoding four elements. When Len is not a multiple of 4, the final digit
// is written in base 2, 4, or 8 and tagged with a ".2", ".4", or ".8"
// suffix. The empty store renders as the empty string.
//
// VecFromString inverts this exactly, suffix included.
func HexString[S Store](s S) string {
	n := s.Len()
	if n == 0 {
		return ""
	}
	digits := (n + 3) / 4

	var b strings.Builder
	for i := 0; i < s.Words(); i++ {
		fmt.Fprintf(&b, "%016X", bits.Reverse64(s.Word(i)))
	}
	result := b.String()[:digits]

	// A trailing partial group re-encodes its digit in a lower base.
	k := n % 4
	if k != 0 {
		num := 0
		for i := 0; i < k; i++ {
			if getBit(s, n-1-i) {
				num |= 1 << i
			}
		}
		result = fmt.Sprintf("%s%X.%d", result[:digits-1], num, 1<<k)
	}

	return result
}

// VecFromString parses a bit-vector from s.
//
// The string may contain whitespace, commas, and underscores anywhere; an
// optional "0b" prefix forces binary and "0x"/"0X" forces hex. Without a
// prefix a string of only 0s and 1s is read as binary, anything else as
// hex. Hex strings accept the ".2"/".4"/".8" final-digit suffix emitted by
// HexString. The empty string parses to the empty vector.
//
// Errors:
//   - ErrBadString if s fits neither format.
func VecFromString(s string) (*Vec, error) {
	if s == "" {
		return NewVec(), nil
	}
	if rest, ok := strings.CutPrefix(s, "0b"); ok {
		return VecFromBinaryString(rest)
	}
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return VecFromHexString(rest)
	}
	if rest, ok := strings.CutPrefix(s, "0X"); ok {
		return VecFromHexString(rest)
	}
	if isBinary(stripSeparators(s)) {
		return VecFromBinaryString(s)
	}

	return VecFromHexString(s)
}

// VecFromBinaryString parses a string of 0s and 1s (optionally prefixed
// with "0b", with separators allowed) into a bit-vector in vector order.
//
// Errors:
//   - ErrBadString if any non-separator character is not 0 or 1.
func VecFromBinaryString(s string) (*Vec, error) {
	s = strings.TrimPrefix(s, "0b")
	s = stripSeparators(s)
	if !isBinary(s) {
		return nil, fmt.Errorf("VecFromBinaryString: %w", ErrBadString)
	}

	v := mustZeros(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			v.Set(i, true)
		}
	}

	return v, nil
}

// VecFromHexString parses a hex string (optionally prefixed with "0x" or
// "0X", with separators allowed, and optionally carrying a ".2"/".4"/".8"
// final-digit suffix) into a bit-vector in vector order.
//
// Errors:
//   - ErrBadString on a non-hex digit, a malformed suffix, or a final
//     digit exceeding the suffix base.
func VecFromHexString(s string) (*Vec, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	s = stripSeparators(s)

	// Peel a final-digit base suffix if present.
	lastBits := 4
	if dot := strings.LastIndexByte(s, '.'); dot >= 0 {
		switch s[dot+1:] {
		case "2":
			lastBits = 1
		case "4":
			lastBits = 2
		case "8":
			lastBits = 3
		default:
			return nil, fmt.Errorf("VecFromHexString: suffix %q: %w", s[dot:], ErrBadString)
		}
		s = s[:dot]
	}
	if s == "" {
		if lastBits != 4 {
			return nil, fmt.Errorf("VecFromHexString: suffix without digits: %w", ErrBadString)
		}

		return NewVec(), nil
	}

	n := 4*(len(s)-1) + lastBits
	v := mustZeros(n)
	at := 0
	for i := 0; i < len(s); i++ {
		d := hexDigit(s[i])
		if d < 0 {
			return nil, fmt.Errorf("VecFromHexString: digit %q: %w", s[i], ErrBadString)
		}
		width := 4
		if i == len(s)-1 {
			width = lastBits
			if d >= 1<<width {
				return nil, fmt.Errorf("VecFromHexString: digit %q exceeds base %d: %w", s[i], 1<<width, ErrBadString)
			}
		}
		// Digit bits map to elements most significant first.
		for j := 0; j < width; j++ {
			if d&(1<<(width-1-j)) != 0 {
				v.Set(at+j, true)
			}
		}
		at += width
	}

	return v, nil
}

// stripSeparators removes whitespace, commas, and underscores.
func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '_':
			return -1
		}

		return r
	}, s)
}

// isBinary reports whether s consists solely of 0s and 1s.
func isBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}

	return true
}

// hexDigit returns the value of a hex character, or -1 if it is not one.
func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}

	return -1
}
