// SPDX-License-Identifier: MIT
// Package store: random fills backed by a split-mix64 generator.
//
// The generator is deliberately home-grown: seeded fills must reproduce
// bit-for-bit across platforms and Go releases, which rules out the
// unspecified stream ordering of math/rand sources. Split-mix64 is a
// single 64-bit word of state and a three-multiply scramble.
//
// One package-level instance is shared behind a mutex. It is seeded on
// first use from a murmur-scrambled reading of the system clock, so
// unseeded fills differ between runs while seeded fills are reproducible.

package store

import (
	"fmt"
	"sync"
	"time"
)

var (
	rngMu    sync.Mutex
	rngState uint64
	rngInit  sync.Once
)

// splitMix64 advances the shared state and returns the next 64-bit value.
// Callers must hold rngMu.
func splitMix64() uint64 {
	rngState += 0x9e3779b97f4a7c15
	z := rngState
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// murmur64 scrambles a 64-bit input with the Murmur3 finalizer.
func murmur64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33

	return x
}

// seedFromClock derives a starting seed from the system clock. The high
// bits of the seconds count barely move, so the nanosecond part replaces
// them before the scramble.
func seedFromClock() uint64 {
	now := time.Now()
	secs := uint64(now.Unix())
	ns := uint64(now.Nanosecond())

	return murmur64(ns<<32 | secs)
}

// ensureSeeded lazily seeds the shared generator. Callers must hold rngMu.
func ensureSeeded() {
	rngInit.Do(func() { rngState = seedFromClock() })
}

// FillRandom sets every element of the store by a fair coin flip.
func FillRandom[S Store](s S) { FillRandomBiasedSeeded(s, 0.5, 0) }

// FillRandomSeeded sets every element of the store by a fair coin flip
// driven by the given seed, restoring the shared generator's state
// afterwards. A seed of 0 means "use the clock" and is not reproducible.
func FillRandomSeeded[S Store](s S, seed uint64) { FillRandomBiasedSeeded(s, 0.5, seed) }

// FillRandomBiased sets each element to 1 with probability p. A p outside
// [0, 1] saturates to all zeros or all ones.
func FillRandomBiased[S Store](s S, p float64) { FillRandomBiasedSeeded(s, p, 0) }

// FillRandomBiasedSeeded sets each element to 1 with probability p using
// the given seed. A seed of 0 means "use the clock"; any other seed yields
// the same fill on every run. A p outside [0, 1] saturates.
func FillRandomBiasedSeeded[S Store](s S, p float64, seed uint64) {
	// Saturation short-circuits: no randomness needed.
	if p <= 0 {
		Fill(s, false)

		return
	}
	if p >= 1 {
		Fill(s, true)

		return
	}

	rngMu.Lock()
	defer rngMu.Unlock()
	ensureSeeded()

	// A non-zero seed runs on private state and leaves the shared stream
	// untouched, so seeded fills are reproducible regardless of history.
	saved := rngState
	if seed != 0 {
		rngState = seed
	}

	if p == 0.5 {
		// Fair coins fill whole words at a time.
		for i := 0; i < s.Words(); i++ {
			s.SetWord(i, splitMix64())
		}
	} else {
		threshold := uint64(p * (1 << 63) * 2)
		CopyFn(s, func(int) bool { return splitMix64() < threshold })
	}

	if seed != 0 {
		rngState = saved
	}
}

// RandomVec returns a bit-vector of n fair-coin elements.
//
// Errors:
//   - ErrBadLength if n is negative.
func RandomVec(n int) (*Vec, error) {
	v, err := ZerosVec(n)
	if err != nil {
		return nil, fmt.Errorf("RandomVec: %w", err)
	}
	FillRandom(v)

	return v, nil
}

// RandomVecSeeded returns a reproducible bit-vector of n fair-coin
// elements driven by seed (0 means "use the clock").
//
// Errors:
//   - ErrBadLength if n is negative.
func RandomVecSeeded(n int, seed uint64) (*Vec, error) {
	v, err := ZerosVec(n)
	if err != nil {
		return nil, fmt.Errorf("RandomVecSeeded: %w", err)
	}
	FillRandomSeeded(v, seed)

	return v, nil
}
