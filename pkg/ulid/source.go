// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package ulid

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	xorshiftMultiplier = 0x2545F4914F6CDD1D
	// fallbackSeed replaces a zero seed, which xorshift can never leave.
	fallbackSeed = 0x9E3779B97F4A7C15
)

// Source is a xorshift64* pseudo-random generator safe for concurrent use.
// It is fast and not suitable for anything security sensitive.
type Source struct {
	state   atomic.Uint64
	retries atomic.Uint64
}

// NewSource creates a Source seeded with seed. A zero seed is replaced by a
// fixed non-zero constant.
func NewSource(seed uint64) *Source {
	if seed == 0 {
		seed = fallbackSeed
	}
	s := &Source{}
	s.state.Store(seed)
	return s
}

// Uint64 advances the state exactly once and returns the scrambled result.
// Concurrent callers never advance from the same state: each computes the
// next state from what it loaded and commits it only if nobody else did first.
func (s *Source) Uint64() uint64 {
	for {
		old := s.state.Load()
		next := xorshift(old)
		if s.state.CompareAndSwap(old, next) {
			return next * xorshiftMultiplier
		}
		s.retries.Add(1)
	}
}

// Uint32 returns the low 32 bits of Uint64.
func (s *Source) Uint32() uint32 {
	return uint32(s.Uint64())
}

// Retries returns how many times a caller lost a compare-and-swap race.
func (s *Source) Retries() uint64 {
	return s.retries.Load()
}

func xorshift(x uint64) uint64 {
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	return x
}

// monotonicEpoch anchors the clock reading used for the default seed.
var monotonicEpoch = time.Now()

// monotonicMillis reads the monotonic clock in milliseconds since an
// arbitrary process-local epoch, offset by the wall clock so that two
// processes started in different milliseconds get different seeds.
func monotonicMillis() uint64 {
	return uint64(monotonicEpoch.UnixMilli()) + uint64(time.Since(monotonicEpoch).Milliseconds())
}

var (
	defaultSource     *Source
	defaultSourceOnce sync.Once
)

// DefaultSource returns the process-wide Source, seeding it on first use.
func DefaultSource() *Source {
	defaultSourceOnce.Do(func() {
		defaultSource = NewSource(monotonicMillis())
	})
	return defaultSource
}
