// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

const (
	// float64 is assembled from 27 + 26 random bits
	highBitsScale = 1 << 26
	mantissaScale = 1 << 53
)

type Source interface {
	// Uint32 returns a random number in [0, MaxUint32] and advances the
	// generator's state.
	Uint32() uint32
}

// NewSource returns a Mersenne Twister seeded with [seed].
//
// Invariant: The stream produced for a given seed matches the MT19937
// reference implementation seeded with init_genrand, so any modifications are
// considered breaking.
func NewSource(seed uint32) Source {
	source := prng.NewMT19937()
	source.Seed(uint64(seed))
	return source
}

// NewRandomSource returns a Mersenne Twister seeded from the wall clock.
func NewRandomSource() Source {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need to ensure a truly random sampling.
	return NewSource(uint32(time.Now().UnixNano()))
}

func newRNG(source Source) *rng {
	return &rng{rng: source}
}

type rng struct {
	lock sync.Mutex
	rng  Source
}

// Uint32Inclusive returns a pseudo-random number in [0,n].
//
// Invariant: Draws are made by masked rejection sampling and n == 0 doesn't
// advance the generator. Any modification changes every seeded stream.
func (r *rng) Uint32Inclusive(n uint32) uint32 {
	if n == 0 {
		return 0
	}

	mask := n
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16

	v := r.uint32() & mask
	for v > n {
		v = r.uint32() & mask
	}
	return v
}

// Float64 returns a pseudo-random number in [0,1) with 53 bits of precision.
func (r *rng) Float64() float64 {
	r.lock.Lock()
	a := r.rng.Uint32() >> 5
	b := r.rng.Uint32() >> 6
	r.lock.Unlock()
	return (float64(a)*highBitsScale + float64(b)) / mantissaScale
}

// uint32 returns a random number in [0, MaxUint32]
func (r *rng) uint32() uint32 {
	// Note: We must grab a write lock here because rng.Uint32 internally
	// modifies state.
	r.lock.Lock()
	n := r.rng.Uint32()
	r.lock.Unlock()
	return n
}
