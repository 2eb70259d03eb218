// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var (
	ErrOutOfRange    = errors.New("out of range")
	ErrRangeTooLarge = errors.New("sample range is too large")
	ErrNegativeCount = errors.New("negative sample count")
)

// UniformWithReplacement samples values with replacement in the provided range
type UniformWithReplacement interface {
	Initialize(sampleRange uint64) error
	Sample(count int) ([]uint64, error)
}

// NewDeterministicUniformWithReplacement returns a new sampler drawing from
// [source]
func NewDeterministicUniformWithReplacement(source Source) UniformWithReplacement {
	return &uniformReplacement{
		rng: newRNG(source),
	}
}

// NewUniformWithReplacement returns a new sampler seeded from the wall clock
func NewUniformWithReplacement() UniformWithReplacement {
	return NewDeterministicUniformWithReplacement(NewRandomSource())
}
