// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math"

var _ UniformWithReplacement = (*uniformReplacement)(nil)

// uniformReplacement allows for sampling over a uniform distribution with
// replacement.
//
// Every index is drawn independently, so duplicates are expected.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(count) time and O(count) space.
type uniformReplacement struct {
	rng    *rng
	length uint64
}

func (s *uniformReplacement) Initialize(length uint64) error {
	if length > math.MaxUint32+1 {
		return ErrRangeTooLarge
	}
	s.length = length
	return nil
}

func (s *uniformReplacement) Sample(count int) ([]uint64, error) {
	switch {
	case count < 0:
		return nil, ErrNegativeCount
	case count == 0:
		return []uint64{}, nil
	case s.length == 0:
		return nil, ErrOutOfRange
	}

	maximum := uint32(s.length - 1)
	results := make([]uint64, count)
	for i := range results {
		results[i] = uint64(s.rng.Uint32Inclusive(maximum))
	}
	return results, nil
}
