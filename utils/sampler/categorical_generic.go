// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

var _ Categorical = (*categoricalGeneric)(nil)

// categoricalGeneric draws one uniform value per sample and maps it through
// the weighted sampler.
type categoricalGeneric struct {
	rng *rng
	w   Weighted
}

func (s *categoricalGeneric) Initialize(probabilities []float64) error {
	if len(probabilities) == 0 {
		return ErrOutOfRange
	}
	return s.w.Initialize(probabilities)
}

func (s *categoricalGeneric) Sample(count int) ([]int, error) {
	switch {
	case count < 0:
		return nil, ErrNegativeCount
	case count == 0:
		return []int{}, nil
	}

	indices := make([]int, count)
	for i := range indices {
		index, err := s.w.Sample(s.rng.Float64())
		if err != nil {
			return nil, err
		}
		indices[i] = index
	}
	return indices, nil
}
