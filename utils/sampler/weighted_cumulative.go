// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "math"

var _ Weighted = (*weightedCumulative)(nil)

type weightedCumulativeElement struct {
	cumulativeProbability float64
}

// Sampling is performed by executing a linear search over the cumulative
// distribution, in the order the probabilities were provided, for the first
// element whose cumulative probability is at least the sampled value.
//
// Initialization takes O(n) time, where n is the number of elements that can
// be sampled.
// Sampling can take up to O(n) time.
type weightedCumulative struct {
	arr          []weightedCumulativeElement
	lastPositive int
}

func (s *weightedCumulative) Initialize(probabilities []float64) error {
	numProbabilities := len(probabilities)
	if numProbabilities <= cap(s.arr) {
		s.arr = s.arr[:numProbabilities]
	} else {
		s.arr = make([]weightedCumulativeElement, numProbabilities)
	}

	s.lastPositive = -1
	sum := 0.
	for i, probability := range probabilities {
		if probability < 0 || math.IsNaN(probability) || math.IsInf(probability, 0) {
			s.arr = s.arr[:0]
			return ErrInvalidProbability
		}
		sum += probability
		s.arr[i] = weightedCumulativeElement{
			cumulativeProbability: sum,
		}
		if probability > 0 {
			s.lastPositive = i
		}
	}
	return nil
}

func (s *weightedCumulative) Sample(value float64) (int, error) {
	if len(s.arr) == 0 || value < 0 || value >= 1 || math.IsNaN(value) {
		return 0, ErrOutOfRange
	}

	for index, elem := range s.arr {
		if value <= elem.cumulativeProbability {
			return index, nil
		}
	}

	// Rounding left the total mass just below [value].
	if s.lastPositive < 0 {
		return 0, ErrOutOfRange
	}
	return s.lastPositive, nil
}
