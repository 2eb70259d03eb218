// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var ErrInvalidProbability = errors.New("probability must be a finite, non-negative number")

// Weighted defines how to map a uniform value in [0, 1) onto an index of a
// provided probability distribution
type Weighted interface {
	Initialize(probabilities []float64) error
	Sample(uniformValue float64) (int, error)
}

// NewWeighted returns a new sampler that walks the cumulative distribution in
// the order the probabilities were provided
func NewWeighted() Weighted {
	return &weightedCumulative{}
}

// Categorical samples indices of a discrete distribution with replacement
type Categorical interface {
	Initialize(probabilities []float64) error
	Sample(count int) ([]int, error)
}

// NewDeterministicCategorical returns a new sampler drawing from [source]
func NewDeterministicCategorical(source Source) Categorical {
	return &categoricalGeneric{
		rng: newRNG(source),
		w:   NewWeighted(),
	}
}

// NewCategorical returns a new sampler seeded from the wall clock
func NewCategorical() Categorical {
	return NewDeterministicCategorical(NewRandomSource())
}
