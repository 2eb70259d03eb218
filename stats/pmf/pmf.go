// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pmf implements an empirical probability mass function over ordered
// discrete outcomes.
package pmf

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/azrael417/statsampler/utils/sampler"

	safemath "github.com/azrael417/statsampler/utils/math"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNonPositiveCount  = fmt.Errorf("%w: counts must be positive", ErrInvalidArgument)
	ErrEmptyDistribution = fmt.Errorf("%w: no data has been added", ErrInvalidArgument)
	ErrUnorderedValue    = fmt.Errorf("%w: value can't be ordered", ErrInvalidArgument)
)

// PMF is an empirical distribution built from observed counts. Counts only
// ever grow.
//
// PMF is not safe for concurrent mutation. Concurrent reads are safe as long
// as no Add call runs at the same time.
type PMF[K constraints.Ordered] struct {
	counts map[K]uint64
	total  uint64
}

// New returns an empty distribution.
func New[K constraints.Ordered]() *PMF[K] {
	return &PMF[K]{
		counts: make(map[K]uint64),
	}
}

// NewFromCounts returns a distribution initialized with [counts].
func NewFromCounts[K constraints.Ordered](counts map[K]int64) (*PMF[K], error) {
	p := New[K]()
	if err := p.AddCounts(counts); err != nil {
		return nil, err
	}
	return p, nil
}

// NewFromValues returns a distribution where every occurrence of a value in
// [values] counts once.
func NewFromValues[K constraints.Ordered](values []K) (*PMF[K], error) {
	p := New[K]()
	if err := p.AddValues(values...); err != nil {
		return nil, err
	}
	return p, nil
}

// AddCounts merges [counts] into the distribution.
//
// Either every count is applied or, if any value is NaN, any count is not
// positive or a count would overflow, none is.
func (p *PMF[K]) AddCounts(counts map[K]int64) error {
	for value, count := range counts {
		// NaN is the only value not equal to itself. It has no place in the
		// ordering and could never be looked up again.
		if value != value {
			return fmt.Errorf("%w: %v", ErrUnorderedValue, value)
		}
		if count <= 0 {
			return fmt.Errorf("%w: %v has count %d", ErrNonPositiveCount, value, count)
		}
	}

	staged := make(map[K]uint64, len(counts))
	total := p.total
	for value, count := range counts {
		newCount, err := safemath.Add64(p.counts[value], uint64(count))
		if err != nil {
			return fmt.Errorf("count of %v: %w", value, err)
		}
		total, err = safemath.Add64(total, uint64(count))
		if err != nil {
			return fmt.Errorf("total count: %w", err)
		}
		staged[value] = newCount
	}

	if p.counts == nil {
		p.counts = make(map[K]uint64, len(staged))
	}
	maps.Copy(p.counts, staged)
	p.total = total
	return nil
}

// AddValues increments the count of every value in [values] by one per
// occurrence.
func (p *PMF[K]) AddValues(values ...K) error {
	counts := make(map[K]int64, len(values))
	for _, value := range values {
		counts[value]++
	}
	return p.AddCounts(counts)
}

// Count returns the number of times [value] was observed.
func (p *PMF[K]) Count(value K) uint64 {
	return p.counts[value]
}

// Total returns the number of observations.
func (p *PMF[K]) Total() uint64 {
	return p.total
}

// Len returns the number of distinct values.
func (p *PMF[K]) Len() int {
	return len(p.counts)
}

// Keys returns the distinct values in ascending order.
func (p *PMF[K]) Keys() []K {
	keys := maps.Keys(p.counts)
	slices.Sort(keys)
	return keys
}

// Probability returns the fraction of observations equal to [value]. It is 0
// for unknown values and for an empty distribution.
func (p *PMF[K]) Probability(value K) float64 {
	count, ok := p.counts[value]
	if !ok || p.total == 0 {
		return 0
	}
	return float64(count) / float64(p.total)
}

// Sample draws [numSamples] values, with replacement, from a generator seeded
// with [seed].
//
// Unseeded sampling is SampleFrom(numSamples, sampler.NewRandomSource()).
func (p *PMF[K]) Sample(numSamples int, seed uint32) ([]K, error) {
	return p.SampleFrom(numSamples, sampler.NewSource(seed))
}

// SampleFrom draws [numSamples] values, with replacement, from [source].
//
// Values are ordered ascending and a value is chosen by the first cumulative
// probability that is at least a uniform draw in [0, 1).
func (p *PMF[K]) SampleFrom(numSamples int, source sampler.Source) ([]K, error) {
	if numSamples <= 0 {
		return []K{}, nil
	}
	if p.total == 0 {
		return nil, ErrEmptyDistribution
	}

	keys := p.Keys()
	probabilities := make([]float64, len(keys))
	for i, key := range keys {
		probabilities[i] = float64(p.counts[key]) / float64(p.total)
	}

	s := sampler.NewDeterministicCategorical(source)
	if err := s.Initialize(probabilities); err != nil {
		return nil, err
	}
	indices, err := s.Sample(numSamples)
	if err != nil {
		return nil, err
	}

	samples := make([]K, numSamples)
	for i, index := range indices {
		samples[i] = keys[index]
	}
	return samples, nil
}
