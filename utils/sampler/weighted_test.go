// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedInitializeInvalid(t *testing.T) {
	tests := []struct {
		name          string
		probabilities []float64
	}{
		{
			name:          "negative",
			probabilities: []float64{0.5, -0.5, 1},
		},
		{
			name:          "nan",
			probabilities: []float64{math.NaN()},
		},
		{
			name:          "infinite",
			probabilities: []float64{math.Inf(1)},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			s := NewWeighted()
			require.ErrorIs(s.Initialize(test.probabilities), ErrInvalidProbability)

			_, err := s.Sample(0)
			require.ErrorIs(err, ErrOutOfRange)
		})
	}
}

func TestWeightedSample(t *testing.T) {
	require := require.New(t)

	s := NewWeighted()
	require.NoError(s.Initialize([]float64{0.2, 0.3, 0.5}))

	tests := []struct {
		value    float64
		expected int
	}{
		{value: 0, expected: 0},
		{value: 0.2, expected: 0},
		{value: 0.2000001, expected: 1},
		{value: 0.4, expected: 1},
		{value: 0.5, expected: 1},
		{value: 0.8, expected: 2},
		{value: 0.999999, expected: 2},
	}
	for _, test := range tests {
		index, err := s.Sample(test.value)
		require.NoError(err)
		require.Equal(test.expected, index, "value %v", test.value)
	}
}

func TestWeightedSampleOutOfRange(t *testing.T) {
	require := require.New(t)

	s := NewWeighted()
	_, err := s.Sample(0.5)
	require.ErrorIs(err, ErrOutOfRange)

	require.NoError(s.Initialize([]float64{1}))
	_, err = s.Sample(1)
	require.ErrorIs(err, ErrOutOfRange)
	_, err = s.Sample(-0.1)
	require.ErrorIs(err, ErrOutOfRange)
	_, err = s.Sample(math.NaN())
	require.ErrorIs(err, ErrOutOfRange)
}

func TestWeightedSampleRoundingReturnsLastPositive(t *testing.T) {
	require := require.New(t)

	s := NewWeighted()
	require.NoError(s.Initialize([]float64{0.1, 0.2, 0.0}))

	index, err := s.Sample(0.9)
	require.NoError(err)
	require.Equal(1, index)
}

func TestWeightedReinitialize(t *testing.T) {
	require := require.New(t)

	s := NewWeighted()
	require.NoError(s.Initialize([]float64{0.25, 0.25, 0.25, 0.25}))
	require.NoError(s.Initialize([]float64{0, 1}))

	index, err := s.Sample(0.1)
	require.NoError(err)
	require.Equal(1, index)
}

func TestCategoricalSampleSeeded(t *testing.T) {
	require := require.New(t)

	s := NewDeterministicCategorical(NewSource(7))
	require.NoError(s.Initialize([]float64{0.25, 0.25, 0.5}))

	indices, err := s.Sample(8)
	require.NoError(err)
	require.Equal([]int{0, 2, 1, 2, 2, 2, 2, 0}, indices)
}

func TestCategoricalErrors(t *testing.T) {
	require := require.New(t)

	s := NewCategorical()
	require.ErrorIs(s.Initialize(nil), ErrOutOfRange)

	require.NoError(s.Initialize([]float64{1}))
	_, err := s.Sample(-1)
	require.ErrorIs(err, ErrNegativeCount)

	indices, err := s.Sample(0)
	require.NoError(err)
	require.Empty(indices)

	indices, err = s.Sample(3)
	require.NoError(err)
	require.Equal([]int{0, 0, 0}, indices)
}
