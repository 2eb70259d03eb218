// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniformWithReplacementInitialize(t *testing.T) {
	require := require.New(t)

	s := NewDeterministicUniformWithReplacement(NewSource(0))
	require.NoError(s.Initialize(0))
	require.NoError(s.Initialize(math.MaxUint32 + 1))
	require.ErrorIs(s.Initialize(math.MaxUint32+2), ErrRangeTooLarge)
}

func TestUniformWithReplacementSample(t *testing.T) {
	require := require.New(t)

	s := NewDeterministicUniformWithReplacement(NewSource(42))
	require.NoError(s.Initialize(3))

	first, err := s.Sample(3)
	require.NoError(err)
	require.Equal([]uint64{2, 0, 2}, first)

	second, err := s.Sample(3)
	require.NoError(err)
	require.Equal([]uint64{2, 0, 0}, second)
}

func TestUniformWithReplacementSampleErrors(t *testing.T) {
	require := require.New(t)

	s := NewDeterministicUniformWithReplacement(NewSource(0))

	_, err := s.Sample(1)
	require.ErrorIs(err, ErrOutOfRange)

	require.NoError(s.Initialize(10))
	_, err = s.Sample(-1)
	require.ErrorIs(err, ErrNegativeCount)

	result, err := s.Sample(0)
	require.NoError(err)
	require.Empty(result)
}

func TestUniformWithReplacementSingleElement(t *testing.T) {
	require := require.New(t)

	source := &testSource{
		onInvalid: t.FailNow,
	}
	s := NewDeterministicUniformWithReplacement(source)
	require.NoError(s.Initialize(1))

	result, err := s.Sample(5)
	require.NoError(err)
	require.Equal([]uint64{0, 0, 0, 0, 0}, result)
}

func TestUniformWithReplacementStaysInRange(t *testing.T) {
	require := require.New(t)

	s := NewUniformWithReplacement()
	require.NoError(s.Initialize(7))

	result, err := s.Sample(1000)
	require.NoError(err)
	require.Len(result, 1000)
	for _, v := range result {
		require.Less(v, uint64(7))
	}
}
