// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const maxUint64 uint64 = math.MaxUint64

func TestAdd64(t *testing.T) {
	require := require.New(t)

	sum, err := Add64(0, maxUint64)
	require.NoError(err)
	require.Equal(maxUint64, sum)

	sum, err = Add64(maxUint64, 0)
	require.NoError(err)
	require.Equal(maxUint64, sum)

	sum, err = Add64(1<<62, 1<<62)
	require.NoError(err)
	require.Equal(uint64(1<<63), sum)

	_, err = Add64(1, maxUint64)
	require.ErrorIs(err, ErrOverflow)

	_, err = Add64(maxUint64, 1)
	require.ErrorIs(err, ErrOverflow)

	_, err = Add64(maxUint64, maxUint64)
	require.ErrorIs(err, ErrOverflow)
}

func TestSum64(t *testing.T) {
	require := require.New(t)

	sum, err := Sum64()
	require.NoError(err)
	require.Zero(sum)

	sum, err = Sum64(1, 2, 3)
	require.NoError(err)
	require.Equal(uint64(6), sum)

	_, err = Sum64(maxUint64-1, 1, 1)
	require.ErrorIs(err, ErrOverflow)
}
