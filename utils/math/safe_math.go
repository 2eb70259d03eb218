// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"errors"
	"math"
)

var ErrOverflow = errors.New("overflow")

// Add64 returns:
// 1) a + b
// 2) If there is overflow, an error
func Add64(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sum64 returns the sum of [values] or an error if the sum overflows.
func Sum64(values ...uint64) (uint64, error) {
	var (
		sum uint64
		err error
	)
	for _, v := range values {
		sum, err = Add64(sum, v)
		if err != nil {
			return 0, err
		}
	}
	return sum, nil
}
