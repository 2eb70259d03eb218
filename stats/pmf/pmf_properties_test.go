// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pmf

import (
	"fmt"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPMFProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("probabilities sum to one", prop.ForAll(
		func(counts map[int8]int) string {
			p := New[int8]()
			for value, count := range counts {
				if err := p.AddCounts(map[int8]int64{value: int64(count)}); err != nil {
					return err.Error()
				}
			}
			if p.Total() == 0 {
				return ""
			}

			sum := 0.
			for _, key := range p.Keys() {
				sum += p.Probability(key)
			}
			if math.Abs(sum-1) > 1e-9 {
				return fmt.Sprintf("probabilities sum to %v", sum)
			}
			return ""
		},
		gen.MapOf(gen.Int8(), gen.IntRange(1, 1000)),
	))

	properties.Property("samples only contain known values", prop.ForAll(
		func(values []int8, seed uint32) string {
			if len(values) == 0 {
				return ""
			}
			p, err := NewFromValues(values)
			if err != nil {
				return err.Error()
			}
			samples, err := p.Sample(64, seed)
			if err != nil {
				return err.Error()
			}
			for _, sample := range samples {
				if p.Count(sample) == 0 {
					return fmt.Sprintf("sampled unknown value %d", sample)
				}
			}
			return ""
		},
		gen.SliceOf(gen.Int8()),
		gen.UInt32(),
	))

	properties.Property("keys are strictly ascending", prop.ForAll(
		func(values []int8) string {
			p, err := NewFromValues(values)
			if err != nil {
				return err.Error()
			}
			keys := p.Keys()
			for i := 1; i < len(keys); i++ {
				if keys[i-1] >= keys[i] {
					return fmt.Sprintf("keys out of order: %v", keys)
				}
			}
			return ""
		},
		gen.SliceOf(gen.Int8()),
	))

	properties.TestingRun(t)
}
