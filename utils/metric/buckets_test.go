// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestNanosecondsBucketsSorted(t *testing.T) {
	require.True(t, slices.IsSorted(NanosecondsBuckets))
}

func TestNewMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	counter := NewCounterMetric("ns", "call")
	histogram := NewNanosecondsLatencyMetric("ns", "duration")
	require.NoError(registry.Register(counter))
	require.NoError(registry.Register(histogram))

	counter.Inc()
	require.Equal(1.0, testutil.ToFloat64(counter))

	histogram.Observe(42)
	count, err := testutil.GatherAndCount(registry, "ns_duration")
	require.NoError(err)
	require.Equal(1, count)
}
