// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bootstrap

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/azrael417/statsampler/utils/metric"
	"github.com/azrael417/statsampler/utils/wrappers"
)

type metrics struct {
	calls,
	failures,
	replicates prometheus.Counter

	duration prometheus.Histogram
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls",
			Help:      "# of resample calls",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures",
			Help:      "# of resample calls rejected due to invalid input",
		}),
		replicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replicates",
			Help:      "# of bootstrap replicates drawn",
		}),
		duration: metric.NewNanosecondsLatencyMetric(namespace, "duration"),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.calls),
		registerer.Register(m.failures),
		registerer.Register(m.replicates),
		registerer.Register(m.duration),
	)
	return m, errs.Err
}
