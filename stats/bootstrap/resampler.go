// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bootstrap

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/azrael417/statsampler/utils/logging"
)

// Config of a Resampler
type Config struct {
	Axis Axis   `json:"axis"`
	Seed uint32 `json:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Axis: Rows,
		Seed: DefaultSeed,
	}
}

func (c Config) Verify() error {
	return c.Axis.Verify()
}

// Resampler runs [Bootstrap] with a fixed configuration and reports what it
// did through logs and metrics.
//
// It is safe for concurrent use. Every call seeds its own generator.
type Resampler struct {
	config  Config
	log     logging.Logger
	metrics *metrics
}

func New(
	config Config,
	log logging.Logger,
	namespace string,
	registerer prometheus.Registerer,
) (*Resampler, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, err
	}
	return &Resampler{
		config:  config,
		log:     log,
		metrics: m,
	}, nil
}

func (r *Resampler) Config() Config {
	return r.config
}

// Resample draws [numSamples] replicates of [observations].
func (r *Resampler) Resample(observations mat.Matrix, numSamples int) (*mat.Dense, error) {
	start := time.Now()
	r.metrics.calls.Inc()

	result, err := Bootstrap(observations, numSamples, r.config.Axis, r.config.Seed)
	if err != nil {
		r.metrics.failures.Inc()
		r.log.Warn("failed to resample observations",
			zap.Stringer("axis", r.config.Axis),
			zap.Int("numSamples", numSamples),
			zap.Error(err),
		)
		return nil, err
	}

	elapsed := time.Since(start)
	r.metrics.replicates.Add(float64(numSamples))
	r.metrics.duration.Observe(float64(elapsed))

	if r.log.Enabled(logging.Debug) {
		rows, cols := observations.Dims()
		r.log.Debug("resampled observations",
			zap.Stringer("axis", r.config.Axis),
			zap.Uint32("seed", r.config.Seed),
			zap.Int("rows", rows),
			zap.Int("columns", cols),
			zap.Int("numSamples", numSamples),
			zap.Duration("duration", elapsed),
		)
	}
	return result, nil
}

// Estimate resamples [observations] and summarizes the replicates at
// [confidence].
func (r *Resampler) Estimate(observations mat.Matrix, numSamples int, confidence float64) ([]Estimate, error) {
	replicates, err := r.Resample(observations, numSamples)
	if err != nil {
		return nil, err
	}
	return Summarize(replicates, r.config.Axis, confidence)
}
