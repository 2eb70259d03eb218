// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/azrael417/statsampler/stats/bootstrap"
	"github.com/azrael417/statsampler/utils/logging"
)

const (
	defaultNumSamples = 1000
	defaultConfidence = 0.95
)

func newBootstrapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Bootstrap the column means of a CSV observation matrix",
		Long: `Reads one observation per CSV record and draws bootstrap replicates of the
mean of every variable. By default a summary with a percentile confidence
interval is printed per variable. With --replicates the replicate matrix is
printed instead, with the plug-in mean as its first row.`,
		Args: cobra.NoArgs,
		RunE: withEnvironment(runBootstrap),
	}

	fs := cmd.Flags()
	fs.String(inputKey, "-", "CSV file to read observations from, - for stdin")
	fs.Int(samplesKey, defaultNumSamples, "Number of bootstrap replicates to draw")
	fs.Int(axisKey, int(bootstrap.Rows), "0 resamples rows, 1 resamples columns")
	fs.Uint32(seedKey, bootstrap.DefaultSeed, "Seed of the random number generator")
	fs.Float64(confidenceKey, defaultConfidence, "Coverage of the reported percentile interval")
	fs.Bool(replicatesKey, false, "If true, prints the replicate matrix instead of the summary")
	return cmd
}

func runBootstrap(cmd *cobra.Command, env *environment) error {
	path := env.v.GetString(inputKey)
	env.log.Debug("reading observations",
		logging.UserString("input", path),
	)
	input, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	observations, err := readMatrix(input)
	_ = input.Close()
	if err != nil {
		return err
	}

	config := bootstrap.Config{
		Axis: bootstrap.Axis(env.v.GetInt(axisKey)),
		Seed: env.v.GetUint32(seedKey),
	}
	resampler, err := bootstrap.New(
		config,
		env.log,
		metricsNamespace+"_bootstrap",
		env.registry,
	)
	if err != nil {
		return err
	}

	rows, cols := observations.Dims()
	env.log.Info("resampling observations",
		zap.Int("rows", rows),
		zap.Int("columns", cols),
		zap.Stringer("axis", config.Axis),
		zap.Uint32("seed", config.Seed),
	)

	numSamples := env.v.GetInt(samplesKey)
	if env.v.GetBool(replicatesKey) {
		replicates, err := resampler.Resample(observations, numSamples)
		if err != nil {
			return err
		}
		return writeMatrix(cmd.OutOrStdout(), replicates)
	}

	estimates, err := resampler.Estimate(observations, numSamples, env.v.GetFloat64(confidenceKey))
	if err != nil {
		return err
	}
	return writeEstimates(cmd.OutOrStdout(), estimates)
}
