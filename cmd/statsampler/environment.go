// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/azrael417/statsampler/utils/logging"
)

const metricsNamespace = "statsampler"

// environment is everything a subcommand needs beyond its flags.
type environment struct {
	v        *viper.Viper
	log      logging.Logger
	registry *prometheus.Registry
}

type runFunc func(cmd *cobra.Command, env *environment) error

// withEnvironment builds the configuration, logger and metrics registry for a
// single invocation of [cmd] and tears them down once [run] returns.
func withEnvironment(run runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		v, err := getViper(cmd.Flags())
		if err != nil {
			return err
		}
		logConfig, err := getLoggingConfig(v)
		if err != nil {
			return err
		}

		logFactory := logging.NewFactory(logConfig)
		defer logFactory.Close()

		log, err := logFactory.Make(cmd.Name())
		if err != nil {
			return err
		}

		env := &environment{
			v:        v,
			log:      log,
			registry: prometheus.NewRegistry(),
		}
		if err := run(cmd, env); err != nil {
			log.Error("command failed",
				zap.String("command", cmd.Name()),
				zap.Error(err),
			)
			return err
		}

		if !v.GetBool(metricsKey) {
			return nil
		}
		return writeMetrics(cmd.ErrOrStderr(), env.registry)
	}
}

// writeMetrics writes every metric in [gatherer] to [w] in the text
// exposition format.
func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("couldn't gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}

// openInput opens [path] for reading, where "-" is the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}
