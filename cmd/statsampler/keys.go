// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

const (
	// envPrefix is prepended to every key, upper cased with dashes replaced by
	// underscores, to find its environment variable. e.g. STATSAMPLER_SEED.
	envPrefix = "statsampler"

	configFileKey      = "config-file"
	metricsKey         = "metrics"
	logLevelKey        = "log-level"
	logDisplayLevelKey = "log-display-level"
	logFormatKey       = "log-format"
	logDirKey          = "log-dir"

	inputKey      = "input"
	samplesKey    = "samples"
	seedKey       = "seed"
	axisKey       = "axis"
	confidenceKey = "confidence"
	replicatesKey = "replicates"
	numericKey    = "numeric"
	histogramKey  = "histogram"
	normalizedKey = "normalized"
)
