// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/azrael417/statsampler/utils/logging"
)

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String(configFileKey, "", "Path to a YAML, JSON or TOML file providing values for any flag")
	fs.Bool(metricsKey, false, "If true, writes the collected metrics to stderr after the command completes")
	fs.String(logLevelKey, "info", "The log level written to the log directory")
	fs.String(logDisplayLevelKey, "info", "The log level written to stderr")
	fs.String(logFormatKey, logging.AutoString, logging.FormatDescription)
	fs.String(logDirKey, "", "If non-empty, logs are also written, and rotated, in this directory")
}

// getViper returns the viper environment for [fs]. Values are taken, in
// order of precedence, from explicitly set flags, the environment, the config
// file and finally the flag defaults.
func getViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(configFileKey); configFile != "" {
		v.SetConfigFile(os.ExpandEnv(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	config := logging.DefaultConfig()

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(logLevelKey))
	if err != nil {
		return config, err
	}
	config.DisplayLevel, err = logging.ToLevel(v.GetString(logDisplayLevelKey))
	if err != nil {
		return config, err
	}
	config.LogFormat, err = logging.ToFormat(v.GetString(logFormatKey), os.Stderr.Fd())
	if err != nil {
		return config, err
	}
	config.Directory = os.ExpandEnv(v.GetString(logDirKey))
	return config, nil
}
