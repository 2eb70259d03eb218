// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/azrael417/statsampler/version"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "statsampler",
		Short:         "Bootstrap resampling and discrete distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(rootCmd.PersistentFlags())

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String(version.GitCommit))
			return err
		},
	}

	rootCmd.AddCommand(
		newBootstrapCommand(),
		newPMFCommand(),
		versionCmd,
	)
	return rootCmd
}
