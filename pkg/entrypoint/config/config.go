package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"
)

// Common holds configuration shared by all subcommands.
type Common struct {
	LogLevel string
}

// AddCommonFlags registers the shared flags on the root command.
func AddCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log-level", "info", "logging level (debug, info, warn, error)")
}

// CommonConfigFromCmd extracts the shared configuration from the command's
// flags.
func CommonConfigFromCmd(cmd *cobra.Command) (Common, error) {
	var c Common
	var err error

	c.LogLevel, err = cmd.Flags().GetString("log-level")
	if err != nil {
		return Common{}, err
	}

	return c, nil
}
