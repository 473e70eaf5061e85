package entrypoint

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"

	"github.com/Azure/azure-storage-location/pkg/entrypoint/config"
	"github.com/Azure/azure-storage-location/pkg/entrypoint/parse"
	"github.com/Azure/azure-storage-location/pkg/entrypoint/resolve"
)

// NewRootCommand returns the root storloc command.
func NewRootCommand(version string) *cobra.Command {
	cc := &cobra.Command{
		Use:           "storloc",
		Long:          "Resolve Azure Storage endpoints and credentials",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.AddCommonFlags(cc)

	cc.AddCommand(resolve.NewCommand())
	cc.AddCommand(parse.NewCommand())

	return cc
}
