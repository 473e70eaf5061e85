package parse

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-storage-location/pkg/storage"
)

// NewCommand returns the cobra command for "parse".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:  "parse URL",
		Long: "Reconstruct a cloud location from a storage SAS URL",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}

	return cc
}

func run(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	location, err := storage.ParseLocationURL(u)
	if err != nil {
		return err
	}

	base, err := location.URL(storage.ServiceTypeBlob)
	if err != nil {
		return err
	}

	switch l := location.(type) {
	case *storage.SovereignLocation:
		fmt.Printf("cloud:   %s\n", l.Environment().ActualCloudName)
		fmt.Printf("account: %s\n", l.Account())
	case *storage.EmulatorLocation:
		fmt.Printf("cloud:   emulator\n")
		fmt.Printf("address: %s:%d\n", l.Address(), l.Port())
	}
	fmt.Printf("url:     %s\n", base)

	return nil
}
