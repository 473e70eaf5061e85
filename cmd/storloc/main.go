package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"

	"github.com/Azure/azure-storage-location/pkg/entrypoint"
	utillog "github.com/Azure/azure-storage-location/pkg/util/log"
)

var (
	gitCommit = "unknown"
)

func main() {
	log := utillog.GetLogger()

	if err := entrypoint.NewRootCommand(gitCommit).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
