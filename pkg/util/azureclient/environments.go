package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest/azure"
)

// Cloud names as reported by `az cloud list --output table`.
// AzurePublicCloud shows up instead of AzureCloud in some environments.
// AzureGermanCloud also appears in that list but was officially deprecated in
// 2021 and is deliberately not recognized here.
const (
	CloudNamePublic       = "AzureCloud"
	CloudNamePublicAlias  = "AzurePublicCloud"
	CloudNameChina        = "AzureChinaCloud"
	CloudNameUSGovernment = "AzureUSGovernment"
)

// StorageEnvironment contains the cloud-specific information needed to
// address a storage account in a given cloud.
type StorageEnvironment struct {
	azure.Environment
	ActualCloudName string
	Cloud           cloud.Configuration
}

var (
	// PublicCloud contains storage information for the public Azure cloud
	// environment.
	PublicCloud = StorageEnvironment{
		Environment:     azure.PublicCloud,
		ActualCloudName: CloudNamePublic,
		Cloud:           cloud.AzurePublic,
	}

	// ChinaCloud contains storage information for the Azure China cloud
	// environment.
	ChinaCloud = StorageEnvironment{
		Environment:     azure.ChinaCloud,
		ActualCloudName: CloudNameChina,
		Cloud:           cloud.AzureChina,
	}

	// USGovernmentCloud contains storage information for the US Gov cloud
	// environment.
	USGovernmentCloud = StorageEnvironment{
		Environment:     azure.USGovernmentCloud,
		ActualCloudName: CloudNameUSGovernment,
		Cloud:           cloud.AzureGovernment,
	}
)

// EnvironmentFromName returns the StorageEnvironment corresponding to the
// cloud name specified.  Matching is case-sensitive: these are the exact
// values the az CLI writes to its config and environment.
func EnvironmentFromName(name string) (StorageEnvironment, error) {
	switch name {
	case CloudNamePublic, CloudNamePublicAlias:
		return PublicCloud, nil
	case CloudNameChina:
		return ChinaCloud, nil
	case CloudNameUSGovernment:
		return USGovernmentCloud, nil
	}
	return StorageEnvironment{}, fmt.Errorf("cloud name %q is unsupported, allowed values are: %s, %s, %s, %s", name, CloudNamePublic, CloudNamePublicAlias, CloudNameUSGovernment, CloudNameChina)
}

func (e *StorageEnvironment) ClientSecretCredentialOptions() *azidentity.ClientSecretCredentialOptions {
	return &azidentity.ClientSecretCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}

func (e *StorageEnvironment) DefaultAzureCredentialOptions() *azidentity.DefaultAzureCredentialOptions {
	return &azidentity.DefaultAzureCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}

func (e *StorageEnvironment) ManagedIdentityCredentialOptions() *azidentity.ManagedIdentityCredentialOptions {
	return &azidentity.ManagedIdentityCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}
