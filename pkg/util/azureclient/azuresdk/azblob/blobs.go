package azblob

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/service"

	"github.com/Azure/azure-storage-location/pkg/storage"
)

// BlobsClient is a minimal interface for Azure BlobsClient
type BlobsClient interface {
	DownloadStream(ctx context.Context, containerName string, blobName string, o *azblob.DownloadStreamOptions) (azblob.DownloadStreamResponse, error)
	UploadBuffer(ctx context.Context, containerName string, blobName string, buffer []byte, o *azblob.UploadBufferOptions) (azblob.UploadBufferResponse, error)
	DeleteBlob(ctx context.Context, containerName string, blobName string, o *azblob.DeleteBlobOptions) (azblob.DeleteBlobResponse, error)
	ServiceClient() *service.Client
}

type blobsClient struct {
	*azblob.Client
}

var _ BlobsClient = &blobsClient{}

// NewBlobsClientForLocation creates a BlobsClient against the blob endpoint
// of the given location, authenticating with the location's credentials.
// Shared-key credentials are not supported here: the azblob constructors
// need the raw key, which callers holding one pass to the SDK directly.
func NewBlobsClientForLocation(location storage.CloudLocation, options *azblob.ClientOptions) (BlobsClient, error) {
	u, err := location.URL(storage.ServiceTypeBlob)
	if err != nil {
		return nil, err
	}

	credentials := location.Credentials()

	switch credentials.Kind() {
	case storage.CredentialsKindSASToken:
		token, _ := credentials.SASToken()
		u.RawQuery = token
		return newBlobsClientUsingSAS(u.String(), options)
	case storage.CredentialsKindTokenCredential:
		cred, _ := credentials.TokenCredential()
		return newBlobsClientUsingEntra(u.String(), cred, options)
	case storage.CredentialsKindAnonymous:
		return newBlobsClientUsingSAS(u.String(), options)
	default:
		return nil, fmt.Errorf("unsupported credentials kind %s", credentials.Kind())
	}
}

// newBlobsClientUsingSAS creates a new BlobsClient using SAS
func newBlobsClientUsingSAS(sasURL string, options *azblob.ClientOptions) (*blobsClient, error) {
	client, err := azblob.NewClientWithNoCredential(sasURL, options)
	if err != nil {
		return nil, err
	}

	return &blobsClient{
		Client: client,
	}, nil
}

// newBlobsClientUsingEntra creates a new BlobsClient using Microsoft Entra
// credentials
func newBlobsClientUsingEntra(serviceURL string, credential azcore.TokenCredential, options *azblob.ClientOptions) (*blobsClient, error) {
	client, err := azblob.NewClient(serviceURL, credential, options)
	if err != nil {
		return nil, err
	}

	return &blobsClient{
		Client: client,
	}, nil
}
