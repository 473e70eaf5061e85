package storage

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// CredentialsKind discriminates the active StorageCredentials variant.
type CredentialsKind int

const (
	CredentialsKindAnonymous CredentialsKind = iota
	CredentialsKindSharedKey
	CredentialsKindSASToken
	CredentialsKindTokenCredential
)

func (k CredentialsKind) String() string {
	switch k {
	case CredentialsKindSharedKey:
		return "SharedKey"
	case CredentialsKindSASToken:
		return "SASToken"
	case CredentialsKindTokenCredential:
		return "TokenCredential"
	default:
		return "Anonymous"
	}
}

// StorageCredentials holds the credential material a storage client
// authenticates with.  The resolver passes it through unmodified; it never
// inspects the contents except to construct the SAS variant when parsing a
// URL.
type StorageCredentials struct {
	kind      CredentialsKind
	account   string
	key       string
	sasToken  string
	tokenCred azcore.TokenCredential
}

// AnonymousCredentials is used for publicly readable resources.
var AnonymousCredentials = StorageCredentials{kind: CredentialsKindAnonymous}

// NewSharedKeyCredentials returns credentials backed by a storage account
// shared key.
func NewSharedKeyCredentials(account, key string) StorageCredentials {
	return StorageCredentials{
		kind:    CredentialsKindSharedKey,
		account: account,
		key:     key,
	}
}

// NewSASTokenCredentials returns credentials backed by a shared access
// signature.  The token is the raw query string, with or without a leading
// '?'.
func NewSASTokenCredentials(token string) (StorageCredentials, error) {
	token = strings.TrimPrefix(token, "?")
	if token == "" {
		return StorageCredentials{}, fmt.Errorf("SAS token cannot be empty")
	}

	return StorageCredentials{
		kind:     CredentialsKindSASToken,
		sasToken: token,
	}, nil
}

// NewTokenCredentials returns credentials backed by a Microsoft Entra token
// credential.
func NewTokenCredentials(cred azcore.TokenCredential) StorageCredentials {
	return StorageCredentials{
		kind:      CredentialsKindTokenCredential,
		tokenCred: cred,
	}
}

func (c StorageCredentials) Kind() CredentialsKind {
	return c.kind
}

// SharedKey returns the account name and key for SharedKey credentials.
func (c StorageCredentials) SharedKey() (account, key string, ok bool) {
	return c.account, c.key, c.kind == CredentialsKindSharedKey
}

// SASToken returns the raw SAS query string for SASToken credentials.
func (c StorageCredentials) SASToken() (string, bool) {
	return c.sasToken, c.kind == CredentialsKindSASToken
}

// TokenCredential returns the Entra credential for TokenCredential
// credentials.
func (c StorageCredentials) TokenCredential() (azcore.TokenCredential, bool) {
	return c.tokenCred, c.kind == CredentialsKindTokenCredential
}
