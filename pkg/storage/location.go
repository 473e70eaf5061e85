package storage

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-storage-location/pkg/util/azureclient"
)

// EmulatorAccount is the well-known account used by Azurite and the legacy
// Azure Storage Emulator.
// https://docs.microsoft.com/azure/storage/common/storage-use-azurite#well-known-storage-account-and-key
const EmulatorAccount = "devstoreaccount1"

// EmulatorAccountKey is the well-known account key used by Azurite and the
// legacy Azure Storage Emulator.  It is publicly documented and not a secret.
const EmulatorAccountKey = "Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw=="

// EmulatorCredentials are the fixed credentials for the storage emulator.
var EmulatorCredentials = NewSharedKeyCredentials(EmulatorAccount, EmulatorAccountKey)

// CloudLocation identifies the cloud (or emulator) a storage account lives
// in.  Implementations are immutable once constructed: URL is a pure
// function of the location, the service type and, for the auto-detecting
// location only, the ambient environment at call time.
type CloudLocation interface {
	// URL returns the base URL for the given service type.
	URL(ServiceType) (*url.URL, error)

	// Credentials returns the credentials to authenticate against the
	// location with.
	Credentials() StorageCredentials
}

// SovereignLocation addresses an account in one of the known cloud
// environments (public, China, US Government).
type SovereignLocation struct {
	environment azureclient.StorageEnvironment
	account     string
	credentials StorageCredentials
}

// NewPublicLocation returns a CloudLocation for an account in the Azure
// public cloud.
func NewPublicLocation(account string, credentials StorageCredentials) *SovereignLocation {
	return &SovereignLocation{
		environment: azureclient.PublicCloud,
		account:     account,
		credentials: credentials,
	}
}

// NewChinaLocation returns a CloudLocation for an account in the Azure China
// cloud.
func NewChinaLocation(account string, credentials StorageCredentials) *SovereignLocation {
	return &SovereignLocation{
		environment: azureclient.ChinaCloud,
		account:     account,
		credentials: credentials,
	}
}

// NewUSGovLocation returns a CloudLocation for an account in the Azure US
// Government cloud.
func NewUSGovLocation(account string, credentials StorageCredentials) *SovereignLocation {
	return &SovereignLocation{
		environment: azureclient.USGovernmentCloud,
		account:     account,
		credentials: credentials,
	}
}

// Environment returns the cloud environment the location belongs to.
func (l *SovereignLocation) Environment() azureclient.StorageEnvironment {
	return l.environment
}

func (l *SovereignLocation) Account() string {
	return l.account
}

func (l *SovereignLocation) URL(serviceType ServiceType) (*url.URL, error) {
	return url.Parse(fmt.Sprintf("https://%s.%s.%s", l.account, serviceType.Subdomain(), l.environment.StorageEndpointSuffix))
}

func (l *SovereignLocation) Credentials() StorageCredentials {
	return l.credentials
}

// EmulatorLocation addresses a local storage emulator under the well-known
// emulator account.
type EmulatorLocation struct {
	address string
	port    uint16
}

// NewEmulatorLocation returns a CloudLocation for a storage emulator
// listening at the given address and port.
func NewEmulatorLocation(address string, port uint16) *EmulatorLocation {
	return &EmulatorLocation{
		address: address,
		port:    port,
	}
}

func (l *EmulatorLocation) Address() string {
	return l.address
}

func (l *EmulatorLocation) Port() uint16 {
	return l.port
}

func (l *EmulatorLocation) URL(ServiceType) (*url.URL, error) {
	return url.Parse(fmt.Sprintf("http://%s:%d/%s", l.address, l.port, EmulatorAccount))
}

func (l *EmulatorLocation) Credentials() StorageCredentials {
	return EmulatorCredentials
}

// CustomLocation addresses an account through a caller-supplied literal base
// URL.
type CustomLocation struct {
	uri         string
	credentials StorageCredentials
}

// NewCustomLocation returns a CloudLocation resolving to the given base URL
// verbatim.
func NewCustomLocation(uri string, credentials StorageCredentials) *CustomLocation {
	return &CustomLocation{
		uri:         uri,
		credentials: credentials,
	}
}

func (l *CustomLocation) URL(ServiceType) (*url.URL, error) {
	return url.Parse(l.uri)
}

func (l *CustomLocation) Credentials() StorageCredentials {
	return l.credentials
}

// AutoDetectLocation defers cloud selection to the ambient environment: the
// AZURE_CLOUD_NAME environment variable first, then the [cloud] section of
// $HOME/.azure/config.  URL may therefore return different results across
// calls if the environment changes between them.
type AutoDetectLocation struct {
	account     string
	credentials StorageCredentials

	discovery *cloudNameDiscovery
}

// NewAutoDetectLocation returns a CloudLocation which detects the cloud on
// each URL call.  Cloud names can be listed with `az cloud list --output
// table`.
func NewAutoDetectLocation(log *logrus.Entry, account string, credentials StorageCredentials) *AutoDetectLocation {
	return &AutoDetectLocation{
		account:     account,
		credentials: credentials,

		discovery: newCloudNameDiscovery(log),
	}
}

func (l *AutoDetectLocation) URL(serviceType ServiceType) (*url.URL, error) {
	name, ok := l.discovery.CloudName()
	if !ok {
		return nil, fmt.Errorf("auto-detect could not find a cloud name from the current environment")
	}

	environment, err := azureclient.EnvironmentFromName(name)
	if err != nil {
		return nil, fmt.Errorf("auto-detect: %w", err)
	}

	resolved := SovereignLocation{
		environment: environment,
		account:     l.account,
		credentials: l.credentials,
	}

	return resolved.URL(serviceType)
}

func (l *AutoDetectLocation) Credentials() StorageCredentials {
	return l.credentials
}

// ParseLocationURL reconstructs a CloudLocation from an absolute storage
// URL carrying a SAS token in its query string.  It recognizes the sovereign
// cloud domains and the emulator URL shape; it never yields a
// CustomLocation.
func ParseLocationURL(u *url.URL) (CloudLocation, error) {
	if u.RawQuery == "" {
		return nil, fmt.Errorf("unable to find the SAS token in URL %q", u)
	}

	credentials, err := NewSASTokenCredentials(u.RawQuery)
	if err != nil {
		return nil, err
	}

	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("unable to find the target host in URL %q", u)
	}

	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return nil, fmt.Errorf("URL %q refers to a domain that is not a Public, China or USGov domain: %s", u, host)
	}

	// labels[1] is expected to be the service subdomain (e.g. "blob") but is
	// not validated against any particular service type.
	account := labels[0]
	suffix := strings.Join(labels[2:], ".")

	for _, environment := range []azureclient.StorageEnvironment{
		azureclient.PublicCloud,
		azureclient.ChinaCloud,
		azureclient.USGovernmentCloud,
	} {
		if suffix == environment.StorageEndpointSuffix {
			return &SovereignLocation{
				environment: environment,
				account:     account,
				credentials: credentials,
			}, nil
		}
	}

	if strings.HasPrefix(strings.TrimLeft(u.Path, "/"), EmulatorAccount) && u.Port() != "" {
		ip := net.ParseIP(host)
		if ip == nil || ip.To4() == nil {
			return nil, fmt.Errorf("unsupported emulator URL, expected ipv4: %s", host)
		}

		port, err := strconv.ParseUint(u.Port(), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("unsupported emulator URL port %q: %w", u.Port(), err)
		}

		return NewEmulatorLocation(ip.String(), uint16(port)), nil
	}

	return nil, fmt.Errorf("URL %q refers to a domain that is not an Emulator, Public, China or USGov domain: %s", u, host)
}
