package storage

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"io"
	"os"
	"strings"
	"testing"

	utilerror "github.com/Azure/azure-storage-location/test/util/error"
)

// fakeDiscovery returns a cloudNameDiscovery reading from the given
// environment map and config file contents instead of ambient process state.
// A nil config stands in for a missing ~/.azure/config.
func fakeDiscovery(environment map[string]string, config *string) *cloudNameDiscovery {
	return &cloudNameDiscovery{
		Getenv: func(key string) string {
			return environment[key]
		},
		LookupEnv: func(key string) (string, bool) {
			value, found := environment[key]
			return value, found
		},
		Open: func(name string) (io.ReadCloser, error) {
			if config == nil {
				return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
			}
			return io.NopCloser(strings.NewReader(*config)), nil
		},
	}
}

func strptr(s string) *string { return &s }

func TestCloudNameDiscovery(t *testing.T) {
	for _, tt := range []struct {
		name        string
		environment map[string]string
		config      *string
		want        string
		wantOK      bool
	}{
		{
			name: "env var wins",
			environment: map[string]string{
				"AZURE_CLOUD_NAME": "AzureUSGovernment",
				"HOME":             "/home/test",
			},
			config: strptr("[cloud]\nname = AzureChinaCloud\n"),
			want:   "AzureUSGovernment",
			wantOK: true,
		},
		{
			name:        "no env, no HOME",
			environment: map[string]string{},
		},
		{
			name: "no env, missing file",
			environment: map[string]string{
				"HOME": "/home/test",
			},
		},
		{
			name: "config file",
			environment: map[string]string{
				"HOME": "/home/test",
			},
			config: strptr("[cloud]\nname = AzureChinaCloud\n"),
			want:   "AzureChinaCloud",
			wantOK: true,
		},
		{
			name: "config file with leading section",
			environment: map[string]string{
				"HOME": "/home/test",
			},
			config: strptr("[core]\noutput = table\n\n[cloud]\nname = AzureCloud\n"),
			want:   "AzureCloud",
			wantOK: true,
		},
		{
			name: "empty config file",
			environment: map[string]string{
				"HOME": "/home/test",
			},
			config: strptr(""),
		},
		{
			name: "name not immediately after header",
			environment: map[string]string{
				"HOME": "/home/test",
			},
			config: strptr("[cloud]\nprofile = latest\nname = AzureCloud\n"),
		},
		{
			name: "header at end of file",
			environment: map[string]string{
				"HOME": "/home/test",
			},
			config: strptr("[cloud]"),
		},
		{
			name: "whitespace around header and assignment",
			environment: map[string]string{
				"HOME": "/home/test",
			},
			config: strptr("  [cloud]  \n  name  =  AzureUSGovernment  \n"),
			want:   "AzureUSGovernment",
			wantOK: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			d := fakeDiscovery(tt.environment, tt.config)

			name, ok := d.CloudName()
			if ok != tt.wantOK {
				t.Errorf("got ok %v, wanted %v", ok, tt.wantOK)
			}
			if name != tt.want {
				t.Errorf("got name %q, wanted %q", name, tt.want)
			}
		})
	}
}

func TestAutoDetectURL(t *testing.T) {
	for _, tt := range []struct {
		name        string
		environment map[string]string
		config      *string
		want        string
		wantErr     string
	}{
		{
			name:        "AzureCloud",
			environment: map[string]string{"AZURE_CLOUD_NAME": "AzureCloud"},
			want:        "https://test_account.blob.core.windows.net",
		},
		{
			name:        "AzurePublicCloud",
			environment: map[string]string{"AZURE_CLOUD_NAME": "AzurePublicCloud"},
			want:        "https://test_account.blob.core.windows.net",
		},
		{
			name:        "AzureUSGovernment",
			environment: map[string]string{"AZURE_CLOUD_NAME": "AzureUSGovernment"},
			want:        "https://test_account.blob.core.usgovcloudapi.net",
		},
		{
			name:        "AzureChinaCloud",
			environment: map[string]string{"AZURE_CLOUD_NAME": "AzureChinaCloud"},
			want:        "https://test_account.blob.core.chinacloudapi.cn",
		},
		{
			name:        "unrecognized cloud name",
			environment: map[string]string{"AZURE_CLOUD_NAME": "NotACloud"},
			wantErr:     `auto-detect: cloud name "NotACloud" is unsupported, allowed values are: AzureCloud, AzurePublicCloud, AzureUSGovernment, AzureChinaCloud`,
		},
		{
			name:        "deprecated cloud name",
			environment: map[string]string{"AZURE_CLOUD_NAME": "AzureGermanCloud"},
			wantErr:     `auto-detect: cloud name "AzureGermanCloud" is unsupported, allowed values are: AzureCloud, AzurePublicCloud, AzureUSGovernment, AzureChinaCloud`,
		},
		{
			name:        "nothing to detect",
			environment: map[string]string{},
			wantErr:     "auto-detect could not find a cloud name from the current environment",
		},
		{
			name:        "config file fallback",
			environment: map[string]string{"HOME": "/home/test"},
			config:      strptr("[cloud]\nname = AzureChinaCloud"),
			want:        "https://test_account.blob.core.chinacloudapi.cn",
		},
		{
			name:        "empty config file",
			environment: map[string]string{"HOME": "/home/test"},
			config:      strptr(""),
			wantErr:     "auto-detect could not find a cloud name from the current environment",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			location := NewAutoDetectLocation(nil, "test_account", AnonymousCredentials)
			location.discovery = fakeDiscovery(tt.environment, tt.config)

			u, err := location.URL(ServiceTypeBlob)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			if tt.wantErr != "" {
				return
			}

			if u.String() != tt.want {
				t.Errorf("got %s, wanted %s", u, tt.want)
			}
		})
	}
}

func TestAutoDetectCredentials(t *testing.T) {
	creds, err := NewSASTokenCredentials("?sig=abc")
	if err != nil {
		t.Fatal(err)
	}

	location := NewAutoDetectLocation(nil, "test_account", creds)

	token, ok := location.Credentials().SASToken()
	if !ok || token != "sig=abc" {
		t.Errorf("got %s %q", location.Credentials().Kind(), token)
	}
}
