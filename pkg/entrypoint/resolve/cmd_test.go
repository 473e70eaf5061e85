package resolve

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/Azure/azure-storage-location/pkg/storage"
	utilerror "github.com/Azure/azure-storage-location/test/util/error"
)

func TestLocationFromConfig(t *testing.T) {
	for _, tt := range []struct {
		name    string
		cfg     Config
		want    string
		wantErr string
	}{
		{
			name:    "no account",
			cfg:     Config{},
			wantErr: "--account is required",
		},
		{
			name: "default public",
			cfg:  Config{Account: "testaccount"},
			want: "https://testaccount.blob.core.windows.net",
		},
		{
			name: "explicit cloud",
			cfg:  Config{Account: "testaccount", Cloud: "AzureChinaCloud"},
			want: "https://testaccount.blob.core.chinacloudapi.cn",
		},
		{
			name: "explicit cloud alias",
			cfg:  Config{Account: "testaccount", Cloud: "AzurePublicCloud"},
			want: "https://testaccount.blob.core.windows.net",
		},
		{
			name:    "unknown cloud",
			cfg:     Config{Account: "testaccount", Cloud: "NotACloud"},
			wantErr: `cloud name "NotACloud" is unsupported, allowed values are: AzureCloud, AzurePublicCloud, AzureUSGovernment, AzureChinaCloud`,
		},
		{
			name: "emulator",
			cfg:  Config{Emulator: "127.0.0.1:10000"},
			want: "http://127.0.0.1:10000/devstoreaccount1",
		},
		{
			name:    "bad emulator address",
			cfg:     Config{Emulator: "127.0.0.1"},
			wantErr: `invalid emulator address "127.0.0.1": address 127.0.0.1: missing port in address`,
		},
		{
			name: "custom",
			cfg:  Config{Custom: "http://localhost:9000/myaccount", SASToken: "sig=abc"},
			want: "http://localhost:9000/myaccount",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			location, err := locationFromConfig(nil, &tt.cfg)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			if tt.wantErr != "" {
				return
			}

			u, err := location.URL(storage.ServiceTypeBlob)
			if err != nil {
				t.Fatal(err)
			}

			for _, diff := range deep.Equal(u.String(), tt.want) {
				t.Error(diff)
			}
		})
	}
}
