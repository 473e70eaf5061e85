package resolve

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-storage-location/pkg/entrypoint/config"
	"github.com/Azure/azure-storage-location/pkg/storage"
	"github.com/Azure/azure-storage-location/pkg/util/azureclient"
	utillog "github.com/Azure/azure-storage-location/pkg/util/log"
)

type Config struct {
	config.Common

	Account  string
	Cloud    string
	Auto     bool
	Service  string
	Emulator string
	Custom   string
	SASToken string
}

// NewCommand returns the cobra command for "resolve".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:  "resolve",
		Long: "Resolve the base URL for a storage account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfig(cmd)
			if err != nil {
				return err
			}

			log := utillog.GetLogger()
			if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
				log.Logger.SetLevel(level)
			}

			return run(log, cfg)
		},
	}

	cc.Flags().String("account", "", "storage account name")
	cc.Flags().String("cloud", "", fmt.Sprintf("cloud name (%s, %s, %s or %s)", azureclient.CloudNamePublic, azureclient.CloudNamePublicAlias, azureclient.CloudNameUSGovernment, azureclient.CloudNameChina))
	cc.Flags().Bool("auto", false, "auto-detect the cloud from AZURE_CLOUD_NAME or $HOME/.azure/config")
	cc.Flags().String("service", "blob", "service type (blob, queue, table or file)")
	cc.Flags().String("emulator", "", "emulator address:port")
	cc.Flags().String("custom", "", "custom base URL")
	cc.Flags().String("sas-token", "", "SAS token to authenticate with")

	return cc
}

func getConfig(cmd *cobra.Command) (*Config, error) {
	var c Config
	var err error

	c.Common, err = config.CommonConfigFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	for _, flag := range []struct {
		name string
		into *string
	}{
		{"account", &c.Account},
		{"cloud", &c.Cloud},
		{"service", &c.Service},
		{"emulator", &c.Emulator},
		{"custom", &c.Custom},
		{"sas-token", &c.SASToken},
	} {
		*flag.into, err = cmd.Flags().GetString(flag.name)
		if err != nil {
			return nil, err
		}
	}

	c.Auto, err = cmd.Flags().GetBool("auto")
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func run(log *logrus.Entry, cfg *Config) error {
	serviceType, ok := storage.ServiceTypeFromName(cfg.Service)
	if !ok {
		return fmt.Errorf("unknown service type %q", cfg.Service)
	}

	location, err := locationFromConfig(log, cfg)
	if err != nil {
		return err
	}

	u, err := location.URL(serviceType)
	if err != nil {
		return err
	}

	log.Debugf("resolved %s credentials", location.Credentials().Kind())
	fmt.Println(u.String())

	return nil
}

func locationFromConfig(log *logrus.Entry, cfg *Config) (storage.CloudLocation, error) {
	credentials := storage.AnonymousCredentials
	if cfg.SASToken != "" {
		var err error
		credentials, err = storage.NewSASTokenCredentials(cfg.SASToken)
		if err != nil {
			return nil, err
		}
	}

	switch {
	case cfg.Emulator != "":
		address, port, err := splitEmulatorAddress(cfg.Emulator)
		if err != nil {
			return nil, err
		}
		return storage.NewEmulatorLocation(address, port), nil

	case cfg.Custom != "":
		return storage.NewCustomLocation(cfg.Custom, credentials), nil

	case cfg.Auto:
		if cfg.Account == "" {
			return nil, fmt.Errorf("--account is required")
		}
		return storage.NewAutoDetectLocation(log, cfg.Account, credentials), nil

	case cfg.Cloud != "":
		if cfg.Account == "" {
			return nil, fmt.Errorf("--account is required")
		}
		environment, err := azureclient.EnvironmentFromName(cfg.Cloud)
		if err != nil {
			return nil, err
		}
		switch environment.ActualCloudName {
		case azureclient.CloudNameChina:
			return storage.NewChinaLocation(cfg.Account, credentials), nil
		case azureclient.CloudNameUSGovernment:
			return storage.NewUSGovLocation(cfg.Account, credentials), nil
		default:
			return storage.NewPublicLocation(cfg.Account, credentials), nil
		}

	default:
		if cfg.Account == "" {
			return nil, fmt.Errorf("--account is required")
		}
		return storage.NewPublicLocation(cfg.Account, credentials), nil
	}
}
