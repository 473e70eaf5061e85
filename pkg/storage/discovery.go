package storage

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvCloudName is an optional environment variable naming the active cloud.
// When set and non-empty it takes precedence over the az CLI config file.
const EnvCloudName = "AZURE_CLOUD_NAME"

// cloudNameDiscovery finds the name of the cloud the current environment is
// configured against.  Ambient state (environment variables, the filesystem)
// is reached only through the injectable function fields so that tests can
// substitute deterministic fakes instead of mutating process-wide state.
type cloudNameDiscovery struct {
	log *logrus.Entry

	Getenv    func(key string) string
	LookupEnv func(key string) (string, bool)
	Open      func(name string) (io.ReadCloser, error)
}

func newCloudNameDiscovery(log *logrus.Entry) *cloudNameDiscovery {
	return &cloudNameDiscovery{
		log: log,

		Getenv:    os.Getenv,
		LookupEnv: os.LookupEnv,
		Open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

// CloudName returns the cloud name from AZURE_CLOUD_NAME, falling back to
// the [cloud] section of $HOME/.azure/config.  ok is false when neither
// source yields a name; absence is not an error.
func (d *cloudNameDiscovery) CloudName() (name string, ok bool) {
	if name := d.Getenv(EnvCloudName); name != "" {
		return name, true
	}

	home, found := d.LookupEnv("HOME")
	if !found {
		return "", false
	}

	return d.cloudNameFromConfig(filepath.Join(home, ".azure", "config"))
}

// cloudNameFromConfig scans the az CLI config file for a `[cloud]` section
// header and reads `name = <value>` from the immediately following line.
// The first matching section wins.  A missing or unreadable file is treated
// as no match.
func (d *cloudNameDiscovery) cloudNameFromConfig(path string) (string, bool) {
	f, err := d.Open(path)
	if err != nil {
		if d.log != nil && !os.IsNotExist(err) {
			d.log.Debugf("could not read %s: %v", path, err)
		}
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "[cloud]" {
			continue
		}

		if !scanner.Scan() {
			break
		}

		// the name must be on the line immediately following the header
		key, value, found := strings.Cut(scanner.Text(), "=")
		if found && strings.TrimSpace(key) == "name" {
			return strings.TrimSpace(value), true
		}
	}

	return "", false
}
