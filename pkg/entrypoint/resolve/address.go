package resolve

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net"
	"strconv"
)

func splitEmulatorAddress(hostport string) (string, uint16, error) {
	address, portStr, err := net.SplitHostPort(hostport)
	if err != nil {
		return "", 0, fmt.Errorf("invalid emulator address %q: %w", hostport, err)
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, fmt.Errorf("invalid emulator port %q: %w", portStr, err)
	}

	return address, uint16(port), nil
}
