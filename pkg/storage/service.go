package storage

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ServiceType identifies one of the storage data-plane services.  Each
// service is reachable under its own DNS subdomain of the storage account.
type ServiceType int

const (
	ServiceTypeBlob ServiceType = iota
	ServiceTypeQueue
	ServiceTypeTable
	ServiceTypeFile
)

// Subdomain returns the DNS label under which the service is exposed, e.g.
// "blob" in account.blob.core.windows.net.
func (t ServiceType) Subdomain() string {
	switch t {
	case ServiceTypeQueue:
		return "queue"
	case ServiceTypeTable:
		return "table"
	case ServiceTypeFile:
		return "file"
	default:
		return "blob"
	}
}

func (t ServiceType) String() string {
	return t.Subdomain()
}

// ServiceTypeFromName maps a service name ("blob", "queue", "table", "file")
// to its ServiceType.
func ServiceTypeFromName(name string) (ServiceType, bool) {
	switch name {
	case "blob":
		return ServiceTypeBlob, true
	case "queue":
		return ServiceTypeQueue, true
	case "table":
		return ServiceTypeTable, true
	case "file":
		return ServiceTypeFile, true
	}
	return 0, false
}
