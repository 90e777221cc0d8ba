// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/go-rpush/models"
)

// Identifier names a client backend, e.g. "redis" or "active_record".
// The zero value means no backend has been selected.
type Identifier string

const (
	// Redis selects the redis-backed client.
	Redis Identifier = "redis"
	// ActiveRecord selects the SQL-backed client.
	ActiveRecord Identifier = "active_record"
)

// MessageType is a backend's binding for one delivery protocol.
type MessageType struct {
	// Service is the protocol the type delivers through.
	Service models.Service
	// Key locates the type inside the backend's storage: a key prefix for
	// redis, the type discriminator for SQL.
	Key string
	// New allocates an empty notification of this type.
	New func() models.Notification
}

// MessageTypes bundles the four bindings a backend publishes.
type MessageTypes struct {
	Apns MessageType
	Gcm  MessageType
	Wpns MessageType
	Adm  MessageType
}

// Lookup returns the binding for s.
func (m MessageTypes) Lookup(s models.Service) (MessageType, bool) {
	switch s {
	case models.Apns:
		return m.Apns, m.Apns.New != nil
	case models.Gcm:
		return m.Gcm, m.Gcm.New != nil
	case models.Wpns:
		return m.Wpns, m.Wpns.New != nil
	case models.Adm:
		return m.Adm, m.Adm.New != nil
	}

	return MessageType{}, false
}

// Backend is a loaded client backend.
type Backend struct {
	Name  Identifier
	Types MessageTypes
}

func (b *Backend) validate() error {
	for _, s := range models.Services() {
		if _, ok := b.Types.Lookup(s); !ok {
			return fmt.Errorf("%w: %s has no %s type", ErrIncompleteBackend, b.Name, s)
		}
	}

	return nil
}
