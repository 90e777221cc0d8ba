// Package backends is the static table of client backends shipped with the
// daemon.
package backends

import (
	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/internal/client/activerecord"
	"github.com/MKhiriev/go-rpush/internal/client/redis"
)

var factories = map[client.Identifier]client.Factory{
	client.Redis:        redis.New,
	client.ActiveRecord: activerecord.New,
}

// Default returns a fresh registry holding every built-in backend.
func Default() *client.Registry {
	return client.NewRegistry(factories)
}

// Identifiers enumerates the built-in backends.
func Identifiers() []client.Identifier {
	return Default().Identifiers()
}
