package client

import "errors"

var (
	// ErrUnknownBackend is returned by [Registry.Resolve] when no factory is
	// registered for the requested identifier.
	ErrUnknownBackend = errors.New("unknown client backend")

	// ErrIncompleteBackend is returned when a factory produces a backend
	// missing one of the four message types.
	ErrIncompleteBackend = errors.New("client backend does not supply every message type")
)
