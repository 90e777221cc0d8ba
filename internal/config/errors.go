package config

import "errors"

var (
	// ErrConfiguration is returned when the configuration cannot be used as
	// it stands, e.g. client initialisation without a selected client.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidLogLevel is returned when a log level name cannot be parsed.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidConfigFile is returned when the config file holds a value of
	// the wrong type.
	ErrInvalidConfigFile = errors.New("invalid config file")
)
