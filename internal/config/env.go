// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-rpush/internal/client"
)

// envPrefix is prepended to every variable name below.
const envPrefix = "RPUSH_"

// envOptions mirrors [Options] with the environment variable names used by
// caarlos0/env. Unset variables leave their pointer nil.
type envOptions struct {
	// Root is the directory relative paths are resolved against.
	// Env: RPUSH_ROOT
	Root string `env:"ROOT"`

	// ConfigFile is the optional config file read after env and flags.
	// Env: RPUSH_CONFIG
	ConfigFile string `env:"CONFIG"`

	PushPoll   *int    `env:"PUSH_POLL"`
	BatchSize  *int    `env:"BATCH_SIZE"`
	Client     *string `env:"CLIENT"`
	LogFile    *string `env:"LOG_FILE"`
	PidFile    *string `env:"PID_FILE"`
	LogLevel   *string `env:"LOG_LEVEL"`
	Foreground *bool   `env:"FOREGROUND"`

	FeedbackFrequency *int  `env:"APNS_FEEDBACK_FREQUENCY"`
	FeedbackEnabled   *bool `env:"APNS_FEEDBACK_ENABLED"`

	LogDir       *string `env:"LOG_DIR"`
	FeedbackPoll *int    `env:"FEEDBACK_POLL"`
}

// parseEnv reads the RPUSH_* environment variables into a [source].
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type) or the log level is unknown.
func parseEnv() (*source, error) {
	var e envOptions
	if err := env.ParseWithOptions(&e, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	opts := &Options{
		PushPoll:     e.PushPoll,
		BatchSize:    e.BatchSize,
		LogFile:      e.LogFile,
		PidFile:      e.PidFile,
		Foreground:   e.Foreground,
		LogDir:       e.LogDir,
		FeedbackPoll: e.FeedbackPoll,
		Apns: ApnsOptions{FeedbackReceiver: FeedbackReceiverOptions{
			Frequency: e.FeedbackFrequency,
			Enabled:   e.FeedbackEnabled,
		}},
	}

	if e.Client != nil {
		id := client.Identifier(*e.Client)
		opts.Client = &id
	}

	if e.LogLevel != nil {
		lvl, err := parseLogLevel(*e.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("error getting env configs: %w", err)
		}
		opts.LogLevel = &lvl
	}

	return &source{opts: opts, root: e.Root, file: e.ConfigFile}, nil
}
