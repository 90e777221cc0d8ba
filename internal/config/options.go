// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/internal/client/redis"
	"github.com/MKhiriev/go-rpush/internal/logger"
)

// Options is a configuration without defaults: every field is optional and
// nil means "not given". It is what configuration sources produce and what
// [Configuration.Update] consumes.
type Options struct {
	PushPoll   *int
	Embedded   *bool
	PidFile    *string
	BatchSize  *int
	Push       *bool
	Client     *client.Identifier
	Logger     *logger.Logger
	LogFile    *string
	Foreground *bool
	LogLevel   *zerolog.Level
	Plugin     map[string]any
	Apns       ApnsOptions

	// Deprecated settings.
	LogDir       *string
	FeedbackPoll *int

	// RedisOptions is applied after Client, so it takes effect when the
	// same Options selects the redis backend.
	RedisOptions *redis.Options
}

// ApnsOptions is the optional form of [ApnsConfiguration].
type ApnsOptions struct {
	FeedbackReceiver FeedbackReceiverOptions
}

// FeedbackReceiverOptions is the optional form of
// [ApnsFeedbackReceiverConfiguration].
type FeedbackReceiverOptions struct {
	Frequency *int
	Enabled   *bool
}

// Update copies every non-nil field of other into c through the matching
// setter. Nil fields leave c untouched. The first setter error stops the
// update; fields applied before it stay applied.
func (c *Configuration) Update(other *Options) error {
	if other == nil {
		return nil
	}

	if other.PushPoll != nil {
		c.PushPoll = *other.PushPoll
	}
	if other.Embedded != nil {
		c.Embedded = *other.Embedded
	}
	if other.PidFile != nil {
		c.SetPidFile(*other.PidFile)
	}
	if other.BatchSize != nil {
		c.BatchSize = *other.BatchSize
	}
	if other.Push != nil {
		c.Push = *other.Push
	}
	if other.Client != nil {
		if err := c.SetClient(*other.Client); err != nil {
			return err
		}
	}
	if other.Logger != nil {
		c.Logger = other.Logger
	}
	if other.LogFile != nil {
		c.SetLogFile(*other.LogFile)
	}
	if other.Foreground != nil {
		c.Foreground = *other.Foreground
	}
	if other.LogLevel != nil {
		c.LogLevel = *other.LogLevel
	}
	if other.Plugin != nil {
		c.Plugin = other.Plugin
	}
	c.Apns.update(other.Apns)
	if other.LogDir != nil {
		c.SetLogDir(*other.LogDir)
	}
	if other.FeedbackPoll != nil {
		c.SetFeedbackPoll(*other.FeedbackPoll)
	}
	if other.RedisOptions != nil {
		c.SetRedisOptions(*other.RedisOptions)
	}

	return nil
}
