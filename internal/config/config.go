// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/internal/client/backends"
	"github.com/MKhiriev/go-rpush/internal/client/redis"
	"github.com/MKhiriev/go-rpush/internal/logger"
)

// Defaults applied by [New].
const (
	DefaultPushPoll  = 2
	DefaultBatchSize = 100
	DefaultLogFile   = "log/rpush.log"
	DefaultPidFile   = "tmp/rpush.pid"
	DefaultLogLevel  = zerolog.DebugLevel
)

// Configuration holds every setting of the push daemon.
//
// Plain settings are exported fields. Settings with side effects (path
// normalisation, backend selection, deprecated aliases) are reached through
// setter methods so the side effect always runs.
type Configuration struct {
	// PushPoll is the interval, in seconds, between checks for new
	// notifications.
	PushPoll int `json:"push_poll"`

	// BatchSize is the maximum number of notifications loaded per check.
	BatchSize int `json:"batch_size"`

	// Logger, when set, is used instead of a logger built from LogFile,
	// LogLevel and Foreground.
	Logger *logger.Logger `json:"-"`

	// LogLevel is the minimum severity written to the log.
	LogLevel zerolog.Level `json:"log_level"`

	// Plugin holds free-form plugin settings keyed by plugin name.
	Plugin map[string]any `json:"plugin"`

	// Foreground keeps the daemon attached to the terminal and mirrors the
	// log to stdout.
	Foreground bool `json:"foreground"`

	// Embedded is set when the daemon runs inside another process.
	Embedded bool `json:"embedded"`

	// Push is set while a one-shot push run is in progress.
	Push bool `json:"push"`

	// Apns holds APNs-specific settings.
	Apns ApnsConfiguration `json:"apns"`

	client  client.Identifier
	logFile string
	pidFile string
	logDir  string

	mu                sync.Mutex
	resolver          client.Resolver
	backend           *client.Backend
	clientInitialized bool
}

// New returns a configuration with every setting at its default. Each call
// returns an independent value; use [Get] for the process-wide instance.
func New() *Configuration {
	c := &Configuration{
		PushPoll:   DefaultPushPoll,
		BatchSize:  DefaultBatchSize,
		LogLevel:   DefaultLogLevel,
		Plugin:     make(map[string]any),
		Foreground: false,
		Apns:       NewApnsConfiguration(),
		Embedded:   false,
		Push:       false,
		resolver:   backends.Default(),
	}

	c.SetLogFile(DefaultLogFile)
	c.SetPidFile(DefaultPidFile)

	return c
}

// LogFile returns the absolute path of the log file.
func (c *Configuration) LogFile() string {
	return c.logFile
}

// SetLogFile stores path, resolving a relative path against [Root].
func (c *Configuration) SetLogFile(path string) {
	c.logFile = absolutize(path)
}

// PidFile returns the absolute path of the pid file.
func (c *Configuration) PidFile() string {
	return c.pidFile
}

// SetPidFile stores path, resolving a relative path against [Root].
func (c *Configuration) SetPidFile(path string) {
	c.pidFile = absolutize(path)
}

func absolutize(path string) string {
	if path != "" && !filepath.IsAbs(path) {
		return filepath.Join(Root(), path)
	}
	return path
}

// LogDir returns the value stored through the deprecated [Configuration.SetLogDir].
func (c *Configuration) LogDir() string {
	return c.logDir
}

// SetLogDir is deprecated; use [Configuration.SetLogFile].
func (c *Configuration) SetLogDir(dir string) {
	deprecations.Forward(attrLogDir, func() {
		c.logDir = dir
	})
}

// SetFeedbackPoll is deprecated; set Apns.FeedbackReceiver.Frequency.
func (c *Configuration) SetFeedbackPoll(seconds int) {
	deprecations.Forward(attrFeedbackPoll, func() {
		c.Apns.FeedbackReceiver.Frequency = seconds
	})
}

// Client returns the selected backend identifier, empty when unset.
func (c *Configuration) Client() client.Identifier {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.client
}

// SetClient selects a backend and initialises it. Errors from
// [Configuration.InitializeClient] are returned unchanged.
func (c *Configuration) SetClient(id client.Identifier) error {
	c.mu.Lock()
	c.client = id
	c.mu.Unlock()

	return c.InitializeClient()
}

// SetRedisOptions forwards opts to the redis backend's shared option store.
// It does nothing unless the redis client is selected.
func (c *Configuration) SetRedisOptions(opts redis.Options) {
	if c.Client() != client.Redis {
		return
	}
	redis.Shared.Set(opts)
}

// InitializeClient resolves the selected backend and binds its message
// types to this configuration. Only the first successful call does any
// work; later calls return nil. A failed call leaves the configuration
// uninitialised so it can be retried.
func (c *Configuration) InitializeClient() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.clientInitialized {
		return nil
	}

	if c.client == "" {
		return fmt.Errorf("%w: client is not set", ErrConfiguration)
	}

	backend, err := c.resolver.Resolve(c.client)
	if err != nil {
		return err
	}

	if c.backend == nil {
		c.backend = backend
	}
	c.clientInitialized = true

	return nil
}

// ClientInitialized reports whether a backend has been bound.
func (c *Configuration) ClientInitialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.clientInitialized
}

// Backend returns the bound backend, or nil before initialisation.
func (c *Configuration) Backend() *client.Backend {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.backend
}

// MessageTypes returns the message types of the bound backend.
func (c *Configuration) MessageTypes() (client.MessageTypes, bool) {
	b := c.Backend()
	if b == nil {
		return client.MessageTypes{}, false
	}
	return b.Types, true
}

// ResolveLogger returns the injected Logger, or builds one writing to
// LogFile at LogLevel (mirrored to stdout in the foreground).
func (c *Configuration) ResolveLogger(role string) (*logger.Logger, error) {
	if c.Logger != nil {
		return c.Logger, nil
	}

	return logger.New(logger.Options{
		Role:       role,
		Level:      c.LogLevel,
		File:       c.logFile,
		Foreground: c.Foreground,
	})
}
