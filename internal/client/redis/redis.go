// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package redis implements the redis client backend.
//
// The backend keeps its connection settings in a process-wide option store
// ([Shared]) that the configuration writes to when the operator assigns
// redis options while the redis client is selected.
package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/models"
)

// keyPrefix prefixes every key written by the backend.
const keyPrefix = "rpush:notifications:"

// Options holds the redis connection settings.
type Options struct {
	// URL is a redis:// or rediss:// URL. When set it takes precedence over
	// Addr, Password and DB.
	URL      string `json:"url" mapstructure:"url"`
	Addr     string `json:"addr" mapstructure:"addr"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
}

// ClientOptions converts o into go-redis options.
func (o Options) ClientOptions() (*redis.Options, error) {
	if o.URL != "" {
		opts, err := redis.ParseURL(o.URL)
		if err != nil {
			return nil, fmt.Errorf("error parsing redis url: %w", err)
		}
		return opts, nil
	}

	addr := o.Addr
	if addr == "" {
		addr = "localhost:6379"
	}

	return &redis.Options{
		Addr:        addr,
		Password:    o.Password,
		DB:          o.DB,
		DialTimeout: 5 * time.Second,
	}, nil
}

// Store is a mutex-guarded holder of [Options].
type Store struct {
	mu   sync.RWMutex
	opts Options
}

// Shared is the option store read by every redis backend in the process.
var Shared = &Store{}

// Set replaces the stored options.
func (s *Store) Set(opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opts = opts
}

// Get returns the stored options.
func (s *Store) Get() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.opts
}

// NewClient connects with the stored options and verifies the connection
// with PING.
func (s *Store) NewClient(ctx context.Context) (*redis.Client, error) {
	opts, err := s.Get().ClientOptions()
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

// New is the [client.Factory] for the redis backend.
func New() (*client.Backend, error) {
	return &client.Backend{
		Name: client.Redis,
		Types: client.MessageTypes{
			Apns: messageType(models.Apns, func() models.Notification { return &models.ApnsNotification{} }),
			Gcm:  messageType(models.Gcm, func() models.Notification { return &models.GcmNotification{} }),
			Wpns: messageType(models.Wpns, func() models.Notification { return &models.WpnsNotification{} }),
			Adm:  messageType(models.Adm, func() models.Notification { return &models.AdmNotification{} }),
		},
	}, nil
}

func messageType(s models.Service, n func() models.Notification) client.MessageType {
	return client.MessageType{
		Service: s,
		Key:     keyPrefix + string(s),
		New:     n,
	}
}

// PendingKey returns the key of the sorted set (scored by enqueue time)
// holding undelivered notifications of mt.
func PendingKey(mt client.MessageType) string {
	return mt.Key + ":pending"
}

// PendingCount returns the number of undelivered notifications of mt.
func PendingCount(ctx context.Context, rdb redis.Cmdable, mt client.MessageType) (int64, error) {
	n, err := rdb.ZCard(ctx, PendingKey(mt)).Result()
	if err != nil {
		return 0, fmt.Errorf("error counting pending %s notifications: %w", mt.Service, err)
	}
	return n, nil
}
