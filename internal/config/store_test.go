package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rpush/internal/client"
)

func resetStore(t *testing.T) {
	t.Helper()
	Set(nil)
	t.Cleanup(func() { Set(nil) })
}

func TestGet_LazySingleton(t *testing.T) {
	resetStore(t)

	first := Get()
	second := Get()

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, DefaultPushPoll, first.PushPoll)
}

func TestSet_ReplacesSingleton(t *testing.T) {
	resetStore(t)
	custom := New()
	custom.BatchSize = 7

	Set(custom)

	assert.Same(t, custom, Get())

	Set(nil)
	assert.NotSame(t, custom, Get())
}

func TestConfigure(t *testing.T) {
	resetStore(t)
	r := &countingResolver{backends: map[client.Identifier]*client.Backend{
		"memory": testBackend("memory"),
	}}
	cfg := New()
	cfg.resolver = r
	Set(cfg)

	err := Configure(func(c *Configuration) error {
		c.PushPoll = 9
		c.client = "memory"
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 9, Get().PushPoll)
	assert.True(t, Get().ClientInitialized())
	assert.Equal(t, 1, r.calls)
}

func TestConfigure_NilFunc(t *testing.T) {
	resetStore(t)

	require.NoError(t, Configure(nil))
	assert.False(t, Get().ClientInitialized())
}

func TestConfigure_WithoutClient(t *testing.T) {
	resetStore(t)

	err := Configure(func(c *Configuration) error {
		c.BatchSize = 10
		return nil
	})

	require.ErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, 10, Get().BatchSize)
}

func TestConfigure_BlockError(t *testing.T) {
	resetStore(t)
	r := &countingResolver{}
	cfg := New()
	cfg.resolver = r
	Set(cfg)

	err := Configure(func(*Configuration) error { return assert.AnError })

	require.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, r.calls)
}
