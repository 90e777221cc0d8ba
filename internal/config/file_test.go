package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/internal/client/redis"
)

func TestParseFile_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "rpush.yml",
			content: `
push_poll: 3
client: redis
log_level: info
apns:
  feedback_receiver:
    frequency: 120
`,
		},
		{
			name: "json",
			file: "rpush.json",
			content: `{
  "push_poll": 3,
  "client": "redis",
  "log_level": "info",
  "apns": {"feedback_receiver": {"frequency": 120}}
}`,
		},
		{
			name: "toml",
			file: "rpush.toml",
			content: `
push_poll = 3
client = "redis"
log_level = "info"

[apns.feedback_receiver]
frequency = 120
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.file, tt.content)

			opts, err := parseFile(path)

			require.NoError(t, err)
			assert.Equal(t, ptr(3), opts.PushPoll)
			assert.Equal(t, ptr(client.Redis), opts.Client)
			assert.Equal(t, ptr(zerolog.InfoLevel), opts.LogLevel)
			assert.Equal(t, ptr(120), opts.Apns.FeedbackReceiver.Frequency)
			assert.Nil(t, opts.Apns.FeedbackReceiver.Enabled)
			assert.Nil(t, opts.BatchSize)
			assert.Nil(t, opts.RedisOptions)
		})
	}
}

func TestParseFile_PluginAndRedisOptions(t *testing.T) {
	path := writeConfigFile(t, "rpush.yaml", `
embedded: true
plugin:
  slack:
    channel: "#push"
redis_options:
  url: redis://cache:6379/1
  password: secret
  db: 1
`)

	opts, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, ptr(true), opts.Embedded)
	require.Contains(t, opts.Plugin, "slack")
	require.NotNil(t, opts.RedisOptions)
	assert.Equal(t, redis.Options{URL: "redis://cache:6379/1", Password: "secret", DB: 1}, *opts.RedisOptions)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseFile("/does/not/exist.yml")
		require.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		path := writeConfigFile(t, "rpush.yml", "batch_size: plenty\n")

		_, err := parseFile(path)
		require.ErrorIs(t, err, ErrInvalidConfigFile)
		assert.Contains(t, err.Error(), "batch_size")
	})

	t.Run("bad log level", func(t *testing.T) {
		path := writeConfigFile(t, "rpush.yml", "log_level: loud\n")

		_, err := parseFile(path)
		require.ErrorIs(t, err, ErrInvalidConfigFile)
		assert.ErrorIs(t, err, ErrInvalidLogLevel)
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: " Info ", want: zerolog.InfoLevel},
		{in: "WARN", want: zerolog.WarnLevel},
		{in: "fatal", want: zerolog.FatalLevel},
		{in: "", wantErr: true},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lvl, err := parseLogLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLogLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, lvl)
		})
	}
}
