package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/internal/client/redis"
)

// parseFile reads a config file with viper. The format follows the file
// extension (json, yaml, yml, toml). Keys are the snake_case setting names:
//
//	push_poll: 5
//	client: redis
//	apns:
//	  feedback_receiver:
//	    frequency: 30
//	redis_options:
//	  url: redis://localhost:6379/0
func parseFile(path string) (*Options, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	f := fileReader{v: v}
	opts := &Options{
		PushPoll:   f.intAt("push_poll"),
		BatchSize:  f.intAt("batch_size"),
		PidFile:    f.stringAt("pid_file"),
		LogFile:    f.stringAt("log_file"),
		Foreground: f.boolAt("foreground"),
		Embedded:   f.boolAt("embedded"),
		Push:       f.boolAt("push"),
		Apns: ApnsOptions{FeedbackReceiver: FeedbackReceiverOptions{
			Frequency: f.intAt("apns.feedback_receiver.frequency"),
			Enabled:   f.boolAt("apns.feedback_receiver.enabled"),
		}},
		LogDir:       f.stringAt("log_dir"),
		FeedbackPoll: f.intAt("feedback_poll"),
	}

	if name := f.stringAt("client"); name != nil {
		id := client.Identifier(*name)
		opts.Client = &id
	}

	if name := f.stringAt("log_level"); name != nil {
		lvl, err := parseLogLevel(*name)
		if err != nil {
			f.fail("log_level", err)
		} else {
			opts.LogLevel = &lvl
		}
	}

	if v.IsSet("plugin") {
		plugin, err := cast.ToStringMapE(v.Get("plugin"))
		if err != nil {
			f.fail("plugin", err)
		}
		opts.Plugin = plugin
	}

	if v.IsSet("redis_options") {
		var ro redis.Options
		if err := v.UnmarshalKey("redis_options", &ro); err != nil {
			f.fail("redis_options", err)
		}
		opts.RedisOptions = &ro
	}

	if f.err != nil {
		return nil, f.err
	}

	return opts, nil
}

// fileReader converts viper values, keeping the first conversion error.
type fileReader struct {
	v   *viper.Viper
	err error
}

func (f *fileReader) fail(key string, err error) {
	if f.err == nil {
		f.err = fmt.Errorf("%w: %s: %w", ErrInvalidConfigFile, key, err)
	}
}

func (f *fileReader) intAt(key string) *int {
	if !f.v.IsSet(key) {
		return nil
	}
	i, err := cast.ToIntE(f.v.Get(key))
	if err != nil {
		f.fail(key, err)
		return nil
	}
	return &i
}

func (f *fileReader) boolAt(key string) *bool {
	if !f.v.IsSet(key) {
		return nil
	}
	b, err := cast.ToBoolE(f.v.Get(key))
	if err != nil {
		f.fail(key, err)
		return nil
	}
	return &b
}

func (f *fileReader) stringAt(key string) *string {
	if !f.v.IsSet(key) {
		return nil
	}
	s, err := cast.ToStringE(f.v.Get(key))
	if err != nil {
		f.fail(key, err)
		return nil
	}
	return &s
}

func parseLogLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.NoLevel, fmt.Errorf("%w: empty", ErrInvalidLogLevel)
	}

	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
	return lvl, nil
}
