package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// source is one layer of options together with the settings that steer
// loading itself.
type source struct {
	opts *Options
	root string
	file string
}

type optionsBuilder struct {
	sources []*source
	err     error
}

func newOptionsBuilder() *optionsBuilder {
	return &optionsBuilder{
		sources: make([]*source, 0, 3),
	}
}

// build merges the collected layers in order. A field set by a later layer
// replaces the earlier value, including explicit false and zero values.
func (b *optionsBuilder) build() (*Options, string, error) {
	if b.err != nil {
		return nil, "", fmt.Errorf("error occured during building config: %w", b.err)
	}

	opts := new(Options)
	for _, src := range b.sources {
		if err := mergo.Merge(opts, src.opts, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, "", fmt.Errorf("error merging configs: %w", err)
		}
	}

	return opts, b.lastNonEmpty(func(s *source) string { return s.root }), nil
}

func (b *optionsBuilder) lastNonEmpty(field func(*source) string) string {
	var value string
	for _, src := range b.sources {
		if v := field(src); v != "" {
			value = v
		}
	}
	return value
}

func (b *optionsBuilder) withEnv() *optionsBuilder {
	src, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, src)
	return b
}

func (b *optionsBuilder) withFlags(args []string) *optionsBuilder {
	src, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, src)
	return b
}

func (b *optionsBuilder) withFile() *optionsBuilder {
	path := b.lastNonEmpty(func(s *source) string { return s.file })
	if path == "" {
		return b
	}

	opts, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, &source{opts: opts})
	return b
}

// Load assembles [Options] from, in increasing priority:
//  1. RPUSH_* environment variables
//  2. command line flags in args
//  3. the config file named by RPUSH_CONFIG or -c/-config
//
// When a root directory is given (RPUSH_ROOT or -root) it is installed with
// [SetRoot] before returning, so a configuration constructed afterwards
// resolves its default paths against it.
func Load(args []string) (*Options, error) {
	opts, rootDir, err := newOptionsBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
	if err != nil {
		return nil, err
	}

	if rootDir != "" {
		SetRoot(rootDir)
	}

	return opts, nil
}
