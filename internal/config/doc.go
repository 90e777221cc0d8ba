// Package config holds the push daemon's configuration.
//
// A [Configuration] carries every operator setting. The process-wide
// instance is reached with [Get] and customised with [Configure]; selecting
// a client backend with [Configuration.SetClient] resolves it from the
// built-in backend table and binds its message types to the configuration.
//
// Settings can be loaded from several sources with [Load] (later sources
// override earlier non-nil fields):
//  1. Environment variables (RPUSH_*)
//  2. Command-line flags
//  3. A json, yaml or toml config file
//
// The result is applied to a configuration with [Configuration.Update].
package config
