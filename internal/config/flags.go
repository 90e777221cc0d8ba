package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-rpush/internal/client"
)

// parseFlags parses the daemon's command line flags. Only flags present in
// args produce non-nil fields.
//
// Flags:
//
//	-push-poll       seconds between checks for new notifications
//	-batch-size      notifications loaded per check
//	-client          client backend (redis, active_record)
//	-log-file        log file path
//	-pid-file        pid file path
//	-log-level       log level name (debug, info, warn, ...)
//	-f/-foreground   stay in the foreground and log to stdout
//	-c/-config       config file path (json, yaml or toml)
//	-root            directory relative paths are resolved against
func parseFlags(args []string) (*source, error) {
	fs := flag.NewFlagSet("rpush", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pushPoll, batchSize                          int
		clientName, logFile, pidFile, logLevel, path string
		rootDir                                      string
		foreground                                   bool
	)

	fs.IntVar(&pushPoll, "push-poll", 0, "Seconds between checks for new notifications")
	fs.IntVar(&batchSize, "batch-size", 0, "Notifications loaded per check")
	fs.StringVar(&clientName, "client", "", "Client backend")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&pidFile, "pid-file", "", "Pid file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&foreground, "f", false, "Run in the foreground")
	fs.BoolVar(&foreground, "foreground", false, "Run in the foreground (alias)")
	fs.StringVar(&path, "c", "", "Config file path")
	fs.StringVar(&path, "config", "", "Config file path (alias)")
	fs.StringVar(&rootDir, "root", "", "Root directory")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	opts := &Options{}
	var err error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "push-poll":
			opts.PushPoll = &pushPoll
		case "batch-size":
			opts.BatchSize = &batchSize
		case "client":
			id := client.Identifier(clientName)
			opts.Client = &id
		case "log-file":
			opts.LogFile = &logFile
		case "pid-file":
			opts.PidFile = &pidFile
		case "log-level":
			lvl, lvlErr := parseLogLevel(logLevel)
			if lvlErr != nil {
				err = fmt.Errorf("error parsing flags: %w", lvlErr)
				return
			}
			opts.LogLevel = &lvl
		case "f", "foreground":
			opts.Foreground = &foreground
		}
	})
	if err != nil {
		return nil, err
	}

	return &source{opts: opts, root: rootDir, file: path}, nil
}
