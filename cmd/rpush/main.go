package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-rpush/internal/config"
	"github.com/MKhiriev/go-rpush/internal/logger"
	"github.com/MKhiriev/go-rpush/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("rpush")

	opts, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = config.Configure(func(cfg *config.Configuration) error {
		return cfg.Update(opts)
	}); err != nil {
		log.Fatal().Err(err).Msg("error configuring rpush")
	}

	cfg := config.Get()
	if err = cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	fileLog, err := cfg.ResolveLogger("rpush")
	if err != nil {
		log.Fatal().Err(err).Msg("error opening log file")
	}
	log = fileLog
	defer fileLog.Close()
	config.SetDeprecationLogger(log)

	log.Debug().Any("config", cfg).Msg("received configs")
	log.Info().
		Str("client", string(cfg.Client())).
		Str("log_file", cfg.LogFile()).
		Str("pid_file", cfg.PidFile()).
		Msg("client backend initialized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = probeBackend(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("client backend is not reachable")
		stop()
		_ = fileLog.Close()
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Print(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
}
