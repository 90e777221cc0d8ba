package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/internal/client/activerecord"
	"github.com/MKhiriev/go-rpush/internal/client/redis"
	"github.com/MKhiriev/go-rpush/internal/config"
	"github.com/MKhiriev/go-rpush/internal/logger"
	"github.com/MKhiriev/go-rpush/internal/workers"
	"github.com/MKhiriev/go-rpush/models"
)

// database holds the SQL connection settings of the active_record backend.
type database struct {
	Driver string `env:"DATABASE_DRIVER" envDefault:"sqlite3"`
	DSN    string `env:"DATABASE_URL" envDefault:"db/rpush.sqlite3"`
}

// probeBackend connects to the storage of the bound backend and logs how
// many notifications of each type are waiting.
func probeBackend(ctx context.Context, cfg *config.Configuration, log *logger.Logger) error {
	types, ok := cfg.MessageTypes()
	if !ok {
		return fmt.Errorf("%w: no client backend bound", config.ErrConfiguration)
	}

	switch cfg.Client() {
	case client.Redis:
		return probeRedis(ctx, types, log)
	case client.ActiveRecord:
		return probeDatabase(ctx, cfg, types, log)
	}

	return nil
}

func probeRedis(ctx context.Context, types client.MessageTypes, log *logger.Logger) error {
	rdb, err := redis.Shared.NewClient(ctx)
	if err != nil {
		return err
	}
	defer rdb.Close()

	return perService(types, func(ctx context.Context, mt client.MessageType) error {
		n, err := redis.PendingCount(ctx, rdb, mt)
		if err != nil {
			return err
		}
		log.Info().Str("service", string(mt.Service)).Int64("pending", n).Msg("pending notifications")
		return nil
	}).Run(ctx)
}

func probeDatabase(ctx context.Context, cfg *config.Configuration, types client.MessageTypes, log *logger.Logger) error {
	var dbCfg database
	if err := env.ParseWithOptions(&dbCfg, env.Options{Prefix: "RPUSH_"}); err != nil {
		return fmt.Errorf("error getting database configs: %w", err)
	}
	if dbCfg.Driver == activerecord.DriverSQLite && !filepath.IsAbs(dbCfg.DSN) {
		dbCfg.DSN = filepath.Join(config.Root(), dbCfg.DSN)
	}

	db, err := activerecord.Open(ctx, dbCfg.Driver, dbCfg.DSN, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	return perService(types, func(ctx context.Context, mt client.MessageType) error {
		ids, err := db.FetchPendingIDs(ctx, mt, cfg.BatchSize)
		if err != nil {
			return err
		}
		log.Info().Str("service", string(mt.Service)).Int("pending", len(ids)).Msg("pending notifications")
		return nil
	}).Run(ctx)
}

// perService builds one worker per delivery protocol.
func perService(types client.MessageTypes, fn func(context.Context, client.MessageType) error) *workers.Workers {
	ws := workers.New(len(models.Services()))
	for _, s := range models.Services() {
		mt, _ := types.Lookup(s)
		ws.Add(workers.Func(func(ctx context.Context) error {
			return fn(ctx, mt)
		}))
	}
	return ws
}
