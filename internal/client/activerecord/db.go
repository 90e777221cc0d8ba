// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package activerecord

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-rpush/internal/logger"
	"github.com/MKhiriev/go-rpush/migrations"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB wraps the notifications database connection.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Open connects to dsn with the given driver and pings the database.
// For sqlite a missing database file (and its directory) is created first.
func Open(ctx context.Context, driver, dsn string, log *logger.Logger) (*DB, error) {
	switch driver {
	case DriverPostgres:
	case DriverSQLite:
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "activerecord.Open").Msg("error creating database file")
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "activerecord.Open").Msg("error occured during database connection")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	db, err := newDB(ctx, conn, driver, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func newDB(ctx context.Context, conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	if driver == DriverPostgres {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	// ping database
	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "activerecord.Open").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Debug().Str("func", "activerecord.Open").Str("driver", driver).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		driver:             driver,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}, nil
}

// Migrate brings the notifications schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect())
}

func (db *DB) dialect() string {
	if db.driver == DriverSQLite {
		return "sqlite3"
	}
	return "pgx"
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == "" || dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if err = os.MkdirAll(filepath.Dir(dbFile), 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
