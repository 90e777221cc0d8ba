// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package activerecord

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rpush/internal/client"
)

// PendingQuery selects the ids of up to batchSize undelivered, unfailed
// notifications of mt, oldest first. Placeholders follow the driver.
// batchSize must be positive.
func PendingQuery(mt client.MessageType, batchSize int, placeholder sq.PlaceholderFormat) (string, []any, error) {
	if batchSize < 1 {
		return "", nil, fmt.Errorf("%w: batch size must be positive, got %d", ErrBuildingSQLQuery, batchSize)
	}

	query, args, err := sq.Select("id").
		From(Table).
		Where("type = ?", mt.Key).
		Where("delivered = ?", false).
		Where("failed = ?", false).
		OrderBy("created_at").
		Limit(uint64(batchSize)).
		PlaceholderFormat(placeholder).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.driver == DriverSQLite {
		return sq.Question
	}
	return sq.Dollar
}

// FetchPendingIDs returns the ids selected by [PendingQuery].
func (db *DB) FetchPendingIDs(ctx context.Context, mt client.MessageType, batchSize int) ([]int64, error) {
	query, args, err := PendingQuery(mt, batchSize, db.placeholder())
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		db.logger.Err(err).
			Str("func", "*DB.FetchPendingIDs").
			Str("type", mt.Key).
			Stringer("classification", db.errorClassificator.Classify(err)).
			Msg("failed to query pending notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0, batchSize)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
