// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresCloudRecordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPostgresCloudRecordRepository returns the PostgreSQL backed
// [CloudRecordRepository].
func NewPostgresCloudRecordRepository(db *DB, logger *logger.Logger) CloudRecordRepository {
	return &postgresCloudRecordRepository{
		db:     db,
		logger: logger,
	}
}

func (r *postgresCloudRecordRepository) Upsert(ctx context.Context, record models.CloudRecord) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(record.Data)
	if err != nil {
		return fmt.Errorf("marshal record data: %w", err)
	}

	query, args, err := psql.Insert(cloudRecordsTable).
		Columns("user_id", "data", "session_id", "updated_at").
		Values(record.UserID, string(data), record.SessionID, record.UpdatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET " +
			"data = EXCLUDED.data, " +
			"session_id = EXCLUDED.session_id, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "postgresCloudRecordRepository.Upsert").
			Str("user_id", record.UserID).
			Msg("failed to upsert cloud record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *postgresCloudRecordRepository) Get(ctx context.Context, userID string) (models.CloudRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("user_id", "data", "session_id", "updated_at").
		From(cloudRecordsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.CloudRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		record models.CloudRecord
		data   []byte
	)
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&record.UserID, &data, &record.SessionID, &record.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.CloudRecord{}, ErrCloudRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "postgresCloudRecordRepository.Get").
			Str("user_id", userID).
			Msg("failed to read cloud record")
		return models.CloudRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := json.Unmarshal(data, &record.Data); err != nil {
		log.Err(err).
			Str("func", "postgresCloudRecordRepository.Get").
			Str("user_id", userID).
			Msg("stored record data is not valid JSON")
		return models.CloudRecord{}, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}

	return record, nil
}
