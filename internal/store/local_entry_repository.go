// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
)

type localEntryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalEntryRepository returns the SQLite backed [LocalEntryRepository].
func NewLocalEntryRepository(db *DB, logger *logger.Logger) LocalEntryRepository {
	return &localEntryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *localEntryRepository) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	var value string
	err := r.db.QueryRowContext(ctx, getLocalEntry, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "localEntryRepository.Get").
			Str("key", key).
			Msg("failed to read local entry")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (r *localEntryRepository) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	log := logger.FromContext(ctx)
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	query, args, err := sq.Select("key", "value").
		From(localEntriesTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localEntryRepository.GetMany").
			Int("keys", len(keys)).
			Msg("failed to query local entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", "localEntryRepository.GetMany").Msg("failed to scan local entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return out, nil
}

func (r *localEntryRepository) Put(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertLocalEntry, key, value, time.Now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localEntryRepository.Put").
			Str("key", key).
			Msg("failed to write local entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localEntryRepository) PutMany(ctx context.Context, entries map[string]string) error {
	log := logger.FromContext(ctx)
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localEntryRepository.PutMany").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	for key, value := range entries {
		if _, err := tx.ExecContext(ctx, upsertLocalEntry, key, value, now); err != nil {
			log.Err(err).
				Str("func", "localEntryRepository.PutMany").
				Str("key", key).
				Msg("failed to write local entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "localEntryRepository.PutMany").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *localEntryRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteLocalEntry, key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localEntryRepository.Delete").
			Str("key", key).
			Msg("failed to delete local entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
