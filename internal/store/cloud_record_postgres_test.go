// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixel34p/Yo-kaidle-sub001/internal/logger"
	"github.com/mixel34p/Yo-kaidle-sub001/models"
)

const (
	selectCloudRecordSQL = `SELECT user_id, data, session_id, updated_at FROM cloud_records WHERE user_id = $1`
	upsertCloudRecordSQL = `INSERT INTO cloud_records (user_id,data,session_id,updated_at) VALUES ($1,$2,$3,$4) ON CONFLICT (user_id) DO UPDATE SET`
)

var cloudRecordColumns = []string{"user_id", "data", "session_id", "updated_at"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		driver:             driverPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestPostgresCloudRecord_Get(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)

	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		want    models.CloudRecord
		wantErr error
	}{
		{
			name: "success",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectCloudRecordSQL)).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(cloudRecordColumns).
						AddRow("user-1", []byte(`{"points":120,"streak":{"days":3}}`), "s-1", now))
			},
			want: models.CloudRecord{
				UserID: "user-1",
				Data: models.Bundle{
					"points": json.RawMessage(`120`),
					"streak": json.RawMessage(`{"days":3}`),
				},
				SessionID: "s-1",
				UpdatedAt: now,
			},
		},
		{
			name: "not found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectCloudRecordSQL)).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(cloudRecordColumns))
			},
			wantErr: ErrCloudRecordNotFound,
		},
		{
			name: "corrupted data",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectCloudRecordSQL)).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(cloudRecordColumns).
						AddRow("user-1", []byte(`not-json`), "s-1", now))
			},
			wantErr: ErrCorruptedRecord,
		},
		{
			name: "non retryable query error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectCloudRecordSQL)).
					WithArgs("user-1").
					WillReturnError(errors.New("syntax"))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "retryable error then success",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectCloudRecordSQL)).
					WithArgs("user-1").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
				m.ExpectQuery(regexp.QuoteMeta(selectCloudRecordSQL)).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows(cloudRecordColumns).
						AddRow("user-1", []byte(`{}`), "s-2", now))
			},
			want: models.CloudRecord{
				UserID:    "user-1",
				Data:      models.Bundle{},
				SessionID: "s-2",
				UpdatedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)
			repo := NewPostgresCloudRecordRepository(newDBFromSQL(db), logger.Nop())

			got, err := repo.Get(testContext(), "user-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresCloudRecord_Upsert(t *testing.T) {
	now := time.Now().UTC()
	record := models.CloudRecord{
		UserID:    "user-1",
		Data:      models.Bundle{"points": json.RawMessage(`5`)},
		SessionID: "s-1",
		UpdatedAt: now,
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta(upsertCloudRecordSQL)).
			WithArgs("user-1", `{"points":5}`, "s-1", now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgresCloudRecordRepository(newDBFromSQL(db), logger.Nop())
		require.NoError(t, repo.Upsert(testContext(), record))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta(upsertCloudRecordSQL)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		repo := NewPostgresCloudRecordRepository(newDBFromSQL(db), logger.Nop())
		err := repo.Upsert(testContext(), record)
		require.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("retries are bounded", func(t *testing.T) {
		db, mock := newTestDB(t)
		for range maxAttempts {
			mock.ExpectExec(regexp.QuoteMeta(upsertCloudRecordSQL)).
				WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})
		}

		repo := NewPostgresCloudRecordRepository(newDBFromSQL(db), logger.Nop())
		err := repo.Upsert(testContext(), record)
		require.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresCloudRecord_KeepsValueText(t *testing.T) {
	db, mock := newTestDB(t)
	now := time.Now().UTC()
	stored := `{"streak":{"b":1,"a":2}}`

	mock.ExpectExec(regexp.QuoteMeta(upsertCloudRecordSQL)).
		WithArgs("user-1", stored, "s-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(selectCloudRecordSQL)).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(cloudRecordColumns).AddRow("user-1", []byte(stored), "s-1", now))

	repo := NewPostgresCloudRecordRepository(newDBFromSQL(db), logger.Nop())
	require.NoError(t, repo.Upsert(testContext(), models.CloudRecord{
		UserID:    "user-1",
		Data:      models.Bundle{models.KeyStreak: json.RawMessage(`{"b":1,"a":2}`)},
		SessionID: "s-1",
		UpdatedAt: now,
	}))

	got, err := repo.Get(testContext(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2}`, string(got.Data[models.KeyStreak]))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.Equal(t, Retryable, c.Classify(&pgconn.PgError{Code: pgerrcode.CannotConnectNow}))
	assert.Equal(t, NonRetryable, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
}
