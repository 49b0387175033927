// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations registered: goose's first query fails
	err = MigratePostgres(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	assert.ErrorIs(t, MigrateSQLite(nil), ErrNilDB)
	assert.ErrorIs(t, MigratePostgres(nil), ErrNilDB)
}

func TestMigrateSQLite_CreatesLocalEntries(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSQLite(db))
	// second run is a no-op
	require.NoError(t, MigrateSQLite(db))

	_, err = db.Exec(`INSERT INTO local_entries (key, value) VALUES ('points', '10')`)
	require.NoError(t, err)

	var value string
	require.NoError(t, db.QueryRow(`SELECT value FROM local_entries WHERE key = 'points'`).Scan(&value))
	assert.Equal(t, "10", value)
}
