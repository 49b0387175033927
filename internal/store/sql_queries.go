// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	localEntriesTable = "local_entries"
	cloudRecordsTable = "cloud_records"
)

const (
	getLocalEntry = `
		SELECT value
		FROM local_entries
		WHERE key = ?;`

	upsertLocalEntry = `
		INSERT INTO local_entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	deleteLocalEntry = `
		DELETE FROM local_entries
		WHERE key = ?;`
)
