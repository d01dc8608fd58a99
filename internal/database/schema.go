// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS feedback (
		id           TEXT PRIMARY KEY,
		item_id      TEXT NOT NULL,
		domain       TEXT NOT NULL,
		action       TEXT NOT NULL,
		user_session TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_item ON feedback(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_session ON feedback(user_session)`,
}

func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
