// Moodplay - Mood-Aware Lifestyle and Learning Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodplay

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/moodplay/internal/catalog"
	"github.com/tomtom215/moodplay/internal/feedback"
)

var _ feedback.Store = (*DB)(nil)

// Save inserts one event.
func (db *DB) Save(ctx context.Context, e feedback.Event) error {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return feedback.ErrStoreClosed
	}

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO feedback (id, item_id, domain, action, user_session, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.ItemID, string(e.Domain), string(e.Action), e.UserSession, e.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// Aggregate counts likes and dislikes per (item, session), ordered by item
// then session so the result is stable.
func (db *DB) Aggregate(ctx context.Context) ([]feedback.Tally, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return nil, feedback.ErrStoreClosed
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT item_id,
		       user_session,
		       COUNT(*) FILTER (WHERE action = 'like')    AS likes,
		       COUNT(*) FILTER (WHERE action = 'dislike') AS dislikes
		FROM feedback
		GROUP BY item_id, user_session
		ORDER BY item_id, user_session`)
	if err != nil {
		return nil, fmt.Errorf("aggregate feedback: %w", err)
	}
	defer rows.Close()

	var out []feedback.Tally
	for rows.Next() {
		var t feedback.Tally
		if err := rows.Scan(&t.ItemID, &t.UserSession, &t.Likes, &t.Dislikes); err != nil {
			return nil, fmt.Errorf("scan tally: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tallies: %w", err)
	}
	return out, nil
}

// Count returns the number of stored events.
func (db *DB) Count(ctx context.Context) (int64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return 0, feedback.ErrStoreClosed
	}

	var n int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return n, nil
}

// Recent returns the newest events, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]feedback.Event, error) {
	if limit <= 0 {
		limit = 20
	}
	db.mu.RLock()
	defer db.mu.RUnlock()
	if db.closed {
		return nil, feedback.ErrStoreClosed
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, item_id, domain, action, user_session, created_at
		FROM feedback
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent feedback: %w", err)
	}
	defer rows.Close()

	var out []feedback.Event
	for rows.Next() {
		var (
			e              feedback.Event
			domain, action string
		)
		if err := rows.Scan(&e.ID, &e.ItemID, &domain, &action, &e.UserSession, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Domain = catalog.Domain(domain)
		e.Action = feedback.Action(action)
		e.CreatedAt = e.CreatedAt.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
