package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"reddit_alert/internal/model"
	"reddit_alert/internal/seen"
	"reddit_alert/migrations"
)

// maxSeenItems caps how many IDs are retained per kind. On save, older
// entries beyond the cap are dropped so the store never grows unbounded.
const maxSeenItems = 5000

// SQLite implements Storage backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and runs pending migrations.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// LoadSeen returns the seen-item set for a kind, in the order the IDs were
// recorded. A kind with no stored IDs loads as an empty set.
func (s *SQLite) LoadSeen(ctx context.Context, kind model.ItemKind) (*seen.Set, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id FROM seen_items WHERE kind = ? ORDER BY seq`, string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("query seen items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan seen item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seen items: %w", err)
	}
	return seen.FromIDs(ids), nil
}

// SaveSeen replaces the stored seen-item set for a kind, keeping only the
// most recently added maxSeenItems IDs.
func (s *SQLite) SaveSeen(ctx context.Context, kind model.ItemKind, set *seen.Set) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM seen_items WHERE kind = ?`, string(kind)); err != nil {
		return fmt.Errorf("clear seen items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO seen_items (kind, item_id) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, id := range set.Tail(maxSeenItems) {
		if _, err := stmt.ExecContext(ctx, string(kind), id); err != nil {
			return fmt.Errorf("insert seen item: %w", err)
		}
	}
	return tx.Commit()
}
