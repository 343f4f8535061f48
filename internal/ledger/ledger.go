// Package ledger persists assigned product ids in a local SQLite file so
// that ids survive table or namespace changes between runs.
package ledger

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/kctmenswear/catalog-importer/internal/id"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Ledger is an id.Assigner backed by SQLite.
type Ledger struct {
	db     *sql.DB
	logger *slog.Logger
	mint   id.Assigner
	now    func() time.Time
}

// Open opens or creates the ledger at path. New keys receive ids from mint
// (stable ids when mint is nil).
func Open(path string, mint id.Assigner, logger *slog.Logger) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	if mint == nil {
		mint = id.Stable{}
	}
	return &Ledger{db: db, logger: logger, mint: mint, now: time.Now}, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Assign returns the recorded id of key, minting and recording one if absent.
func (l *Ledger) Assign(ctx context.Context, key string) (string, error) {
	now := formatTime(l.now())

	var existing string
	err := l.db.QueryRowContext(ctx, `SELECT id FROM product_ids WHERE key = ?`, key).Scan(&existing)
	switch {
	case err == nil:
		if _, err := l.db.ExecContext(ctx, `UPDATE product_ids SET seen_at = ? WHERE key = ?`, now, key); err != nil {
			return "", fmt.Errorf("touch %s: %w", key, err)
		}
		return existing, nil
	case err != sql.ErrNoRows:
		return "", fmt.Errorf("lookup %s: %w", key, err)
	}

	minted, err := l.mint.Assign(ctx, key)
	if err != nil {
		return "", err
	}
	_, err = l.db.ExecContext(ctx, `
		INSERT INTO product_ids (key, id, created_at, seen_at)
		VALUES (?, ?, ?, ?)`,
		key, minted, now, now,
	)
	if err != nil {
		return "", fmt.Errorf("record %s: %w", key, err)
	}
	l.logger.Debug("recorded new product id", "key", key, "id", minted)
	return minted, nil
}

// Count returns the number of recorded keys.
func (l *Ledger) Count(ctx context.Context) (int, error) {
	var n int
	if err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM product_ids`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count ids: %w", err)
	}
	return n, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
