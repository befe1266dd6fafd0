// Package sqlite stores carts in a local SQLite database using the pure-Go
// modernc driver, so the default build needs no cgo.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
    CREATE TABLE IF NOT EXISTS cart_store (
        storage_key TEXT PRIMARY KEY,
        payload     TEXT NOT NULL,
        updated_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
    )
`

type CartStorage struct {
	db *sql.DB
}

// Open opens (or creates) the database file at path. ":memory:" keeps
// everything in process.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection: SQLite serializes writers anyway, and an in-memory
	// database exists per connection.
	db.SetMaxOpenConns(1)
	return db, nil
}

func NewCartStorage(db *sql.DB) *CartStorage {
	return &CartStorage{db: db}
}

func (r *CartStorage) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

func (r *CartStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT payload FROM cart_store WHERE storage_key = ?
    `, key)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(payload), true, nil
}

func (r *CartStorage) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO cart_store (storage_key, payload)
        VALUES (?, ?)
        ON CONFLICT (storage_key) DO UPDATE SET
            payload = excluded.payload,
            updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
    `, key, string(value))
	return err
}

func (r *CartStorage) Remove(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_store WHERE storage_key = ?`, key)
	return err
}
