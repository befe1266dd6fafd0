package mysql

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/go-sql-driver/mysql"
)

const schema = `
    CREATE TABLE IF NOT EXISTS cart_store (
        storage_key VARCHAR(191) NOT NULL PRIMARY KEY,
        payload     MEDIUMTEXT   NOT NULL,
        updated_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )
`

type CartStorage struct {
	db *sql.DB
}

// Open connects with the go-sql-driver DSN format, e.g.
// "user:pass@tcp(mysql:3306)/appdb?parseTime=true".
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
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

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

func (r *CartStorage) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO cart_store (storage_key, payload)
        VALUES (?, ?)
        ON DUPLICATE KEY UPDATE payload = VALUES(payload)
    `, key, value)
	return err
}

func (r *CartStorage) Remove(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_store WHERE storage_key = ?`, key)
	return err
}
