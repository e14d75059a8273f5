package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wheelmarket/wheelmarket/internal/dbx"
)

// ErrQuotaExceeded reports that a write would take the cache past its size
// budget. The Store recovers from it; callers above the Store never see it.
var ErrQuotaExceeded = errors.New("cache quota exceeded")

// KV is durable key/value storage for the cache tier.
//
// Get returns (nil, nil) when the key is absent. Set may fail with
// ErrQuotaExceeded when a size budget is configured.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

// SQLiteKV stores cache entries in a single-table SQLite database. A maxBytes
// of 0 disables the quota.
type SQLiteKV struct {
	db       dbx.DBTX
	maxBytes int64
}

func NewSQLiteKV(db dbx.DBTX, maxBytes int64) *SQLiteKV {
	return &SQLiteKV{db: db, maxBytes: maxBytes}
}

func (r *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM cache WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	if r.maxBytes > 0 {
		var used int64
		err := r.db.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(LENGTH(key) + LENGTH(value)), 0) FROM cache WHERE key <> ?`, key,
		).Scan(&used)
		if err != nil {
			return fmt.Errorf("failed to measure cache: %w", err)
		}
		if used+int64(len(key)+len(value)) > r.maxBytes {
			return fmt.Errorf("cache[%s]: %w", key, ErrQuotaExceeded)
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cache (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set cache[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteKV) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cache WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete cache[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteKV) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM cache`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan cache key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cache keys: %w", err)
	}
	return keys, nil
}

func (r *SQLiteKV) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cache`)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
