// Package storage is the durable key-value primitive behind the forum
// store: a single SQLite table mapping string keys to string values. It is
// the Go stand-in for the browser's localStorage and carries no knowledge
// of what it persists.
package storage

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"
)

// KV wraps a SQLite database used as a durable key-value store.
type KV struct{ sql *sql.DB }

// Open opens (or creates) the store at path. Use ":memory:" for tests.
func Open(path string) (*KV, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = d.Close()
		return nil, err
	}
	kv := &KV{sql: d}
	if err := kv.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return kv, nil
}

func (k *KV) Close() error { return k.sql.Close() }

func (k *KV) migrate() error {
	_, err := k.sql.Exec(`
	CREATE TABLE IF NOT EXISTS kv (
	  key TEXT PRIMARY KEY,
	  value TEXT NOT NULL
	);
	`)
	return err
}

// Get returns the value stored under key. The second result is false when
// the key is absent.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	row := k.sql.QueryRowContext(ctx, `SELECT value FROM kv WHERE key=?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// Put stores value under key, replacing any previous value.
func (k *KV) Put(ctx context.Context, key, value string) error {
	_, err := k.sql.ExecContext(ctx,
		`INSERT INTO kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value)
	return err
}

// Delete removes key if present.
func (k *KV) Delete(ctx context.Context, key string) error {
	_, err := k.sql.ExecContext(ctx, `DELETE FROM kv WHERE key=?`, key)
	return err
}
