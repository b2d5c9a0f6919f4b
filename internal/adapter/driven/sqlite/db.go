// Package sqlite is the driven adapter for the relational database. The
// service only ever needs a pooled connection factory: the health probe
// borrows one connection per invocation and the startup migration creates the
// example schema.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps a pooled SQLite handle and remembers the resolved DSN so the
// health probe can report it as the connection URL.
type DB struct {
	pool *sql.DB
	dsn  string
}

// Open creates the connection pool for the given datasource URL. Plain file
// paths are wrapped in a file: DSN with WAL mode, busy timeout, synchronous
// NORMAL, and foreign keys enabled; file: URLs are passed through untouched.
// Opening is lazy: no connection is established until first use, so an
// unreachable database surfaces in the health probe rather than here.
func Open(datasourceURL string) (*DB, error) {
	dsn := datasourceURL
	if !strings.HasPrefix(dsn, "file:") {
		dsn = fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)",
			dsn,
		)
	}

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	pool.SetMaxOpenConns(4)

	return &DB{pool: pool, dsn: dsn}, nil
}

// Ping acquires one pooled connection, verifies it with a single round trip,
// and releases it on every exit path. On success it returns the resolved DSN.
// One attempt only; callers embed the error in their response body.
func (db *DB) Ping(ctx context.Context) (string, error) {
	conn, err := db.pool.Conn(ctx)
	if err != nil {
		return "", fmt.Errorf("acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.PingContext(ctx); err != nil {
		return "", fmt.Errorf("ping database: %w", err)
	}

	return db.dsn, nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.pool.Close()
}
