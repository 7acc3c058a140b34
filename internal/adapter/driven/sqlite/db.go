// Package sqlite implements the pot journal on an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "modernc.org/sqlite"
)

// journalPragmas are applied to every connection of a file-backed journal.
var journalPragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
}

const (
	maxWriterConns = 1
	maxReaderConns = 4
)

// DB holds the journal's connection pools. Writes go through a single
// connection so SQLite never reports "database is locked"; reads use a
// small separate pool.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	path   string
}

// NewDB opens (creating if needed) the journal file at path.
func NewDB(ctx context.Context, path string) (*DB, error) {
	q := make([]string, 0, len(journalPragmas))
	for _, p := range journalPragmas {
		q = append(q, "_pragma="+url.QueryEscape(p))
	}
	return open(ctx, "file:"+path+"?"+strings.Join(q, "&"), path)
}

func open(ctx context.Context, dsn, path string) (*DB, error) {
	writer, err := openPool(ctx, dsn, maxWriterConns)
	if err != nil {
		return nil, fmt.Errorf("open journal writer %s: %w", path, err)
	}

	reader, err := openPool(ctx, dsn, maxReaderConns)
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("open journal reader %s: %w", path, err)
	}

	return &DB{Writer: writer, Reader: reader, path: path}, nil
}

func openPool(ctx context.Context, dsn string, maxConns int) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(maxConns)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}
	return pool, nil
}

// Path returns the journal file the DB was opened with.
func (db *DB) Path() string {
	return db.path
}

// Close closes both pools.
func (db *DB) Close() error {
	return errors.Join(db.Reader.Close(), db.Writer.Close())
}
