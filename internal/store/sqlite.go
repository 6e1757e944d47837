package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/store/migrations"
)

// SQLiteBackend keeps every document as one row of the documents table.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and applies pending
// migrations. ":memory:" opens a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteBackend, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// NewSQLiteBackend wraps a database that already has the schema applied.
func NewSQLiteBackend(db *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

// setDBPermissions restricts the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Load returns the document, or nil when the store has no row yet.
func (b *SQLiteBackend) Load(name string) ([]byte, error) {
	var data string
	err := b.db.QueryRow("SELECT data FROM documents WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

// Save upserts the document and bumps its revision.
func (b *SQLiteBackend) Save(name string, data []byte) error {
	_, err := b.db.Exec(
		`INSERT INTO documents (name, data, revision) VALUES (?, ?, 1)
		 ON CONFLICT(name) DO UPDATE SET
		   data = excluded.data,
		   revision = documents.revision + 1,
		   updated_at = datetime('now')`,
		name, string(data),
	)
	return err
}

// Revision returns how many times the document was saved.
func (b *SQLiteBackend) Revision(name string) (int, error) {
	var revision int
	err := b.db.QueryRow("SELECT revision FROM documents WHERE name = ?", name).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return revision, err
}

// Close closes the database.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

var _ domain.DocumentBackend = (*SQLiteBackend)(nil)
