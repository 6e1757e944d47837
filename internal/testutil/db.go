// Package testutil holds helpers shared by package tests.
package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/scopes/internal/store"
	"github.com/footprint-tools/scopes/internal/store/migrations"
	"github.com/footprint-tools/scopes/internal/ui"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(context.Background(), db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore registers name on a fresh in-memory database.
func NewTestStore(t *testing.T, name string) *store.Store {
	t.Helper()

	s, err := store.Register(context.Background(), name,
		store.WithBackend(store.NewSQLiteBackend(NewTestDB(t))))
	require.NoError(t, err, "failed to register store %s", name)

	return s
}

// NewBufferWriter returns a pager-less writer backed by a buffer.
func NewBufferWriter() (*ui.Writer, *bytes.Buffer) {
	var buf bytes.Buffer
	return ui.NewWriterTo(&buf, ui.WithPagerDisabled()), &buf
}
