package store

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// newTestStore opens an in-memory SQLite database with the production
// schema. MaxOpenConns(1) keeps the pool on the single connection that owns
// the in-memory database.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE sessions (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  type TEXT NOT NULL,
  startTime INTEGER NOT NULL,
  endTime INTEGER,
  duration INTEGER,
  notes TEXT NOT NULL DEFAULT ''
);
`)
	require.NoError(t, err)

	_, err = db.Exec(`
CREATE TABLE intercession_requests (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  request_date TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'active',
  answered_date TEXT,
  answer_notes TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return New(goqu.New("sqlite3", db))
}

// newMockStore returns a store backed by sqlmock for storage-failure paths.
func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return New(goqu.New("sqlite3", db)), mock
}
