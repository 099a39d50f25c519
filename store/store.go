// Package store owns the two prayer tables (timed sessions and intercession
// requests) and is the only component that touches them. All SQL is built
// with goqu against the sqlite3 dialect.
package store

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
)

const (
	sessionTable = "sessions"
	requestTable = "intercession_requests"
)

// Store is constructed once at application start and passed to every
// consumer; it holds no state beyond the database handle.
type Store struct {
	db *goqu.Database
}

func New(db *goqu.Database) *Store {
	return &Store{db: db}
}
