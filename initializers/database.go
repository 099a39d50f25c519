package initializers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/PrayerVault/migrations"
)

// Database bundles the goqu wrapper used for query building with the raw
// handle needed for lifecycle management. One Database is created at
// application start, passed to the store, and closed at shutdown; there is
// no package-level handle.
type Database struct {
	DB  *goqu.Database
	raw *sql.DB
}

func (d *Database) Close() error {
	return d.raw.Close()
}

// ConnectDB opens the database at the configured path.
func ConnectDB(ctx context.Context, cfg *Config) (*Database, error) {
	return OpenDB(ctx, cfg.DBPath)
}

// OpenDB opens (creating if necessary) the SQLite database at path, applies
// the embedded migrations, and wraps the handle for goqu.
func OpenDB(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Database{DB: goqu.New("sqlite3", db), raw: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
