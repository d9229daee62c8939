// Package storage mirrors the ledger tables in PostgreSQL. Each
// committed changeset is written inside a single SQL transaction, and
// the full state can be read back as a snapshot to restore the engine
// at startup.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	migrate "github.com/rubenv/sql-migrate"
)

// DB wraps the PostgreSQL connection pool.
type DB struct {
	*sqlx.DB
	log zerolog.Logger
}

// NewDB connects to PostgreSQL and applies any pending migrations from
// migrationsDir.
func NewDB(dsn, migrationsDir string, logger zerolog.Logger) (*DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log := logger.With().Str("component", "storage").Logger()
	if err := runMigrations(db.DB, migrationsDir, log); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return &DB{DB: db, log: log}, nil
}

func runMigrations(db *sql.DB, dir string, log zerolog.Logger) error {
	migrations := &migrate.FileMigrationSource{Dir: dir}
	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info().Int("count", n).Msg("applied migrations")
	} else {
		log.Debug().Msg("no new migrations to apply")
	}
	return nil
}
