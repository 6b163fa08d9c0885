package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Factory hands out connections to the FoodRescueDb store. It holds only
// the connection string; it never caches or shares handles.
type Factory struct {
	dsn string
}

// NewFactory fails when the connection string is absent. That is a fatal
// configuration error: the process must not start without it.
func NewFactory(dbPath string) (*Factory, error) {
	if dbPath == "" {
		return nil, errors.New(`connection string "FOODRESCUE_DB" not found`)
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_foreign_keys=on", dbPath)
	return &Factory{dsn: dsn}, nil
}

// CreateConnection returns a new, lazily-opened handle on every call.
// The caller owns the handle and must close it on every exit path.
func (f *Factory) CreateConnection() (*sql.DB, error) {
	conn, err := sql.Open("sqlite", f.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return conn, nil
}

// Migrate applies the embedded schema migrations, releasing its connection
// before returning. Already-applied migrations are a no-op.
func (f *Factory) Migrate() error {
	conn, err := f.CreateConnection()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to prepare migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to prepare migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
