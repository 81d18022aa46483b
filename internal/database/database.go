// Package database manages the PostgreSQL connection pool and schema migrations.
package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/internal/lifecycle"
)

//go:embed migrations/*.sql
var migrations embed.FS

// System manages the database connection pool lifecycle and migrations.
type System interface {
	Connection() *sql.DB
	Migrate() error
	Start(lc *lifecycle.Coordinator) error
}

type system struct {
	db     *sql.DB
	logger *slog.Logger
}

// New opens and verifies a connection pool from the database configuration.
func New(cfg *config.DatabaseConfig, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &system{
		db:     db,
		logger: logger.With("system", "database"),
	}, nil
}

func (s *system) Connection() *sql.DB {
	return s.db
}

// Migrate applies all pending embedded schema migrations.
func (s *system) Migrate() error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	driver, err := migratepgx.WithInstance(s.db, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx", driver)
	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	s.logger.Info("schema migrations applied")
	return nil
}

// Start runs migrations during startup and closes the pool on shutdown.
func (s *system) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		if err := s.Migrate(); err != nil {
			s.logger.Error("migration failed", "error", err)
		}
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := s.db.Close(); err != nil {
			s.logger.Error("database close failed", "error", err)
		} else {
			s.logger.Info("database connection closed")
		}
	})

	return nil
}
