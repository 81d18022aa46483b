package main

import (
	"fmt"
	"log/slog"

	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/internal/database"
	"github.com/studynova/ingest/internal/lifecycle"
	"github.com/studynova/ingest/internal/storage"
	"github.com/studynova/ingest/pkg/logging"
	"github.com/studynova/ingest/pkg/pagination"
)

// Runtime holds the infrastructure subsystems shared by every domain.
type Runtime struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Database   database.System
	Storage    storage.System
	Pagination pagination.Config
}

func NewRuntime(cfg *config.Config) (*Runtime, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	dbSys, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	storageSys, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Runtime{
		Lifecycle:  lc,
		Logger:     logger,
		Database:   dbSys,
		Storage:    storageSys,
		Pagination: cfg.Pagination,
	}, nil
}

func (r *Runtime) Start() error {
	if err := r.Database.Start(r.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}

	if err := r.Storage.Start(r.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}

	return nil
}
