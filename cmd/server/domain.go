package main

import (
	"github.com/studynova/ingest/internal/ai"
	"github.com/studynova/ingest/internal/auth"
	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/internal/processor"
	"github.com/studynova/ingest/internal/reviews"
	"github.com/studynova/ingest/internal/sessions"
	"github.com/studynova/ingest/internal/solutions"
	"github.com/studynova/ingest/internal/watcher"
)

// Domain wires the business systems on top of the runtime infrastructure.
type Domain struct {
	Auth      auth.System
	Solutions solutions.System
	Reviews   reviews.System
	Sessions  sessions.System
	Watcher   watcher.System
}

func NewDomain(runtime *Runtime, cfg *config.Config) *Domain {
	db := runtime.Database.Connection()

	solutionSys := solutions.New(db, runtime.Storage, runtime.Logger, runtime.Pagination)
	reviewSys := reviews.New(db, solutionSys, runtime.Logger, runtime.Pagination)

	generator := ai.New(cfg.AI, runtime.Logger)
	pipeline := processor.New(generator, processor.NewRunner(), runtime.Logger)

	sessionStore := sessions.NewStore(db, reviewSys, runtime.Logger, runtime.Pagination)
	sessionSys := sessions.New(sessionStore, runtime.Storage, pipeline, cfg.AI.MaxQuestions, runtime.Logger)

	return &Domain{
		Auth:      auth.New(&cfg.Auth),
		Solutions: solutionSys,
		Reviews:   reviewSys,
		Sessions:  sessionSys,
		Watcher:   watcher.New(cfg.Watcher, sessionSys, runtime.Logger),
	}
}
