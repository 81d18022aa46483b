package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/internal/routes"
	"github.com/studynova/ingest/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	runtime, err := NewRuntime(cfg)
	if err != nil {
		slog.Error("failed to initialize runtime", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, runtime); err != nil {
		runtime.Logger.Error("service error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, runtime *Runtime) error {
	domain := NewDomain(runtime, cfg)

	routeSys := routes.New(runtime.Logger)
	if err := registerRoutes(routeSys, runtime, domain, cfg); err != nil {
		return err
	}

	handler := buildMiddleware(runtime, domain, cfg).Apply(routeSys.Build())
	httpServer := server.New(&cfg.Server, handler, runtime.Logger)

	if err := runtime.Start(); err != nil {
		return err
	}

	if err := domain.Watcher.Start(runtime.Lifecycle); err != nil {
		return err
	}

	if err := httpServer.Start(runtime.Lifecycle); err != nil {
		return err
	}

	go func() {
		runtime.Lifecycle.WaitForStartup()
		runtime.Logger.Info("all subsystems ready", "addr", cfg.Server.Addr(), "version", cfg.Version)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	runtime.Logger.Info("initiating shutdown")
	return runtime.Lifecycle.Shutdown(cfg.Server.ShutdownTimeoutDuration())
}
