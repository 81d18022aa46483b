package main

import (
	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/pkg/middleware"
)

// buildMiddleware creates the middleware stack: trailing-slash trim, request
// logging, CORS, and bearer-token principal resolution.
func buildMiddleware(runtime *Runtime, domain *Domain, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.Logger(runtime.Logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	middlewareSys.Use(domain.Auth.Middleware())
	return middlewareSys
}
