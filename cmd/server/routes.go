package main

import (
	"net/http"

	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/internal/lifecycle"
	"github.com/studynova/ingest/internal/reviews"
	"github.com/studynova/ingest/internal/sessions"
	"github.com/studynova/ingest/internal/solutions"
	"github.com/studynova/ingest/pkg/openapi"
	pkgroutes "github.com/studynova/ingest/pkg/routes"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r pkgroutes.System, runtime *Runtime, domain *Domain, cfg *config.Config) error {
	sessionHandler := sessions.NewHandler(domain.Sessions, runtime.Logger, runtime.Pagination, cfg.Storage.MaxUploadSizeBytes())
	reviewHandler := reviews.NewHandler(domain.Reviews, runtime.Logger, runtime.Pagination)
	solutionHandler := solutions.NewHandler(domain.Solutions, runtime.Logger, runtime.Pagination)

	r.RegisterGroup(pkgroutes.Group{
		Prefix:      "/api",
		Description: "Study Nova ingest API",
		Children: []pkgroutes.Group{
			sessionHandler.Routes(),
			reviewHandler.Routes(),
			solutionHandler.Routes(),
		},
	})

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
		OpenAPI: &openapi.Operation{
			Summary: "Health check endpoint",
			Tags:    []string{"Infrastructure"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Service is healthy"},
			},
		},
	})

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/readyz",
		Handler: func(w http.ResponseWriter, req *http.Request) {
			handleReadinessCheck(w, runtime.Lifecycle)
		},
		OpenAPI: &openapi.Operation{
			Summary: "Readiness check endpoint",
			Tags:    []string{"Infrastructure"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Service is ready"},
				503: {Description: "Service not ready"},
			},
		},
	})

	components := openapi.NewComponents()
	components.AddSchemas(sessions.Spec.Schemas())
	components.AddSchemas(reviews.Spec.Schemas())
	components.AddSchemas(solutions.Spec.Schemas())
	components.AddResponses(map[string]*openapi.Response{
		"Unauthorized": {Description: "Authentication required"},
		"Forbidden":    {Description: "Access denied"},
	})

	specBytes, err := loadOrGenerateSpec(cfg, r, components)
	if err != nil {
		return err
	}

	r.RegisterRoute(pkgroutes.Route{
		Method:  "GET",
		Pattern: "/api/openapi.json",
		Handler: serveOpenAPISpec(specBytes),
	})

	return nil
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}

func serveOpenAPISpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
