package internal_auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/studynova/ingest/internal/auth"
	"github.com/studynova/ingest/internal/config"
)

func newSystem(t *testing.T) auth.System {
	t.Helper()

	cfg := &config.AuthConfig{Tokens: map[string]string{
		"admin-token":  auth.RoleAdmin,
		"viewer-token": auth.RoleViewer,
	}}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}
	return auth.New(cfg)
}

func TestResolve(t *testing.T) {
	sys := newSystem(t)

	p, ok := sys.Resolve("admin-token")
	if !ok || !p.Admin() {
		t.Errorf("Resolve(admin-token) = (%+v, %v), want admin principal", p, ok)
	}

	p, ok = sys.Resolve("viewer-token")
	if !ok || p.Admin() {
		t.Errorf("Resolve(viewer-token) = (%+v, %v), want viewer principal", p, ok)
	}

	if _, ok := sys.Resolve("unknown"); ok {
		t.Error("Resolve(unknown) = true, want false")
	}
}

func TestRequireAdmin(t *testing.T) {
	ctx := context.Background()

	if err := auth.RequireAdmin(ctx); !errors.Is(err, auth.ErrUnauthenticated) {
		t.Errorf("RequireAdmin(no principal) = %v, want %v", err, auth.ErrUnauthenticated)
	}

	viewer := auth.WithPrincipal(ctx, auth.Principal{Role: auth.RoleViewer})
	if err := auth.RequireAdmin(viewer); !errors.Is(err, auth.ErrAccessDenied) {
		t.Errorf("RequireAdmin(viewer) = %v, want %v", err, auth.ErrAccessDenied)
	}

	admin := auth.WithPrincipal(ctx, auth.Principal{Role: auth.RoleAdmin})
	if err := auth.RequireAdmin(admin); err != nil {
		t.Errorf("RequireAdmin(admin) = %v, want nil", err)
	}
}

func TestMiddleware_BearerParsing(t *testing.T) {
	sys := newSystem(t)

	tests := []struct {
		name      string
		header    string
		wantRole  string
		wantFound bool
	}{
		{"valid admin token", "Bearer admin-token", auth.RoleAdmin, true},
		{"case-insensitive scheme", "bearer viewer-token", auth.RoleViewer, true},
		{"unknown token passes unauthenticated", "Bearer nope", "", false},
		{"wrong scheme", "Basic admin-token", "", false},
		{"no header", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got auth.Principal
			var found bool

			handler := sys.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, found = auth.PrincipalFrom(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if found != tt.wantFound {
				t.Fatalf("principal found = %v, want %v", found, tt.wantFound)
			}
			if found && got.Role != tt.wantRole {
				t.Errorf("role = %q, want %q", got.Role, tt.wantRole)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{auth.ErrUnauthenticated, http.StatusUnauthorized},
		{auth.ErrAccessDenied, http.StatusForbidden},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := auth.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestAuthConfig_Validate(t *testing.T) {
	cfg := &config.AuthConfig{Tokens: map[string]string{"t": "superuser"}}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() with invalid role = nil, want error")
	}
}

func TestAuthConfig_EnvTokens(t *testing.T) {
	t.Setenv(config.EnvAuthTokens, "abc:admin, def:viewer")

	cfg := &config.AuthConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.Tokens["abc"] != "admin" || cfg.Tokens["def"] != "viewer" {
		t.Errorf("Tokens = %v, want parsed pairs", cfg.Tokens)
	}
}
