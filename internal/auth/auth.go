// Package auth resolves bearer tokens to principals and gates mutating
// operations on the admin role. Principals are carried explicitly on the
// request context rather than looked up from ambient state.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/studynova/ingest/internal/config"
)

// Roles assignable to configured tokens.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Auth errors.
var (
	ErrUnauthenticated = errors.New("missing or unknown bearer token")
	ErrAccessDenied    = errors.New("access denied: admin role required")
)

// Principal identifies an authenticated caller.
type Principal struct {
	Role string
}

// Admin reports whether the principal holds the admin role.
func (p Principal) Admin() bool {
	return p.Role == RoleAdmin
}

type contextKey struct{}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// PrincipalFrom extracts the principal from the context.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}

// RequireAdmin returns ErrAccessDenied unless the context carries an admin
// principal. Callers check this before performing any side effect.
func RequireAdmin(ctx context.Context) error {
	p, ok := PrincipalFrom(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if !p.Admin() {
		return ErrAccessDenied
	}
	return nil
}

// System resolves bearer tokens against the configured token set.
type System interface {
	Resolve(token string) (Principal, bool)
	Middleware() func(http.Handler) http.Handler
}

type system struct {
	tokens map[string]string
}

// New creates an auth system from configuration.
func New(cfg *config.AuthConfig) System {
	tokens := make(map[string]string, len(cfg.Tokens))
	for token, role := range cfg.Tokens {
		tokens[token] = role
	}
	return &system{tokens: tokens}
}

func (s *system) Resolve(token string) (Principal, bool) {
	role, ok := s.tokens[token]
	if !ok {
		return Principal{}, false
	}
	return Principal{Role: role}, true
}

// Middleware attaches a principal to the request context when a configured
// bearer token is presented. Requests without a valid token pass through
// unauthenticated; authorization is enforced per-operation.
func (s *system) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if p, ok := s.Resolve(token); ok {
					r = r.WithContext(WithPrincipal(r.Context(), p))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// MapHTTPStatus converts auth errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnauthenticated) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrAccessDenied) {
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
