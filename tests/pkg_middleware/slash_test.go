package pkg_middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/studynova/ingest/pkg/middleware"
)

func passthrough() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"trailing slash redirects", "/api/sessions/", http.StatusMovedPermanently, "/api/sessions"},
		{"no trailing slash passes", "/api/sessions", http.StatusOK, ""},
		{"root preserved", "/", http.StatusOK, ""},
	}

	handler := middleware.TrimSlash()(passthrough())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if loc := w.Header().Get("Location"); loc != tt.wantLocation {
					t.Errorf("Location = %q, want %q", loc, tt.wantLocation)
				}
			}
		})
	}
}

func TestTrimSlash_PreservesQuery(t *testing.T) {
	handler := middleware.TrimSlash()(passthrough())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sessions/?page=2", nil))

	if loc := w.Header().Get("Location"); loc != "/api/sessions?page=2" {
		t.Errorf("Location = %q, want /api/sessions?page=2", loc)
	}
}

func TestAddSlash(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"missing slash redirects", "/docs", http.StatusMovedPermanently, "/docs/"},
		{"trailing slash passes", "/docs/", http.StatusOK, ""},
		{"file extension passes", "/docs/openapi.json", http.StatusOK, ""},
	}

	handler := middleware.AddSlash()(passthrough())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" {
				if loc := w.Header().Get("Location"); loc != tt.wantLocation {
					t.Errorf("Location = %q, want %q", loc, tt.wantLocation)
				}
			}
		})
	}
}
