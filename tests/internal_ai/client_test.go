package internal_ai_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studynova/ingest/internal/ai"
	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/internal/content"
)

func completionResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func newGenerator(t *testing.T, handler http.HandlerFunc) ai.Generator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.AIConfig{BaseURL: server.URL, Model: "test-model", Timeout: "5s", MaxQuestions: 10, APIKey: "test-key"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ai.New(cfg, logger)
}

func TestGenerate(t *testing.T) {
	var gotPath, gotAuth string

	gen := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		body := `{"qa_pairs": [
			{"question": "What is a prime?", "answer": "A number with exactly two divisors.", "confidence": 0.92},
			{"question": "Is 1 prime?", "answer": "No, it has only one divisor."}
		]}`
		json.NewEncoder(w).Encode(completionResponse(body))
	})

	meta := content.Metadata{Board: "cbse", Class: "10", Subject: "mathematics", Chapter: "Real Numbers"}
	pairs, err := gen.Generate(context.Background(), "Prime numbers have exactly two divisors.", meta, 5)
	if err != nil {
		t.Fatalf("Generate() = %v", err)
	}

	if gotPath != "/chat/completions" {
		t.Errorf("request path = %q, want /chat/completions", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q, want Bearer test-key", gotAuth)
	}

	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}
	if pairs[0].Confidence != 0.92 {
		t.Errorf("pairs[0].Confidence = %v, want 0.92", pairs[0].Confidence)
	}
	// Missing confidence is defaulted, never left at zero.
	if pairs[1].Confidence != 0.9 {
		t.Errorf("pairs[1].Confidence = %v, want 0.9", pairs[1].Confidence)
	}
}

func TestGenerate_SchemaRejection(t *testing.T) {
	gen := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse(`{"qa_pairs": [{"question": "Q?"}]}`))
	})

	_, err := gen.Generate(context.Background(), "text", content.Metadata{}, 5)
	if err == nil {
		t.Error("Generate() with invalid payload = nil, want error")
	}
}

func TestGenerate_NoChoices(t *testing.T) {
	gen := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := gen.Generate(context.Background(), "text", content.Metadata{}, 5)
	if err == nil {
		t.Error("Generate() with no choices = nil, want error")
	}
}

func TestGenerate_ServerError(t *testing.T) {
	gen := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	})

	_, err := gen.Generate(context.Background(), "text", content.Metadata{}, 5)
	if err == nil {
		t.Fatal("Generate() on 503 = nil, want error")
	}
	// A failed session stores this message, so the raw body text must
	// survive into the error.
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "upstream overloaded") {
		t.Errorf("error = %q, want status and body detail", err)
	}
}

func TestGenerate_ProviderErrorMessage(t *testing.T) {
	gen := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limit exceeded"},
		})
	})

	_, err := gen.Generate(context.Background(), "text", content.Metadata{}, 5)
	if err == nil {
		t.Fatal("Generate() on 429 = nil, want error")
	}
	if !strings.Contains(err.Error(), "rate limit exceeded") {
		t.Errorf("error = %q, want provider message detail", err)
	}
}
