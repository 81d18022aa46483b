// Package ai generates question-answer pairs from cleaned chapter text
// through an OpenAI-compatible chat/completions endpoint. Responses are
// validated against a JSON Schema before acceptance.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studynova/ingest/internal/config"
	"github.com/studynova/ingest/internal/content"
)

// GeneratedPair is one question-answer pair produced by the model.
type GeneratedPair struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Confidence float64 `json:"confidence"`
}

// Generator produces question-answer pairs from chapter text.
type Generator interface {
	Generate(ctx context.Context, text string, meta content.Metadata, maxQuestions int) ([]GeneratedPair, error)
}

type client struct {
	cfg        config.AIConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a Generator backed by the configured chat/completions endpoint.
func New(cfg config.AIConfig, logger *slog.Logger) Generator {
	return &client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.TimeoutDuration()},
		logger:     logger.With("system", "ai"),
	}
}

func (c *client) Generate(ctx context.Context, text string, meta content.Metadata, maxQuestions int) ([]GeneratedPair, error) {
	rid := uuid.New().String()
	start := time.Now()

	if maxQuestions < 1 || maxQuestions > c.cfg.MaxQuestions {
		maxQuestions = c.cfg.MaxQuestions
	}

	c.logger.Info("ai.generate.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(text),
		"max_questions", maxQuestions,
	)

	schema := BuildQASchema(maxQuestions)
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(meta, maxQuestions)},
			{"role": "user", "content": buildUserPrompt(text) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	raw, _, err := SendJSON(ctx, c.httpClient, endpoint, body, headers, c.logger)
	if err != nil {
		c.logger.Error("ai.generate.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("ai.generate.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("ai.generate.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("no choices in completion response")
	}

	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.logger.Error("ai.generate.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var out struct {
		QAPairs []GeneratedPair `json:"qa_pairs"`
	}
	if err := json.Unmarshal(rawContent, &out); err != nil {
		return nil, fmt.Errorf("unmarshal qa pairs: %w", err)
	}

	for i := range out.QAPairs {
		if out.QAPairs[i].Confidence == 0 {
			out.QAPairs[i].Confidence = 0.9
		}
	}

	c.logger.Info("ai.generate.ok",
		"req_id", rid,
		"pairs", len(out.QAPairs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.QAPairs, nil
}

func buildSystemPrompt(meta content.Metadata, maxQuestions int) string {
	parts := []string{
		"You are a textbook question-answer extractor. Return ONLY JSON that matches the JSON Schema provided.",
		fmt.Sprintf("Generate at most %d question-answer pairs from the chapter text.", maxQuestions),
		fmt.Sprintf("The material is %s class %s, subject %s, chapter %q.", meta.Board, meta.Class, meta.Subject, meta.Chapter),
		"Questions must be answerable from the chapter text alone.",
		"Answers must be complete and self-contained, suitable for a student studying this chapter.",
		"Assign each pair a confidence between 0 and 1 reflecting how directly the text supports the answer.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Chapter text:\n")
	b.WriteString(text)
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
