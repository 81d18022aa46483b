// Package processor implements the four-stage document pipeline: text
// extraction, cleaning, question-answer generation, and record formatting.
// Progress is reported through a callback in non-decreasing stage order.
package processor

import (
	"context"

	"github.com/studynova/ingest/internal/content"
	"github.com/studynova/ingest/pkg/progress"
)

// ProgressFunc receives stage progress callbacks during processing.
// Stage values arrive in pipeline order; pct is local to the stage [0,100].
type ProgressFunc func(stage progress.Stage, pct int, message string)

// Input carries one document through the pipeline.
type Input struct {
	Data         []byte
	Filename     string
	Metadata     content.Metadata
	MaxQuestions int
}

// Stats summarizes a completed pipeline run.
type Stats struct {
	TotalQuestions int `json:"total_questions"`
	PageCount      int `json:"page_count"`
	WordCount      int `json:"word_count"`
}

// Result is the output of a successful pipeline run.
type Result struct {
	Records []content.Record `json:"records"`
	Stats   Stats            `json:"stats"`
}

// System processes a document into reviewable question-answer records.
// Implementations must invoke onProgress zero or more times in
// non-decreasing stage order before returning.
type System interface {
	Process(ctx context.Context, input Input, onProgress ProgressFunc) (*Result, error)
}
