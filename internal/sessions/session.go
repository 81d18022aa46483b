// Package sessions manages staged ingestion sessions: PDF upload, background
// processing with weighted progress aggregation, and handoff to review on
// completion. Sessions reach exactly one terminal state.
package sessions

import (
	"time"

	"github.com/google/uuid"

	"github.com/studynova/ingest/internal/content"
	"github.com/studynova/ingest/pkg/progress"
)

// Session statuses. Completed and failed are terminal.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Terminal reports whether a status admits no further transitions.
func Terminal(status string) bool {
	return status == StatusCompleted || status == StatusFailed
}

// Session represents one document's journey through the ingestion pipeline.
type Session struct {
	ID              uuid.UUID        `json:"id"`
	Filename        string           `json:"filename"`
	Metadata        content.Metadata `json:"metadata"`
	Status          string           `json:"status"`
	Stage           progress.Stage   `json:"stage"`
	StageProgress   int              `json:"stage_progress"`
	OverallProgress int              `json:"overall_progress"`
	Message         string           `json:"message"`
	TotalRecords    int              `json:"total_records"`
	ReviewID        *uuid.UUID       `json:"review_id,omitempty"`
	StorageKey      string           `json:"storage_key"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// StartCommand contains the data required to start an ingestion session.
// Data holds the raw PDF bytes.
type StartCommand struct {
	Filename    string
	ContentType string
	Metadata    content.Metadata
	Data        []byte
}
