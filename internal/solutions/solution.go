// Package solutions manages published chapter solutions: the reviewed
// question-answer sets approved through the review gate, their JSONL
// artifacts in blob storage, and tier-gated read access.
package solutions

import (
	"time"

	"github.com/studynova/ingest/internal/content"
)

// Solution tiers. Published solutions default to pro.
const (
	TierPro  = "pro"
	TierFree = "free"
)

// Solution is a published, reviewed question-answer set for one chapter.
// The ID is derived from the chapter metadata slug, so republishing the
// same chapter replaces the previous solution.
type Solution struct {
	ID             string           `json:"id"`
	Filename       string           `json:"filename"`
	Metadata       content.Metadata `json:"metadata"`
	Records        []content.Record `json:"qa_pairs"`
	TotalQuestions int              `json:"total_questions"`
	Tier           string           `json:"tier"`
	StorageKey     string           `json:"storage_key"`
	ApprovedAt     time.Time        `json:"approved_at"`
}

// PublishCommand contains the data required to publish a solution.
type PublishCommand struct {
	Filename string
	Metadata content.Metadata
	Records  []content.Record
}
