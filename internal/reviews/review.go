// Package reviews holds the pending-review set: question-answer records
// awaiting human approval. Records are edited in place with stable numbering
// and a review leaves the set through exactly one approve or reject decision.
package reviews

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/studynova/ingest/internal/content"
)

// StatusPending is the only review status; deciding removes the row.
const StatusPending = "pending"

// Review is a processed document's record set awaiting a decision.
// Version increments on every record mutation and guards decisions
// against concurrent edits.
type Review struct {
	ID             uuid.UUID        `json:"id"`
	SessionID      uuid.UUID        `json:"session_id"`
	Filename       string           `json:"filename"`
	Metadata       content.Metadata `json:"metadata"`
	Records        []content.Record `json:"qa_pairs"`
	TotalQuestions int              `json:"total_questions"`
	Status         string           `json:"status"`
	Version        int              `json:"version"`
	ProcessedAt    time.Time        `json:"processed_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// UpdateRecord replaces the question and answer of records[index], trimming
// input and stamping the edit marker. Only the addressed record changes.
func (r *Review) UpdateRecord(index int, question, answer string) error {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return ErrEmptyRecord
	}

	if index < 0 || index >= len(r.Records) {
		return ErrRecordNotFound
	}

	now := time.Now().UTC()
	rec := r.Records[index]
	rec.Question = question
	rec.Answer = answer
	rec.UpdatedAt = &now
	r.Records[index] = rec
	return nil
}

// Placeholder text seeded into manually added records. A record still
// carrying these values has not been filled in by the reviewer.
const (
	PlaceholderQuestion = "New question..."
	PlaceholderAnswer   = "New answer..."
)

// AddRecord appends a placeholder record for the reviewer to fill in.
func (r *Review) AddRecord() content.Record {
	rec := content.Record{
		RecordNumber: len(r.Records) + 1,
		Question:     PlaceholderQuestion,
		Answer:       PlaceholderAnswer,
		Confidence:   content.ManualConfidence,
		ExtractedAt:  time.Now().UTC(),
	}
	r.Records = append(r.Records, rec)
	return rec
}

// RemoveRecord deletes records[index]. Remaining records keep their numbers;
// counts always derive from the array length.
func (r *Review) RemoveRecord(index int) error {
	if index < 0 || index >= len(r.Records) {
		return ErrRecordNotFound
	}

	r.Records = append(r.Records[:index], r.Records[index+1:]...)
	return nil
}

// CreateCommand contains the data required to create a pending review.
type CreateCommand struct {
	SessionID uuid.UUID
	Filename  string
	Metadata  content.Metadata
	Records   []content.Record
}

// UpdateRecordCommand carries replacement text for one record.
type UpdateRecordCommand struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DecideCommand resolves a review. Version must match the review's current
// version so a decision never publishes records the reviewer has not seen.
type DecideCommand struct {
	Approved bool `json:"approved"`
	Version  int  `json:"version"`
}

// Decision reports the outcome of a resolved review.
type Decision struct {
	ReviewID   uuid.UUID `json:"review_id"`
	Approved   bool      `json:"approved"`
	SolutionID string    `json:"solution_id,omitempty"`
}
