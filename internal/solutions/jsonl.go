package solutions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/studynova/ingest/internal/content"
)

// jsonlRecord is the per-line artifact format consumed by downstream
// training and import jobs. One record per line.
type jsonlRecord struct {
	ID         string        `json:"id"`
	Question   string        `json:"question"`
	Answer     string        `json:"answer"`
	Metadata   jsonlMetadata `json:"metadata"`
	Confidence float64       `json:"confidence,omitempty"`
}

type jsonlMetadata struct {
	content.Metadata
	QuestionIndex  int        `json:"question_index"`
	TotalQuestions int        `json:"total_questions"`
	ExtractedAt    time.Time  `json:"extracted_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// EncodeJSONL renders the solution records as a JSONL document.
func EncodeJSONL(meta content.Metadata, records []content.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	for _, rec := range records {
		line := jsonlRecord{
			ID:       fmt.Sprintf("%s-%s-%s-%d", meta.Board, meta.Class, meta.Subject, rec.RecordNumber),
			Question: rec.Question,
			Answer:   rec.Answer,
			Metadata: jsonlMetadata{
				Metadata:       meta,
				QuestionIndex:  rec.RecordNumber,
				TotalQuestions: len(records),
				ExtractedAt:    rec.ExtractedAt,
				UpdatedAt:      rec.UpdatedAt,
			},
			Confidence: rec.Confidence,
		}

		if err := enc.Encode(line); err != nil {
			return nil, fmt.Errorf("encode record %d: %w", rec.RecordNumber, err)
		}
	}

	return buf.Bytes(), nil
}
