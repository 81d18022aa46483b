// Package content defines the record and metadata types shared by the
// ingestion, review, and publishing domains.
package content

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Metadata classifies an uploaded document. All four fields are required
// before ingestion may begin and are immutable once a session starts.
type Metadata struct {
	Board   string `json:"board"`
	Class   string `json:"class"`
	Subject string `json:"subject"`
	Chapter string `json:"chapter"`
}

// MissingFields returns the names of empty metadata fields in declaration order.
func (m Metadata) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(m.Board) == "" {
		missing = append(missing, "board")
	}
	if strings.TrimSpace(m.Class) == "" {
		missing = append(missing, "class")
	}
	if strings.TrimSpace(m.Subject) == "" {
		missing = append(missing, "subject")
	}
	if strings.TrimSpace(m.Chapter) == "" {
		missing = append(missing, "chapter")
	}
	return missing
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives the published solution identifier from the metadata:
// <board>-class<class>-<subject>-<chapter-slug>, lowercased.
func (m Metadata) Slug() string {
	return fmt.Sprintf("%s-class%s-%s-%s",
		slugify(m.Board),
		slugify(m.Class),
		slugify(m.Subject),
		slugify(m.Chapter),
	)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ManualConfidence is assigned to records authored by a reviewer rather
// than extracted from a document.
const ManualConfidence = 0.8

// Record is one question-answer pair extracted from a document.
// RecordNumber is assigned at extraction time and is not renumbered when
// other records are removed; counts are always derived from slice length.
type Record struct {
	Question     string     `json:"question"`
	Answer       string     `json:"answer"`
	RecordNumber int        `json:"record_number"`
	Confidence   float64    `json:"confidence"`
	ExtractedAt  time.Time  `json:"extracted_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Edited reports whether the record has been modified since extraction.
func (r Record) Edited() bool {
	return r.UpdatedAt != nil
}
