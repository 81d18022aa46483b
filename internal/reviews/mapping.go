package reviews

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/studynova/ingest/pkg/query"
	"github.com/studynova/ingest/pkg/repository"
)

var projection = query.NewProjectionMap("public", "reviews", "r").
	Project("id", "Id").
	Project("session_id", "SessionId").
	Project("filename", "Filename").
	Project("board", "Board").
	Project("class", "Class").
	Project("subject", "Subject").
	Project("chapter", "Chapter").
	Project("qa_pairs", "QaPairs").
	Project("total_questions", "TotalQuestions").
	Project("status", "Status").
	Project("version", "Version").
	Project("processed_at", "ProcessedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "ProcessedAt", Descending: true}

func scanReview(s repository.Scanner) (Review, error) {
	var r Review
	var pairs []byte
	err := s.Scan(
		&r.ID,
		&r.SessionID,
		&r.Filename,
		&r.Metadata.Board,
		&r.Metadata.Class,
		&r.Metadata.Subject,
		&r.Metadata.Chapter,
		&pairs,
		&r.TotalQuestions,
		&r.Status,
		&r.Version,
		&r.ProcessedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return r, err
	}

	if err := json.Unmarshal(pairs, &r.Records); err != nil {
		return r, fmt.Errorf("decode qa_pairs: %w", err)
	}
	return r, nil
}

// Filters contains optional criteria for filtering review queries.
type Filters struct {
	Board   *string
	Class   *string
	Subject *string
}

// FiltersFromQuery extracts review filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if b := values.Get("board"); b != "" {
		f.Board = &b
	}

	if c := values.Get("class"); c != "" {
		f.Class = &c
	}

	if s := values.Get("subject"); s != "" {
		f.Subject = &s
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Board", f.Board).
		WhereContains("Class", f.Class).
		WhereContains("Subject", f.Subject)
}
