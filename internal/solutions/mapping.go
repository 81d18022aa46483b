package solutions

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/studynova/ingest/pkg/query"
	"github.com/studynova/ingest/pkg/repository"
)

var projection = query.NewProjectionMap("public", "solutions", "sol").
	Project("id", "Id").
	Project("filename", "Filename").
	Project("board", "Board").
	Project("class", "Class").
	Project("subject", "Subject").
	Project("chapter", "Chapter").
	Project("qa_pairs", "QaPairs").
	Project("total_questions", "TotalQuestions").
	Project("tier", "Tier").
	Project("storage_key", "StorageKey").
	Project("approved_at", "ApprovedAt")

var defaultSort = query.SortField{Field: "ApprovedAt", Descending: true}

func scanSolution(s repository.Scanner) (Solution, error) {
	var sol Solution
	var pairs []byte
	err := s.Scan(
		&sol.ID,
		&sol.Filename,
		&sol.Metadata.Board,
		&sol.Metadata.Class,
		&sol.Metadata.Subject,
		&sol.Metadata.Chapter,
		&pairs,
		&sol.TotalQuestions,
		&sol.Tier,
		&sol.StorageKey,
		&sol.ApprovedAt,
	)
	if err != nil {
		return sol, err
	}

	if err := json.Unmarshal(pairs, &sol.Records); err != nil {
		return sol, fmt.Errorf("decode qa_pairs: %w", err)
	}
	return sol, nil
}

// Filters contains optional criteria for filtering solution queries.
type Filters struct {
	Board   *string
	Class   *string
	Subject *string
	Tier    *string
}

// FiltersFromQuery extracts solution filters from URL query parameters.
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

	if t := values.Get("tier"); t != "" {
		f.Tier = &t
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Tier != nil {
		b.WhereEquals("Tier", *f.Tier)
	}

	return b.
		WhereContains("Board", f.Board).
		WhereContains("Class", f.Class).
		WhereContains("Subject", f.Subject)
}
