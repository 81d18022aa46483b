package sessions

import (
	"net/url"

	"github.com/studynova/ingest/pkg/query"
)

// Filters contains optional criteria for filtering session queries.
type Filters struct {
	Status  *string
	Board   *string
	Class   *string
	Subject *string
}

// FiltersFromQuery extracts session filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.Status = &s
	}

	if b := values.Get("board"); b != "" {
		f.Board = &b
	}

	if c := values.Get("class"); c != "" {
		f.Class = &c
	}

	if sub := values.Get("subject"); sub != "" {
		f.Subject = &sub
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Status != nil {
		b.WhereEquals("Status", *f.Status)
	}

	return b.
		WhereContains("Board", f.Board).
		WhereContains("Class", f.Class).
		WhereContains("Subject", f.Subject)
}
