package internal_content_test

import (
	"testing"
	"time"

	"github.com/studynova/ingest/internal/content"
)

func TestMetadata_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		meta content.Metadata
		want []string
	}{
		{
			"all present",
			content.Metadata{Board: "cbse", Class: "10", Subject: "mathematics", Chapter: "Real Numbers"},
			nil,
		},
		{
			"all missing",
			content.Metadata{},
			[]string{"board", "class", "subject", "chapter"},
		},
		{
			"whitespace counts as missing",
			content.Metadata{Board: "  ", Class: "10", Subject: "science", Chapter: "Light"},
			[]string{"board"},
		},
		{
			"declaration order preserved",
			content.Metadata{Class: "9", Chapter: "Motion"},
			[]string{"board", "subject"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.meta.MissingFields()
			if len(got) != len(tt.want) {
				t.Fatalf("MissingFields() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("MissingFields()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMetadata_Slug(t *testing.T) {
	tests := []struct {
		name string
		meta content.Metadata
		want string
	}{
		{
			"simple",
			content.Metadata{Board: "cbse", Class: "10", Subject: "mathematics", Chapter: "Real Numbers"},
			"cbse-class10-mathematics-real-numbers",
		},
		{
			"uppercase and punctuation",
			content.Metadata{Board: "CBSE", Class: "10", Subject: "Science", Chapter: "Acids, Bases and Salts"},
			"cbse-class10-science-acids-bases-and-salts",
		},
		{
			"surrounding whitespace",
			content.Metadata{Board: " icse ", Class: "9 ", Subject: "physics", Chapter: " Motion "},
			"icse-class9-physics-motion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meta.Slug(); got != tt.want {
				t.Errorf("Slug() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_Edited(t *testing.T) {
	record := content.Record{Question: "What is a rational number?", Answer: "A number expressible as p/q."}
	if record.Edited() {
		t.Error("Edited() = true for untouched record")
	}

	now := time.Now()
	record.UpdatedAt = &now
	if !record.Edited() {
		t.Error("Edited() = false after UpdatedAt set")
	}
}
