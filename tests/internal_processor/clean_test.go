package internal_processor_test

import (
	"testing"

	"github.com/studynova/ingest/internal/processor"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			"page markers removed",
			"--- Page 1 ---\nReal numbers include rationals.\n--- Page 2 ---",
			"Real numbers include rationals.",
		},
		{
			"camel case run split",
			"rationalNumbers are dense",
			"rational Numbers are dense",
		},
		{
			"sentence boundary split",
			"This is a sentence.Next sentence starts here.",
			"This is a sentence. Next sentence starts here.",
		},
		{
			"letter digit runs split",
			"chapter1 covers exercise2b",
			"chapter 1 covers exercise 2 b",
		},
		{
			"whitespace collapsed",
			"too   many\n\n  spaces\there",
			"too many spaces here",
		},
		{
			"surrounding whitespace trimmed",
			"  padded text  ",
			"padded text",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := processor.CleanText(tt.raw); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
