package processor

import (
	"regexp"
	"strings"
)

var (
	pageMarkerPattern = regexp.MustCompile(`--- Page \d+ ---`)
	camelCasePattern  = regexp.MustCompile(`([a-z])([A-Z])`)
	periodCapPattern  = regexp.MustCompile(`(\.)([A-Z])`)
	letterDigitRun    = regexp.MustCompile(`([a-z])(\d)`)
	digitLetterRun    = regexp.MustCompile(`(\d)([a-z])`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// CleanText repairs common PDF extraction artifacts: page markers, words
// run together across style boundaries, and irregular whitespace.
func CleanText(raw string) string {
	text := pageMarkerPattern.ReplaceAllString(raw, "")
	text = camelCasePattern.ReplaceAllString(text, "$1 $2")
	text = periodCapPattern.ReplaceAllString(text, "$1 $2")
	text = letterDigitRun.ReplaceAllString(text, "$1 $2")
	text = digitLetterRun.ReplaceAllString(text, "$1 $2")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// wordCount counts whitespace-separated tokens.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
