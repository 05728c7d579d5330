// Package year extracts a four-digit calendar year from free text such as
// "Gegründet 1990" or "Est. 2005".
package year

import (
	"regexp"
	"strconv"

	"github.com/custodia-labs/companynorm/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.FieldExtractor = (*Extractor)(nil)

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// Extractor parses founding dates into a year.
// It is purely syntactic: no range or plausibility checks are applied.
type Extractor struct{}

// New creates a new year extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "year"
}

// Extract returns the first standalone four-digit token in value.
func (e *Extractor) Extract(value any) (int64, bool) {
	text, ok := value.(string)
	if !ok {
		return 0, false
	}

	match := yearPattern.FindString(text)
	if match == "" {
		return 0, false
	}

	y, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0, false
	}
	return y, true
}
