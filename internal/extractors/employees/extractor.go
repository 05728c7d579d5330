// Package employees extracts a head count from free text, estimating the
// midpoint when the text gives a range such as "100-200".
package employees

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/companynorm/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.FieldExtractor = (*Extractor)(nil)

var (
	// Hyphen, en dash and em dash all separate range bounds. The padding
	// may include Unicode spaces such as U+00A0.
	rangePattern  = regexp.MustCompile(`(\d+)[\s\p{Z}]*[-–—][\s\p{Z}]*(\d+)`)
	digitsPattern = regexp.MustCompile(`\d+`)

	thousandsSeparators = strings.NewReplacer(",", "", ".", "")
)

// Extractor parses employee counts.
type Extractor struct{}

// New creates a new employee count extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "employees"
}

// Extract returns the employee count in value.
// Periods and commas are removed before any matching, so "1.000-2.000"
// reads as the range 1000 to 2000. A range yields the truncated mean of
// its bounds.
func (e *Extractor) Extract(value any) (int64, bool) {
	text, ok := value.(string)
	if !ok {
		return 0, false
	}

	text = thousandsSeparators.Replace(text)

	if m := rangePattern.FindStringSubmatch(text); m != nil {
		lo, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, false
		}
		hi, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return 0, false
		}
		return lo/2 + hi/2 + (lo%2+hi%2)/2, true
	}

	match := digitsPattern.FindString(text)
	if match == "" {
		return 0, false
	}

	n, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
