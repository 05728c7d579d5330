// Package money extracts Euro amounts from free-text turnover fields such
// as "10 Mio. €", "$5 Million" or "2 Mrd. CHF".
package money

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/companynorm/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.FieldExtractor = (*Extractor)(nil)

// Currency maps a marker found in the text to its rate against the Euro.
type Currency struct {
	Marker string
	Rate   float64
}

// scale maps a scale word to the factor it applies to the preceding number.
type scale struct {
	Word   string
	Factor float64
}

// DefaultCurrencies returns the built-in currency table.
// Order matters: the first entry whose marker occurs anywhere in the text
// wins, regardless of where in the text the markers appear.
func DefaultCurrencies() []Currency {
	return []Currency{
		{Marker: "€", Rate: 1},
		{Marker: "Euro", Rate: 1},
		{Marker: "EUR", Rate: 1},
		{Marker: "$", Rate: 0.93},
		{Marker: "CHF", Rate: 1.05},
	}
}

// scales is matched case-insensitively. Longer words precede their
// prefixes so that "Millionen" is not read as "M".
var scales = []scale{
	{Word: "Millionen", Factor: 1e6},
	{Word: "Million", Factor: 1e6},
	{Word: "Mill.", Factor: 1e6},
	{Word: "Mio", Factor: 1e6},
	{Word: "Mrd", Factor: 1e9},
	{Word: "Billion", Factor: 1e9},
	{Word: "Bill.", Factor: 1e9},
	{Word: "M", Factor: 1e6},
	{Word: "B", Factor: 1e9},
}

const (
	numberExpr = `\d+[.,]?\d*`

	// spaceExpr also matches Unicode spaces such as U+00A0, which scraped
	// pages emit for "&nbsp;" between amount and scale word.
	spaceExpr = `[\s\p{Z}]*`
)

var (
	numberPattern       = regexp.MustCompile(numberExpr)
	scaledNumberPattern = regexp.MustCompile(`(?i)(` + numberExpr + `)` + spaceExpr + `(` + scaleAlternation() + `)`)
)

func scaleAlternation() string {
	words := make([]string, len(scales))
	for i, s := range scales {
		words[i] = regexp.QuoteMeta(s.Word)
	}
	return strings.Join(words, "|")
}

// Extractor parses money fields into whole Euro.
type Extractor struct {
	currencies []Currency
}

// Option configures the money extractor.
type Option func(*Extractor)

// WithCurrencies replaces the currency table. An empty table is ignored.
func WithCurrencies(currencies []Currency) Option {
	return func(e *Extractor) {
		if len(currencies) > 0 {
			e.currencies = append([]Currency(nil), currencies...)
		}
	}
}

// New creates a new money extractor with the given options.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		currencies: DefaultCurrencies(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Name returns the extractor name.
func (e *Extractor) Name() string {
	return "money"
}

// Currencies returns a copy of the currency table in match order.
func (e *Extractor) Currencies() []Currency {
	return append([]Currency(nil), e.currencies...)
}

// Extract returns the amount in value converted to Euro and truncated
// toward zero. Only one currency marker is applied even if several occur.
func (e *Extractor) Extract(value any) (int64, bool) {
	text, ok := value.(string)
	if !ok {
		return 0, false
	}

	rate := 1.0
	for _, c := range e.currencies {
		if strings.Contains(text, c.Marker) {
			rate = c.Rate
			text = strings.ReplaceAll(text, c.Marker, "")
			break
		}
	}

	if strings.TrimSpace(text) == "" {
		return 0, false
	}

	num, factor := findNumber(text)
	if num == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", "."), 64)
	if err != nil {
		return 0, false
	}

	amount := math.Trunc(f * factor * rate)
	if amount >= math.MaxInt64 || amount < math.MinInt64 {
		return 0, false
	}
	return int64(amount), true
}

// findNumber prefers a number followed by a scale word and falls back to
// the first bare number. It returns an empty string when there is none.
func findNumber(text string) (string, float64) {
	if m := scaledNumberPattern.FindStringSubmatch(text); m != nil {
		return m[1], scaleFactor(m[2])
	}
	return numberPattern.FindString(text), 1
}

func scaleFactor(word string) float64 {
	for _, s := range scales {
		if strings.EqualFold(s.Word, word) {
			return s.Factor
		}
	}
	return 1
}
