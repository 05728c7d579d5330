package driven

// FieldExtractor turns the free-text value of one record field into an
// integer. Extractors are pure: the same value always yields the same result.
type FieldExtractor interface {
	// Name returns the extractor name for logging and registry lookup.
	Name() string

	// Extract parses value. It returns false when value is not a string
	// or holds no usable number; that is never an error.
	Extract(value any) (int64, bool)
}

// ExtractorRegistry maps recognised field names to their extractors.
// The set of recognised names is fixed configuration, never inferred
// from the data.
type ExtractorRegistry interface {
	// Lookup returns the extractor for a field name.
	Lookup(field string) (FieldExtractor, bool)

	// Has returns true if the field name is recognised.
	Has(field string) bool
}
