package extractors

import (
	"sort"

	"github.com/custodia-labs/companynorm/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps field names to their extractors.
type Registry struct {
	extractors map[string]driven.FieldExtractor
}

// NewRegistry creates a new empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[string]driven.FieldExtractor),
	}
}

// Register binds an extractor to a field name.
// Registering the same field again replaces the previous extractor.
func (r *Registry) Register(field string, extractor driven.FieldExtractor) {
	r.extractors[field] = extractor
}

// Lookup returns the extractor for a field name.
func (r *Registry) Lookup(field string) (driven.FieldExtractor, bool) {
	e, ok := r.extractors[field]
	return e, ok
}

// Has returns true if the field name is recognised.
func (r *Registry) Has(field string) bool {
	_, ok := r.extractors[field]
	return ok
}

// Fields returns all recognised field names in sorted order.
func (r *Registry) Fields() []string {
	names := make([]string, 0, len(r.extractors))
	for name := range r.extractors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
