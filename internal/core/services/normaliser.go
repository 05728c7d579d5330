package services

import (
	"strings"

	"github.com/custodia-labs/companynorm/internal/core/domain"
	"github.com/custodia-labs/companynorm/internal/core/ports/driven"
	"github.com/custodia-labs/companynorm/internal/core/ports/driving"
)

// Ensure NormaliserService implements the interface.
var _ driving.RecordNormaliser = (*NormaliserService)(nil)

// customerRelationsMarker appears in money values scraped from the
// customer relations line ("Kundenbetreuung", "Kundenservice") of a
// profile. Such values are never monetary, whatever digits they contain.
// This is a known pattern of the directory pages and is kept as a single
// special case.
const customerRelationsMarker = "Kunden"

// NormaliserService converts the recognised fields of a record using the
// extractor registered for each field name.
type NormaliserService struct {
	registry driven.ExtractorRegistry
}

// NewNormaliserService creates a new normaliser service.
func NewNormaliserService(registry driven.ExtractorRegistry) *NormaliserService {
	return &NormaliserService{
		registry: registry,
	}
}

// Normalise returns a copy of rec with every recognised field replaced by
// its extracted integer, or nil when nothing could be extracted.
// Unrecognised fields are copied unchanged and the field order is kept.
//
// Recognised fields that already hold integers are not strings and so
// become nil: normalising a record twice is not supported.
func (s *NormaliserService) Normalise(rec domain.Record) domain.Record {
	out := make([]domain.Field, len(rec.Fields))

	for i, f := range rec.Fields {
		out[i] = domain.Field{Name: f.Name, Value: s.normaliseField(f)}
	}

	return domain.Record{Fields: out}
}

func (s *NormaliserService) normaliseField(f domain.Field) any {
	extractor, ok := s.registry.Lookup(f.Name)
	if !ok {
		return f.Value
	}

	if f.Name == domain.FieldMoney && isCustomerRelations(f.Value) {
		return nil
	}

	v, ok := extractor.Extract(f.Value)
	if !ok {
		return nil
	}
	return v
}

func isCustomerRelations(value any) bool {
	text, ok := value.(string)
	return ok && strings.Contains(text, customerRelationsMarker)
}
