package driving

import (
	"github.com/custodia-labs/companynorm/internal/core/domain"
)

// RecordNormaliser converts the recognised free-text fields of a record
// into typed values.
type RecordNormaliser interface {
	// Normalise returns a new record with the same keys in the same order.
	// Recognised fields hold an int64 or nil; all others are copied as is.
	Normalise(rec domain.Record) domain.Record
}
