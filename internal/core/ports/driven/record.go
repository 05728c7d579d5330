package driven

import (
	"github.com/custodia-labs/companynorm/internal/core/domain"
)

// RecordSource yields records one at a time from an input stream.
type RecordSource interface {
	// Next decodes the next record.
	// Returns io.EOF when the input is exhausted. A line that does not
	// decode as one record returns an error wrapping domain.ErrMalformedRecord.
	Next() (domain.Record, error)

	// Line returns the 1-based number of the line last read.
	Line() int
}

// RecordSink writes records to an output stream.
type RecordSink interface {
	// Write encodes rec and writes it as one complete line.
	// A failed Write leaves no partial line behind.
	Write(rec domain.Record) error
}
