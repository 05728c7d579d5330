package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/custodia-labs/companynorm/internal/core/domain"
	"github.com/custodia-labs/companynorm/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.RecordSource = (*Reader)(nil)

// Reader decodes one record per line from an input stream.
// Lines may be of any length; the final line may lack a newline.
type Reader struct {
	r    *bufio.Reader
	line int
}

// NewReader creates a new line-delimited JSON reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: bufio.NewReader(r),
	}
}

// Next decodes the next line into a record.
// Returns io.EOF once the input is exhausted.
func (r *Reader) Next() (domain.Record, error) {
	data, err := r.r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return domain.Record{}, fmt.Errorf("read line %d: %w", r.line+1, err)
	}
	if len(data) == 0 && errors.Is(err, io.EOF) {
		return domain.Record{}, io.EOF
	}

	r.line++

	rec, decodeErr := DecodeRecord(data)
	if decodeErr != nil {
		return domain.Record{}, fmt.Errorf("line %d: %w", r.line, decodeErr)
	}
	return rec, nil
}

// Line returns the 1-based number of the line last read.
func (r *Reader) Line() int {
	return r.line
}

// DecodeRecord decodes a single JSON object, keeping its key order.
// Numbers, nested ones included, are kept as json.Number so they are
// written back with their original digits.
// Anything other than exactly one object returns an error wrapping
// domain.ErrMalformedRecord.
func DecodeRecord(data []byte) (domain.Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return domain.Record{}, fmt.Errorf("%w: not a JSON object", domain.ErrMalformedRecord)
	}

	om := orderedmap.New[string, json.RawMessage]()
	if err := om.UnmarshalJSON(trimmed); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %w", domain.ErrMalformedRecord, err)
	}

	fields := make([]domain.Field, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		value, err := decodeValue(pair.Value)
		if err != nil {
			return domain.Record{}, fmt.Errorf("%w: field %q: %w", domain.ErrMalformedRecord, pair.Key, err)
		}
		fields = append(fields, domain.Field{Name: pair.Key, Value: value})
	}
	return domain.Record{Fields: fields}, nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
