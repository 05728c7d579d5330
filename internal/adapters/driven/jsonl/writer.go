package jsonl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/custodia-labs/companynorm/internal/core/domain"
	"github.com/custodia-labs/companynorm/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.RecordSink = (*Writer)(nil)

// Writer encodes one record per line to an output stream.
// Each line is encoded in full before a single Write to the underlying
// writer, so an interrupted run never leaves a partial line.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter creates a new line-delimited JSON writer.
// w is written to directly; wrap it in a bufio.Writer only if losing
// whole lines on interruption is acceptable.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: w,
	}
}

// Write encodes rec as one JSON object followed by a newline.
func (w *Writer) Write(rec domain.Record) error {
	w.buf.Reset()

	if err := EncodeRecord(&w.buf, rec); err != nil {
		return err
	}
	w.buf.WriteByte('\n')

	if _, err := w.w.Write(w.buf.Bytes()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// EncodeRecord appends rec to buf as a compact JSON object in field order.
// Non-ASCII and HTML-significant characters are written literally.
func EncodeRecord(buf *bytes.Buffer, rec domain.Record) error {
	buf.WriteByte('{')
	for i, f := range rec.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(buf, f.Name); err != nil {
			return fmt.Errorf("encode key %q: %w", f.Name, err)
		}
		buf.WriteByte(':')
		if err := encodeValue(buf, f.Value); err != nil {
			return fmt.Errorf("encode field %q: %w", f.Name, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	writeUnescapingSeparators(buf, bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))
	return nil
}

// writeUnescapingSeparators copies encoded JSON to buf, turning the
// \u2028 and \u2029 escapes that encoding/json always emits back into the
// literal characters. Escape pairs are consumed whole, so an escaped
// backslash followed by "u2028" is left alone.
func writeUnescapingSeparators(buf *bytes.Buffer, encoded []byte) {
	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		if c != '\\' || i+1 >= len(encoded) {
			buf.WriteByte(c)
			continue
		}

		rest := encoded[i+1:]
		switch {
		case bytes.HasPrefix(rest, []byte("u2028")):
			buf.WriteRune('\u2028')
			i += len("u2028")
		case bytes.HasPrefix(rest, []byte("u2029")):
			buf.WriteRune('\u2029')
			i += len("u2029")
		default:
			buf.WriteByte(c)
			buf.WriteByte(rest[0])
			i++
		}
	}
}
