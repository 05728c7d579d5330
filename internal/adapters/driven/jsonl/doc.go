// Package jsonl provides line-delimited JSON implementations of the
// RecordSource and RecordSink ports.
//
// Each line holds one JSON object. Field order is preserved from input to
// output, and output keeps non-ASCII and HTML-significant characters
// literal instead of escaping them.
package jsonl
