// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - FieldExtractor: Parses one free-text field into an integer
//   - RecordSource: Streams records from line-delimited JSON input
//   - RecordSink: Streams records to line-delimited JSON output
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
