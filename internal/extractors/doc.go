// Package extractors provides the registry that binds record field names
// to FieldExtractor implementations. Each extractor lives in its own
// subpackage and knows how to parse one kind of free-text value.
//
// Extractors are registered with the Registry at startup.
package extractors
