// Package file provides file-based configuration for companynorm.
//
// The configuration file is optional TOML. It can replace the currency
// table used by the money extractor:
//
//	[[currency]]
//	marker = "€"
//	rate = 1.0
//
// Entries are matched in file order.
package file
