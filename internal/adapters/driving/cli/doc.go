// Package cli is the command-line driving adapter for companynorm.
//
// The root command takes an input path and an output path and runs the
// normalisation pipeline between them. Either path may be "-" for stdin
// or stdout.
package cli
