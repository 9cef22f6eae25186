// Package tsv provides the shared field-level utilities used by the
// tsv-utils commands.
//
// It covers three concerns:
//   - parsing user-supplied field lists (numbers, ranges, and header names)
//     into ordered zero-based field indices
//   - tokenizing a delimited line into ordered byte spans for a set of
//     field indices, without copying field data
//   - reading lines of arbitrary length from a stream through a fixed-size
//     buffer
//
// All functions treat one input line as one logical record: delimiters and
// newlines embedded in quoted CSV fields are not interpreted here.
package tsv
