// Package main provides the tsv-utils command-line interface.
//
// tsv-utils is a suite of Unix-style utilities for line-oriented TSV/CSV
// data. One input line is one logical record; fields are separated by a
// single delimiter byte with no quoting or escaping, so the tools compose
// cleanly in shell pipelines.
//
// The main binary supports multiple subcommands:
//   - split: Partition input lines into multiple output files by line
//     count, at random, or by a hash of key fields
//   - cut: Select and reorder fields from input lines
//
// Each tool is also available as a standalone binary under cmd/.
package main
