// Package split implements the stream-partitioning engine behind the
// tsv-utils split command.
//
// One or more input line streams are divided into multiple output files
// under one of three policies: fixed-size blocks of K lines, uniform-random
// shard assignment, or key-hash shard assignment. The engine bounds its
// memory use with a fixed-size chunk buffer, keeps the number of
// simultaneously open output descriptors under the process file descriptor
// limit, and writes an optional header line exactly once per output file,
// including across repeated append-mode runs.
//
// The entry point is Run, which consumes one immutable Config value and
// dispatches to exactly one of the two write paths: the fixed-block
// splitter, or the shard assigner feeding the bounded output pool.
package split
