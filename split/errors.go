package split

import (
	"errors"
	"fmt"
)

// Sentinel errors for package split.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Configuration errors, all detected before any I/O
	ErrModeRequired     = errors.New("one of lines-per-file or num-files is required")
	ErrModeConflict     = errors.New("lines-per-file and num-files are mutually exclusive")
	ErrNumFilesTooSmall = errors.New("num-files must be at least two")
	ErrKeyFieldsMode    = errors.New("key-fields is only valid with num-files")
	ErrWholeLineKeyMix  = errors.New("whole-line key (field 0) cannot be combined with other key fields")
	ErrHeaderConflict   = errors.New("header and header-in-only are mutually exclusive")
	ErrNotADirectory    = errors.New("output path is not a directory")

	// Open-file budget errors
	ErrOpenFilesTooSmall  = errors.New("open files limit must exceed the reserved descriptor count")
	ErrOpenFilesExceedsOS = errors.New("open files limit exceeds the process file descriptor limit")

	// Input validation errors
	ErrWindowsLineEnding = errors.New("Windows line ending found, expected Unix line endings")
)

// PreexistingOutputError reports an output file that already exists when a
// run was started without append mode.
type PreexistingOutputError struct {
	Path string
}

func (e *PreexistingOutputError) Error() string {
	return fmt.Sprintf("output file already exists: %s (use append mode to extend it)", e.Path)
}

// MissingFieldError reports an input line with fewer fields than the
// configured key fields require. It carries the input name and one-based
// line number and wraps the extraction error.
type MissingFieldError struct {
	File string
	Line int64
	Err  error
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s, line %d: %v", e.File, e.Line, e.Err)
}

func (e *MissingFieldError) Unwrap() error {
	return e.Err
}
