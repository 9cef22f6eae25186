package tsv

import "errors"

// Sentinel errors for package tsv.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Field list errors
	ErrEmptyFieldList  = errors.New("empty field list")
	ErrBadFieldSpec    = errors.New("malformed field specification")
	ErrZeroFieldIndex  = errors.New("field numbers are one-based, zero is not a valid field")
	ErrUnknownField    = errors.New("field name not found in header")
	ErrNoHeaderForName = errors.New("named fields require a header line")

	// Field extraction errors
	ErrFieldOutOfRange = errors.New("line has too few fields")
)
