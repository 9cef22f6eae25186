package tsv

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFieldList parses a comma-separated field specification into an
// ordered list of zero-based field indices.
//
// Each entry is a one-based field number ("3"), an inclusive range ("2-5",
// descending ranges like "5-2" are allowed), or, when header is non-nil, a
// field name matched against the header fields. Indices are returned in the
// order given and may repeat.
//
// Zero is rejected here; callers that treat "0" as a whole-line sentinel
// must handle it before parsing.
func ParseFieldList(spec string, header []string) ([]int, error) {
	if spec == "" {
		return nil, ErrEmptyFieldList
	}

	var indices []int
	for _, entry := range strings.Split(spec, ",") {
		if entry == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadFieldSpec, spec)
		}

		lo, hi, ok := parseRange(entry)
		if ok {
			if lo == 0 || hi == 0 {
				return nil, fmt.Errorf("%w: %q", ErrZeroFieldIndex, entry)
			}
			if lo <= hi {
				for i := lo; i <= hi; i++ {
					indices = append(indices, i-1)
				}
			} else {
				for i := lo; i >= hi; i-- {
					indices = append(indices, i-1)
				}
			}
			continue
		}

		if n, err := strconv.Atoi(entry); err == nil {
			if n <= 0 {
				return nil, fmt.Errorf("%w: %q", ErrZeroFieldIndex, entry)
			}
			indices = append(indices, n-1)
			continue
		}

		// Not numeric, resolve as a header field name.
		if header == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoHeaderForName, entry)
		}
		idx := -1
		for i, name := range header {
			if name == entry {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, entry)
		}
		indices = append(indices, idx)
	}

	if len(indices) == 0 {
		return nil, ErrEmptyFieldList
	}
	return indices, nil
}

// parseRange parses "a-b" where both sides are non-negative integers.
// Entries with a leading dash are not ranges (they would be negative numbers).
func parseRange(entry string) (lo, hi int, ok bool) {
	dash := strings.IndexByte(entry, '-')
	if dash <= 0 || dash == len(entry)-1 {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(entry[:dash])
	if err != nil || lo < 0 {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(entry[dash+1:])
	if err != nil || hi < 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

// MaxIndex returns the largest index in a field list produced by
// ParseFieldList. It returns -1 for an empty list.
func MaxIndex(indices []int) int {
	max := -1
	for _, i := range indices {
		if i > max {
			max = i
		}
	}
	return max
}
