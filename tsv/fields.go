package tsv

import (
	"bytes"
	"fmt"
)

// ExtractFields tokenizes line on delim and returns the byte spans for the
// requested zero-based field indices, in the order given. The returned
// slices alias line; they are valid only until line's backing array is
// reused.
//
// An index past the last field of the line yields an error wrapping
// ErrFieldOutOfRange with the observed field count.
func ExtractFields(line []byte, indices []int, delim byte) ([][]byte, error) {
	// Split one span past the highest requested field so the last requested
	// span is a real field, not the unsplit remainder of the line.
	need := MaxIndex(indices)
	spans := SplitFields(line, delim, need+2)
	if need >= len(spans) {
		return nil, fmt.Errorf("%w: need field %d, line has %d",
			ErrFieldOutOfRange, need+1, CountFields(line, delim))
	}

	out := make([][]byte, len(indices))
	for i, idx := range indices {
		out[i] = spans[idx]
	}
	return out, nil
}

// SplitFields splits line on delim into at most max field spans, scanning
// only as far as needed. A max of 0 or less splits the whole line. The
// spans alias line.
func SplitFields(line []byte, delim byte, max int) [][]byte {
	var spans [][]byte
	rest := line
	for max <= 0 || len(spans) < max {
		i := bytes.IndexByte(rest, delim)
		if i < 0 {
			spans = append(spans, rest)
			break
		}
		spans = append(spans, rest[:i])
		rest = rest[i+1:]
	}
	return spans
}

// CountFields returns the number of delimiter-separated fields on line.
// An empty line still has one (empty) field, matching SplitFields.
func CountFields(line []byte, delim byte) int {
	return bytes.Count(line, []byte{delim}) + 1
}
