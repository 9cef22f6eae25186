package tsv

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAllLines(t *testing.T, lr *LineReader) []string {
	t.Helper()
	var lines []string
	for {
		line, err := lr.ReadLine()
		if err == io.EOF {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, string(line))
	}
}

func TestLineReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "terminated lines", input: "a\nbb\nccc\n", want: []string{"a", "bb", "ccc"}},
		{name: "unterminated final line", input: "a\nb", want: []string{"a", "b"}},
		{name: "empty lines", input: "\n\nx\n", want: []string{"", "", "x"}},
		{name: "empty input", input: "", want: nil},
		{name: "carriage returns kept", input: "a\r\nb\n", want: []string{"a\r", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lr := NewLineReader(strings.NewReader(tt.input))
			assert.Equal(t, tt.want, readAllLines(t, lr))
		})
	}
}

func TestLineReaderLongLines(t *testing.T) {
	// Lines several times the internal buffer must come back intact.
	long := strings.Repeat("x", 100)
	input := long + "\nshort\n" + long + long
	lr := NewLineReaderSize(strings.NewReader(input), 16)

	lines := readAllLines(t, lr)
	require.Len(t, lines, 3)
	assert.Equal(t, long, lines[0])
	assert.Equal(t, "short", lines[1])
	assert.Equal(t, long+long, lines[2])
}

func TestLineReaderSmallBuffers(t *testing.T) {
	input := "alpha\nbeta\ngamma\n"
	for size := 16; size <= 64; size *= 2 {
		lr := NewLineReaderSize(strings.NewReader(input), size)
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, readAllLines(t, lr), "buffer size %d", size)
	}
}
