package split

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// HeaderMode selects how the first line of each input file is treated.
type HeaderMode int

const (
	// HeaderNone disables header handling; every line is data.
	HeaderNone HeaderMode = iota
	// HeaderWriteAll strips the header from the inputs and writes it as the
	// first line of every output file that receives data.
	HeaderWriteAll
	// HeaderStripOnly strips the header from the inputs without writing it
	// to any output.
	HeaderStripOnly
)

// DefaultStaticSeed is the seed used when a static but unspecified seed is
// requested, so repeated runs shard identically without the caller picking
// a number.
const DefaultStaticSeed uint32 = 2438424139

// UnpredictableSeed returns a fresh random 32-bit seed. This is the default
// seed source; use DefaultStaticSeed or a caller-supplied value for
// reproducible runs.
func UnpredictableSeed() uint32 {
	u := uuid.New()
	return binary.LittleEndian.Uint32(u[:4])
}

// Config is the complete, immutable description of one split run. Exactly
// one of LinesPerFile or NumFiles must be set. Build it, hand it to Run,
// and do not modify it afterwards.
type Config struct {
	// LinesPerFile > 0 selects fixed-block mode: sequential output files of
	// this many lines each.
	LinesPerFile int64
	// NumFiles >= 2 selects sharded mode with this many output files.
	NumFiles int

	// KeyFields holds ordered zero-based field indices whose bytes decide
	// the shard in key mode. Empty with WholeLineKey false means uniform
	// random assignment.
	KeyFields []int
	// WholeLineKey hashes the entire line instead of extracted fields.
	// Mutually exclusive with KeyFields.
	WholeLineKey bool

	HeaderMode HeaderMode

	// Dir is the output directory; it must already exist. Empty means the
	// current directory.
	Dir    string
	Prefix string
	Suffix string

	// Append extends pre-existing output files instead of rejecting them.
	Append bool

	// Delim separates fields on input lines and joins key fields for
	// hashing. Zero means TAB.
	Delim byte

	// Seed is the resolved 32-bit PRNG/hash seed.
	Seed uint32

	// MaxOpenFiles overrides the open-file budget when > 0; otherwise the
	// budget is resolved from the process file descriptor limit.
	MaxOpenFiles int

	// ChunkSize is the fixed-block read buffer size in bytes; zero means
	// the default. Small values exercise chunk-boundary handling in tests.
	ChunkSize int

	// Inputs are the input file paths; "-" means standard input. Empty
	// means standard input only.
	Inputs []string
	// Stdin overrides os.Stdin as the "-" input source.
	Stdin io.Reader
}

// stdinName is how standard input is reported in diagnostics.
const stdinName = "standard input"

func (cfg *Config) validate() error {
	if cfg.LinesPerFile > 0 && cfg.NumFiles != 0 {
		return ErrModeConflict
	}
	if cfg.LinesPerFile <= 0 && cfg.NumFiles == 0 {
		return ErrModeRequired
	}
	if cfg.NumFiles != 0 && cfg.NumFiles < 2 {
		return fmt.Errorf("%w: got %d", ErrNumFilesTooSmall, cfg.NumFiles)
	}
	if (len(cfg.KeyFields) > 0 || cfg.WholeLineKey) && cfg.NumFiles == 0 {
		return ErrKeyFieldsMode
	}
	if cfg.WholeLineKey && len(cfg.KeyFields) > 0 {
		return ErrWholeLineKeyMix
	}
	for _, f := range cfg.KeyFields {
		if f < 0 {
			return fmt.Errorf("invalid key field index %d", f)
		}
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	return nil
}

// dir returns the output directory with the empty-means-cwd default applied.
func (cfg *Config) dir() string {
	if cfg.Dir == "" {
		return "."
	}
	return cfg.Dir
}

// delim returns the field delimiter with the TAB default applied.
func (cfg *Config) delim() byte {
	if cfg.Delim == 0 {
		return '\t'
	}
	return cfg.Delim
}

// inputNames returns the inputs to process, defaulting to standard input.
func (cfg *Config) inputNames() []string {
	if len(cfg.Inputs) == 0 {
		return []string{"-"}
	}
	return cfg.Inputs
}

// openInput opens one input by name and returns the reader together with
// the display name used in diagnostics.
func (cfg *Config) openInput(name string) (io.ReadCloser, string, error) {
	if name == "-" {
		r := cfg.Stdin
		if r == nil {
			r = os.Stdin
		}
		return io.NopCloser(r), stdinName, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, name, err
	}
	return f, name, nil
}
