package split

import (
	"bytes"
	"fmt"
	"io"

	"github.com/eBay/tsv-utils-sub002/tsv"
)

// Run validates cfg and performs the split, dispatching to exactly one of
// the two write paths: the fixed-block splitter, or the shard assigner
// feeding the bounded output pool. All open output files are flushed and
// closed on every return path.
func Run(cfg *Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.LinesPerFile > 0 {
		return runFixedBlock(cfg)
	}
	return runSharded(cfg)
}

func runFixedBlock(cfg *Config) (err error) {
	s := newBlockSplitter(cfg)
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for i, name := range cfg.inputNames() {
		r, display, err := cfg.openInput(name)
		if err != nil {
			return err
		}
		perr := s.processFile(display, r, i == 0)
		r.Close()
		if perr != nil {
			return perr
		}
	}
	return nil
}

func runSharded(cfg *Config) (err error) {
	maxOpen, err := resolveOpenFilesLimit(cfg.MaxOpenFiles)
	if err != nil {
		return err
	}
	if maxOpen > cfg.NumFiles {
		maxOpen = cfg.NumFiles
	}

	pool := newOutputPool(cfg.NumFiles, cfg.dir(), cfg.Prefix, cfg.Suffix,
		cfg.HeaderMode == HeaderWriteAll, maxOpen)
	if err := pool.preflight(cfg.Append); err != nil {
		return err
	}
	defer func() {
		if cerr := pool.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	assigner := newAssigner(cfg)
	for i, name := range cfg.inputNames() {
		if err := shardInput(cfg, pool, assigner, name, i == 0); err != nil {
			return err
		}
	}
	return nil
}

// lineState classifies the next line of the current input file.
type lineState int

const (
	headerLine lineState = iota
	streaming
)

// shardInput streams one input through the assigner into the pool. When
// header handling is on, line one of the first file becomes the header and
// line one of every later file is read and discarded.
func shardInput(cfg *Config, pool *outputPool, assigner shardAssigner, name string, first bool) error {
	r, display, err := cfg.openInput(name)
	if err != nil {
		return err
	}
	defer r.Close()

	state := streaming
	if cfg.HeaderMode != HeaderNone {
		state = headerLine
	}

	lr := tsv.NewLineReader(r)
	var lineNum int64
	for {
		line, err := lr.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", display, err)
		}
		lineNum++

		if lineNum == 1 && bytes.HasSuffix(line, []byte{'\r'}) {
			return fmt.Errorf("%s: %w", display, ErrWindowsLineEnding)
		}

		if state == headerLine {
			if first && cfg.HeaderMode == HeaderWriteAll {
				pool.setHeader(line)
			}
			state = streaming
			continue
		}

		shard, aerr := assigner.assign(line)
		if aerr != nil {
			return &MissingFieldError{File: display, Line: lineNum, Err: aerr}
		}
		if werr := pool.write(shard, line); werr != nil {
			return werr
		}
	}
}
