package split

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const defaultChunkSize = 64 * 1024

// blockState is the fixed-block splitter's position within the byte stream.
// Modeling it explicitly keeps chunk-boundary handling independent of the
// chunk size.
type blockState int

const (
	// expectingHeader: consuming the first line of an input file, which is
	// captured (first file) or discarded (later files) rather than counted.
	expectingHeader blockState = iota
	// atLineBoundary: the next byte starts a new line.
	atLineBoundary
	// copyingPartialLine: a line was cut by a chunk boundary; its written
	// bytes are already in the current output file.
	copyingPartialLine
)

// blockSplitter writes sequential output files of linesPerFile lines each,
// reading input through a reusable fixed-size chunk buffer. At most one
// output file is open at a time, so it needs no open-file budget. Output is
// byte-exact: partial lines at chunk boundaries are written through
// immediately and continued by the next chunk.
type blockSplitter struct {
	dir          string
	prefix       string
	suffix       string
	linesPerFile int64
	headerMode   HeaderMode
	appendMode   bool

	buf       []byte
	state     blockState
	header    []byte // captured header with terminator, HeaderWriteAll only
	headerBuf []byte // accumulates a header line spanning chunks
	remaining int64  // lines left before the current output file closes
	nextID    int
	out       *os.File
	w         *bufio.Writer

	inputName string
	firstLine bool // CRLF validation pending for the current input
	lastByte  byte // last byte written, for CRLF checks across chunks
}

func newBlockSplitter(cfg *Config) *blockSplitter {
	size := cfg.ChunkSize
	if size <= 0 {
		size = defaultChunkSize
	}
	return &blockSplitter{
		dir:          cfg.dir(),
		prefix:       cfg.Prefix,
		suffix:       cfg.Suffix,
		linesPerFile: cfg.LinesPerFile,
		headerMode:   cfg.HeaderMode,
		appendMode:   cfg.Append,
		buf:          make([]byte, size),
	}
}

// processFile streams one input file through the splitter. The per-output
// line counter carries over from the previous input; only the header state
// is reset per file.
func (s *blockSplitter) processFile(name string, r io.Reader, first bool) error {
	s.inputName = name
	s.firstLine = true
	s.lastByte = 0
	if s.headerMode != HeaderNone {
		s.state = expectingHeader
		s.headerBuf = s.headerBuf[:0]
	} else if s.state == expectingHeader {
		s.state = atLineBoundary
	}

	for {
		n, err := r.Read(s.buf)
		if n > 0 {
			if werr := s.consume(s.buf[:n], first); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
	}

	// A file whose only line is an unterminated header.
	if s.state == expectingHeader && len(s.headerBuf) > 0 {
		if err := s.finishHeader(first); err != nil {
			return err
		}
	}
	return nil
}

// consume scans the unconsumed portion of one chunk, locating line
// terminators by direct byte scan and crediting them against the current
// output file's remaining-line counter.
func (s *blockSplitter) consume(chunk []byte, first bool) error {
	pos := 0
	for pos < len(chunk) {
		switch s.state {
		case expectingHeader:
			i := bytes.IndexByte(chunk[pos:], '\n')
			if i < 0 {
				s.headerBuf = append(s.headerBuf, chunk[pos:]...)
				return nil
			}
			s.headerBuf = append(s.headerBuf, chunk[pos:pos+i]...)
			pos += i + 1
			if err := s.finishHeader(first); err != nil {
				return err
			}

		case atLineBoundary, copyingPartialLine:
			i := bytes.IndexByte(chunk[pos:], '\n')
			if i < 0 {
				// Chunk ends mid-line: write the partial bytes through and
				// continue the same line from the next chunk.
				if err := s.writeBytes(chunk[pos:]); err != nil {
					return err
				}
				s.lastByte = chunk[len(chunk)-1]
				s.state = copyingPartialLine
				return nil
			}
			if s.firstLine {
				before := s.lastByte
				if i > 0 {
					before = chunk[pos+i-1]
				}
				if before == '\r' {
					return fmt.Errorf("%s: %w", s.inputName, ErrWindowsLineEnding)
				}
				s.firstLine = false
			}
			if err := s.writeBytes(chunk[pos : pos+i+1]); err != nil {
				return err
			}
			pos += i + 1
			s.state = atLineBoundary
			s.remaining--
			if s.remaining == 0 {
				if err := s.closeCurrent(); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// finishHeader validates and disposes of a completed header line: captured
// once from the first input when headers are written to every output,
// silently dropped otherwise.
func (s *blockSplitter) finishHeader(first bool) error {
	if bytes.HasSuffix(s.headerBuf, []byte{'\r'}) {
		return fmt.Errorf("%s: %w", s.inputName, ErrWindowsLineEnding)
	}
	if first && s.headerMode == HeaderWriteAll {
		s.header = append(append([]byte(nil), s.headerBuf...), '\n')
	}
	s.state = atLineBoundary
	s.firstLine = false
	return nil
}

func (s *blockSplitter) writeBytes(b []byte) error {
	if s.out == nil {
		if err := s.openNext(); err != nil {
			return err
		}
	}
	if _, err := s.w.Write(b); err != nil {
		return fmt.Errorf("writing %s: %w", s.out.Name(), err)
	}
	return nil
}

// openNext opens the next sequential output file. Names use ascending ids
// without padding. Existing files are refused unless in append mode; files
// already written earlier in the run are not rolled back. A file appended
// to with data already on disk does not receive the header again.
func (s *blockSplitter) openNext() error {
	path := filepath.Join(s.dir, fmt.Sprintf("%s%d%s", s.prefix, s.nextID, s.suffix))
	flags := os.O_WRONLY | os.O_CREATE
	if s.appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return &PreexistingOutputError{Path: path}
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}
	s.out = f
	s.w = bufio.NewWriterSize(f, len(s.buf))
	s.nextID++
	s.remaining = s.linesPerFile
	if len(s.header) > 0 {
		hasData := false
		if s.appendMode {
			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			hasData = info.Size() > 0
		}
		if !hasData {
			if _, err := s.w.Write(s.header); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
		}
	}
	return nil
}

func (s *blockSplitter) closeCurrent() error {
	if s.out == nil {
		return nil
	}
	name := s.out.Name()
	flushErr := s.w.Flush()
	closeErr := s.out.Close()
	s.out, s.w = nil, nil
	if flushErr != nil {
		return fmt.Errorf("flushing %s: %w", name, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", name, closeErr)
	}
	return nil
}

// Close flushes and closes the current output file, if any.
func (s *blockSplitter) Close() error {
	return s.closeCurrent()
}
