package split

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const poolWriterBufferSize = 32 * 1024

// outputFile is one shard's output. The handle and writer are nil while the
// file is closed; hasData records whether any data byte has been written,
// which gates the header-once semantics.
type outputFile struct {
	id      int
	path    string
	f       *os.File
	w       *bufio.Writer
	hasData bool
}

// outputPool owns the N sharded output files and keeps at most maxOpen of
// them open at a time, lazily opening targets and evicting a uniformly
// random open file when the budget is reached. A single goroutine owns all
// pool state; there is no locking.
type outputPool struct {
	files       []outputFile
	open        []int // ids of currently open files, unordered
	maxOpen     int
	header      []byte
	writeHeader bool
	evictRng    *rand.Rand
}

// newOutputPool builds the pool with its deterministic filenames:
// <dir>/<prefix><zero-padded id><suffix>, padded so all n names have equal
// length.
func newOutputPool(n int, dir, prefix, suffix string, writeHeader bool, maxOpen int) *outputPool {
	width := len(strconv.Itoa(n - 1))
	files := make([]outputFile, n)
	for i := range files {
		files[i] = outputFile{
			id:   i,
			path: filepath.Join(dir, fmt.Sprintf("%s%0*d%s", prefix, width, i, suffix)),
		}
	}
	return &outputPool{
		files:       files,
		open:        make([]int, 0, maxOpen),
		maxOpen:     maxOpen,
		writeHeader: writeHeader,
		evictRng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// preflight scans the output filenames before any write. Without append
// mode the first pre-existing file is fatal. With append mode each file's
// hasData is seeded from its on-disk size, so a header already present from
// an earlier run is not written again.
func (p *outputPool) preflight(appendMode bool) error {
	for i := range p.files {
		info, err := os.Stat(p.files[i].path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("checking output file: %w", err)
		}
		if !appendMode {
			return &PreexistingOutputError{Path: p.files[i].path}
		}
		if info.Size() > 0 {
			p.files[i].hasData = true
		}
	}
	return nil
}

// setHeader records the header line, terminator excluded. Call at most
// once, before the first write.
func (p *outputPool) setHeader(line []byte) {
	p.header = append(append([]byte(nil), line...), '\n')
}

// write appends line plus a newline to the shard's file, opening it (and
// evicting another open file when the budget is full) as needed. The first
// data write to a file with no data yet is preceded by the header, when one
// is set.
func (p *outputPool) write(shard int, line []byte) error {
	f := &p.files[shard]
	if f.f == nil {
		if err := p.openFile(f); err != nil {
			return err
		}
	}
	if p.writeHeader && !f.hasData && len(p.header) > 0 {
		if _, err := f.w.Write(p.header); err != nil {
			return fmt.Errorf("writing %s: %w", f.path, err)
		}
	}
	if _, err := f.w.Write(line); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	if err := f.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	f.hasData = true
	return nil
}

func (p *outputPool) openFile(f *outputFile) error {
	if len(p.open) >= p.maxOpen {
		if err := p.evict(); err != nil {
			return err
		}
	}
	h, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", f.path, err)
	}
	f.f = h
	f.w = bufio.NewWriterSize(h, poolWriterBufferSize)
	p.open = append(p.open, f.id)
	return nil
}

// evict flushes and closes one open file chosen uniformly at random.
// Random choice rather than LRU keeps the bookkeeping to a single slice;
// see the package notes on eviction.
func (p *outputPool) evict() error {
	idx := p.evictRng.Intn(len(p.open))
	f := &p.files[p.open[idx]]
	if err := p.closeFile(f); err != nil {
		return err
	}
	p.open[idx] = p.open[len(p.open)-1]
	p.open = p.open[:len(p.open)-1]
	return nil
}

func (p *outputPool) closeFile(f *outputFile) error {
	flushErr := f.w.Flush()
	closeErr := f.f.Close()
	f.f, f.w = nil, nil
	if flushErr != nil {
		return fmt.Errorf("flushing %s: %w", f.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", f.path, closeErr)
	}
	return nil
}

// openCount reports how many output files are currently open.
func (p *outputPool) openCount() int {
	return len(p.open)
}

// Close flushes and closes every still-open file. Every file is closed
// even when a flush fails; the first error wins.
func (p *outputPool) Close() error {
	var firstErr error
	for _, id := range p.open {
		if err := p.closeFile(&p.files[id]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.open = p.open[:0]
	return firstErr
}
