package tempfile

import (
	"errors"
	"fmt"
	"io"
)

// MockFile provides an in-memory implementation of the File interface.
// It stores all data in a byte slice instead of a disk file.
// This is useful for testing and benchmarking without filesystem I/O overhead.
type MockFile struct {
	data   []byte
	offset int64
	closed bool
}

// Mock creates a new in-memory File with the specified initial capacity.
// The parameter n sets the initial capacity of the underlying slice to
// reduce reallocations during writing.
func Mock(n int) *MockFile {
	return &MockFile{data: make([]byte, 0, n)}
}

func (f *MockFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, errors.New("tempfile: read on closed mock file")
	}
	if f.offset >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.offset:])
	f.offset += int64(n)
	return n, nil
}

func (f *MockFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, errors.New("tempfile: write on closed mock file")
	}
	// zero-fill any gap left by seeking past the end
	if gap := f.offset - int64(len(f.data)); gap > 0 {
		f.data = append(f.data, make([]byte, gap)...)
	}
	n := copy(f.data[f.offset:], p)
	f.data = append(f.data, p[n:]...)
	f.offset += int64(len(p))
	return len(p), nil
}

func (f *MockFile) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = f.offset + offset
	case io.SeekEnd:
		abs = int64(len(f.data)) + offset
	default:
		return 0, fmt.Errorf("tempfile: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("tempfile: negative seek position")
	}
	f.offset = abs
	return abs, nil
}

// Name returns a synthetic name, MockFiles have no filesystem presence
func (f *MockFile) Name() string {
	return "mock"
}

// Close releases the buffered data. Safe to call more than once.
func (f *MockFile) Close() error {
	f.data = nil
	f.closed = true
	return nil
}

// Bytes returns everything written to the mock file so far, regardless of
// the current offset
func (f *MockFile) Bytes() []byte {
	return f.data
}

// Closed reports whether Close has been called
func (f *MockFile) Closed() bool {
	return f.closed
}

// MockProvider is a Provider that hands out MockFiles and records every
// file it creates, so tests can observe how many scratch files were
// requested and what ended up in them.
type MockProvider struct {
	Files []*MockFile
}

func (p *MockProvider) Create() (File, error) {
	f := Mock(0)
	p.Files = append(p.Files, f)
	return f, nil
}
