// Package tempfile provides scratch files for buffers that spill to disk:
// a Provider capability that creates uniquely named temp files open for
// reading and writing, and removes them from the filesystem when closed
package tempfile

import (
	"fmt"
	"os"
	"sync"
)

// filename prefix for files put in the scratch directory
var filenamePrefix = fmt.Sprintf("spool_%d_", os.Getpid())

// New returns a Provider that creates scratch files in dir.
// If dir is empty, the best available scratch directory is used
// (see GetTempDir).
func New(dir string) Provider {
	return &dirProvider{dir: dir}
}

type dirProvider struct {
	dir string
}

func (p *dirProvider) Create() (File, error) {
	dir := GetTempDir(p.dir)
	// the discovered directory may not exist yet
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(dir, filenamePrefix)
	if err != nil {
		return nil, err
	}
	return &diskFile{file: f}, nil
}

// diskFile wraps an *os.File so that Close also removes the file,
// and repeated Closes are no-ops
type diskFile struct {
	file *os.File
	once sync.Once
	err  error
}

func (f *diskFile) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

func (f *diskFile) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

func (f *diskFile) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

func (f *diskFile) Name() string {
	return f.file.Name()
}

// Close closes the handle and removes the file from disk.
// Removal failures are ignored.
func (f *diskFile) Close() error {
	f.once.Do(func() {
		f.err = f.file.Close()
		_ = os.Remove(f.file.Name())
	})
	return f.err
}
