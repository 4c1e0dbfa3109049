package tempfile

import "io"

// File is a freshly created scratch file, open for both reading and writing
// and exclusively owned by its creator. Implementations are backed by a real
// file on disk or by memory (see Mock).
type File interface {
	// File is seekable so the owner can rewind to offset zero for read-back.
	io.ReadWriteSeeker

	// Name returns the path of the underlying file, or a synthetic name for
	// implementations with no filesystem presence.
	Name() string

	// Close releases the file and removes it from storage.
	// Removal is best effort; a failure to remove never surfaces so that it
	// cannot mask a primary error or block shutdown.
	// Close is safe to call more than once.
	Close() error
}

// Provider creates scratch files on demand. Each call returns a new File
// whose path is guaranteed not to collide with any other open scratch file.
// The caller owns the returned File and is responsible for closing it.
type Provider interface {
	Create() (File, error)
}
