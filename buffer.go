// Package spool implements a write-only buffer that holds small payloads in
// pooled memory pages and transparently spills to a scratch file on disk once
// a configurable threshold is crossed, while enforcing a hard cap on the
// total number of bytes buffered across both tiers.
//
// A producer can write an unbounded amount of data without knowing up front
// whether it will stay small: payloads under the memory threshold never touch
// the filesystem, and payloads over the buffer limit tear the buffer down
// before they can exhaust host memory or disk. The buffered bytes can be
// copied out any number of times; copy-out never consumes the content.
package spool

import (
	"context"
	"io"

	"github.com/lanrat/spool/pagebuf"
	"github.com/lanrat/spool/tempfile"
)

// Buffer is a write-only spooling buffer. Writes accumulate in memory until
// the cumulative size would exceed the configured MemoryThreshold, at which
// point all buffered bytes move to a scratch file and every later write goes
// straight to the file. The memory to disk transition is one-way for the
// life of the instance.
//
// A Buffer is owned by a single writer and is not safe for concurrent use.
type Buffer struct {
	config   Config
	memory   *pagebuf.Buffer
	file     tempfile.File
	provider tempfile.Provider
	written  int64
	closed   bool
}

// New returns an empty Buffer.
// config can be nil to use the defaults, or only set the non-default values desired.
func New(config *Config) *Buffer {
	cfg := *mergeConfig(config)
	b := &Buffer{
		config:   cfg,
		memory:   pagebuf.New(sharedPool(cfg.PageSize), cfg.PageSize),
		provider: cfg.Provider,
	}
	if b.provider == nil {
		b.provider = tempfile.New(cfg.TempDir)
	}
	return b
}

// Write implements io.Writer.
// A write that would push the total buffered bytes past BufferLimit is
// rejected in full with ErrLimitExceeded, and the Buffer is closed before
// Write returns. Writing exactly up to the limit succeeds.
func (b *Buffer) Write(p []byte) (int, error) {
	return b.write(context.Background(), p)
}

// WriteString implements io.StringWriter
func (b *Buffer) WriteString(s string) (int, error) {
	return b.write(context.Background(), []byte(s))
}

// WriteContext is Write with cancellation support.
// Cancellation is only observed at points that touch the scratch file
// (creating it, spilling into it, writing to it); appends that stay in
// memory complete synchronously regardless of ctx.
func (b *Buffer) WriteContext(ctx context.Context, p []byte) (int, error) {
	return b.write(ctx, p)
}

// write is the single write path behind Write and WriteContext
func (b *Buffer) write(ctx context.Context, p []byte) (int, error) {
	if b.closed {
		return 0, ErrClosed
	}
	n := int64(len(p))
	if limit := b.config.BufferLimit; limit > 0 && b.written+n > limit {
		// release everything now so the caller has nothing to clean up
		_ = b.Close()
		return 0, ErrLimitExceeded
	}
	if n == 0 {
		return 0, nil
	}

	switch {
	case b.file != nil:
		return b.writeFile(ctx, p)
	case b.written+n <= b.config.MemoryThreshold:
		b.memory.Add(p)
		b.written += n
		return len(p), nil
	default:
		// this write crosses the threshold: move tiers, then write
		if err := b.promote(ctx); err != nil {
			return 0, err
		}
		return b.writeFile(ctx, p)
	}
}

// writeFile writes p to the scratch file at its current position, which is
// always the end of everything written so far. Only confirmed bytes advance
// the cumulative count, so a failed or cancelled write never double-counts.
func (b *Buffer) writeFile(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := b.file.Write(p)
	b.written += int64(n)
	return n, err
}

// promote moves the Buffer to disk mode: it requests a scratch file from
// the provider, drains every memory page into it (returning the pages to
// the pool), and leaves all future writes going directly to the file.
func (b *Buffer) promote(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f, err := b.provider.Create()
	if err != nil {
		return err
	}
	b.file = f
	_, err = b.memory.CopyTo(f, true)
	return err
}

// Len returns the total number of bytes accepted so far across both tiers in O(1)
func (b *Buffer) Len() int64 {
	return b.written
}

// CopyTo writes everything buffered so far to w: the in-memory content
// first, then the full scratch file content from offset zero. Nothing is
// consumed, so CopyTo can be called any number of times and produces
// identical output each time.
func (b *Buffer) CopyTo(w io.Writer) (int64, error) {
	return b.copyTo(context.Background(), w)
}

// CopyToContext is CopyTo with cancellation support.
// Cancellation is observed between scratch file read chunks; the in-memory
// portion is copied without suspension.
func (b *Buffer) CopyToContext(ctx context.Context, w io.Writer) (int64, error) {
	return b.copyTo(ctx, w)
}

func (b *Buffer) copyTo(ctx context.Context, w io.Writer) (int64, error) {
	if b.closed {
		return 0, ErrClosed
	}
	written, err := b.memory.CopyTo(w, false)
	if err != nil {
		return written, err
	}
	if b.file == nil {
		return written, nil
	}
	if _, err := b.file.Seek(0, io.SeekStart); err != nil {
		return written, err
	}
	n, err := b.copyFile(ctx, w)
	return written + n, err
}

// copyFile drains the scratch file into w one page-sized chunk at a time,
// checking for cancellation between chunks. Reading to EOF leaves the file
// positioned back at its write position.
func (b *Buffer) copyFile(ctx context.Context, w io.Writer) (int64, error) {
	pool := sharedPool(b.config.PageSize)
	buf := pool.Get()
	defer pool.Put(buf)

	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, err := b.file.Read(buf)
		if n > 0 {
			m, werr := w.Write(buf[:n])
			written += int64(m)
			if werr != nil {
				return written, werr
			}
			if m < n {
				return written, io.ErrShortWrite
			}
		}
		if err == io.EOF {
			return written, nil
		}
		if err != nil {
			return written, err
		}
	}
}

// Close releases every memory page back to the pool and closes and removes
// the scratch file if one was created. Close is idempotent; closing an
// already-closed Buffer is a no-op. After Close, writes and copies fail
// with ErrClosed.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.memory.Release()
	if b.file != nil {
		err := b.file.Close()
		b.file = nil
		return err
	}
	return nil
}
