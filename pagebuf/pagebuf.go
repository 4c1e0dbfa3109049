// Package pagebuf implements an in-memory byte buffer backed by fixed-size
// pages acquired from a shared pool, instead of one contiguous growable slice
package pagebuf

import (
	"io"
	"sync"
)

// Pool hands out fixed-size pages and takes them back when a Buffer is done
// with them. Implementations must be safe for concurrent use by multiple
// buffers. Put must accept the same page more than once and must drop pages
// that do not match its size without corrupting the pool.
type Pool interface {
	// Get returns a page of the pool's size, ready for use.
	Get() []byte

	// Put returns a page to the pool.
	Put(page []byte)
}

// NewPool returns a Pool that recycles pages of pageSize bytes using sync.Pool
func NewPool(pageSize int) Pool {
	p := &pagePool{size: pageSize}
	p.pool.New = func() interface{} {
		page := make([]byte, pageSize)
		return &page
	}
	return p
}

type pagePool struct {
	size int
	pool sync.Pool
}

func (p *pagePool) Get() []byte {
	return *(p.pool.Get().(*[]byte))
}

func (p *pagePool) Put(page []byte) {
	if cap(page) < p.size {
		// not one of ours
		return
	}
	page = page[:p.size]
	p.pool.Put(&page)
}

// Buffer accumulates appended bytes across fixed-size pages.
// Every page except possibly the last is completely full, and the total
// length is always the sum of the used lengths of all pages.
// Buffer has no capacity limit of its own; capping is the caller's job.
type Buffer struct {
	pool     Pool
	pageSize int
	pages    [][]byte // each page sliced to its used length
	length   int64
}

// New returns an empty Buffer drawing pageSize-byte pages from pool
func New(pool Pool, pageSize int) *Buffer {
	return &Buffer{
		pool:     pool,
		pageSize: pageSize,
	}
}

// Add appends p to the buffer, filling the current last page to capacity
// before acquiring a new one. Add always succeeds.
func (b *Buffer) Add(p []byte) {
	for len(p) > 0 {
		if len(b.pages) == 0 || len(b.pages[len(b.pages)-1]) == b.pageSize {
			b.pages = append(b.pages, b.pool.Get()[:0])
		}
		last := b.pages[len(b.pages)-1]
		n := copy(last[len(last):b.pageSize], p)
		b.pages[len(b.pages)-1] = last[:len(last)+n]
		p = p[n:]
		b.length += int64(n)
	}
}

// Len returns the total number of buffered bytes in O(1)
func (b *Buffer) Len() int64 {
	return b.length
}

// CopyTo writes the full buffered content, in order, to w.
// When clear is true each page is returned to the pool as soon as it has
// been written, leaving the buffer empty in a single destructive pass.
// When clear is false the content and length are untouched, so the copy
// can be repeated. An empty buffer writes nothing.
func (b *Buffer) CopyTo(w io.Writer, clear bool) (int64, error) {
	if !clear {
		var written int64
		for _, page := range b.pages {
			n, err := w.Write(page)
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
		return written, nil
	}

	var written int64
	for len(b.pages) > 0 {
		page := b.pages[0]
		n, err := w.Write(page)
		written += int64(n)
		b.length -= int64(len(page))
		b.pages[0] = nil
		b.pages = b.pages[1:]
		b.pool.Put(page)
		if err != nil {
			return written, err
		}
	}
	b.pages = nil
	return written, nil
}

// Release returns every page to the pool and resets the buffer to empty
func (b *Buffer) Release() {
	for i, page := range b.pages {
		b.pool.Put(page)
		b.pages[i] = nil
	}
	b.pages = nil
	b.length = 0
}
