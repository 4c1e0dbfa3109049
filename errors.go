package spool

import "errors"

// ErrLimitExceeded is returned by a write that would push the total
// buffered bytes past the configured BufferLimit. The write is rejected in
// full and the Buffer is closed as a side effect, so no separate cleanup
// step is needed after this error.
var ErrLimitExceeded = errors.New("buffer limit exceeded")

// ErrClosed is returned by writes and copies performed after Close
var ErrClosed = errors.New("buffer is closed")
