package spool

import (
	"sync"

	"github.com/lanrat/spool/pagebuf"
)

var (
	poolsMutex sync.Mutex
	pools      = make(map[int]pagebuf.Pool)
)

// sharedPool returns the process-wide page pool for the given page size.
// Pages are the only resource shared across Buffer instances; the pools
// themselves are safe for concurrent acquire and release.
func sharedPool(pageSize int) pagebuf.Pool {
	poolsMutex.Lock()
	defer poolsMutex.Unlock()
	p, ok := pools[pageSize]
	if !ok {
		p = pagebuf.NewPool(pageSize)
		pools[pageSize] = p
	}
	return p
}
