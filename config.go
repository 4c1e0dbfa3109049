package spool

import "github.com/lanrat/spool/tempfile"

// Config holds configuration settings for a Buffer
type Config struct {
	MemoryThreshold int64             // bytes kept in memory before the buffer spills to a scratch file
	BufferLimit     int64             // hard cap on total buffered bytes across memory and disk, 0 for no limit
	PageSize        int               // size in bytes of each pooled memory page
	TempDir         string            // directory for scratch files, empty for the best available (see tempfile.GetTempDir)
	Provider        tempfile.Provider // scratch file provider, overrides TempDir when set
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		MemoryThreshold: 32 << 10, // 32KB, enough for typical request/response bodies
		BufferLimit:     0,        // unbounded
		PageSize:        16 << 10, // 16KB
		TempDir:         "",
	}
}

// mergeConfig takes a provided config and replaces any values not set with the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.MemoryThreshold <= 0 {
		c.MemoryThreshold = d.MemoryThreshold
	}
	if c.BufferLimit < 0 {
		c.BufferLimit = 0
	}
	if c.PageSize <= 0 {
		c.PageSize = d.PageSize
	}
	// a threshold past the limit could never be reached
	if c.BufferLimit > 0 && c.MemoryThreshold > c.BufferLimit {
		c.MemoryThreshold = c.BufferLimit
	}
	// skipping TempDir and Provider as their zero values mean "default"
	return c
}
