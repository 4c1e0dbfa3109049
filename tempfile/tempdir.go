package tempfile

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// directory name for last-resort scratch dirs under $HOME or the working dir
const scratchDirName = ".spool-tmp"

var (
	discoveredDir    string
	dirDiscoveryOnce sync.Once
)

// GetTempDir returns the directory scratch files should be created in.
// If dir is provided and usable it is returned as-is; otherwise a
// directory is discovered once per process and cached. Discovery prefers
// directories likely to be disk-backed: a spill file exists to relieve
// memory pressure, so RAM-backed mounts like a tmpfs /tmp are avoided
// when a traditional disk-backed location is available.
func GetTempDir(dir string) string {
	if dir != "" && isDirectoryUsable(dir) {
		return dir
	}
	dirDiscoveryOnce.Do(func() {
		discoveredDir = discoverTempDir()
	})
	return discoveredDir
}

// discoverTempDir returns the first usable candidate, falling back to the
// OS default temp directory
func discoverTempDir() string {
	for _, candidate := range candidateDirs() {
		if isDirectoryUsable(candidate) {
			return candidate
		}
	}
	return os.TempDir()
}

// candidateDirs returns scratch directory candidates in priority order.
// On Unix-like systems /var/tmp is traditionally disk-backed, unlike /tmp
// which may be a tmpfs.
func candidateDirs() []string {
	var candidates []string

	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris":
		candidates = append(candidates, "/var/tmp")
	case "darwin":
		candidates = append(candidates, "/var/tmp", "/private/var/tmp")
	}

	candidates = append(candidates, os.TempDir())

	// last resorts: process-owned subdirectories that Create will mkdir
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, scratchDirName))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, scratchDirName))
	}

	return candidates
}

// isDirectoryUsable reports whether dir exists and is a directory, or does
// not exist yet and could be created. Writability is not tested here to
// avoid creating files during discovery; creating the scratch file will
// surface that error.
func isDirectoryUsable(dir string) bool {
	stat, err := os.Stat(dir)
	if err != nil {
		return os.IsNotExist(err)
	}
	return stat.IsDir()
}
