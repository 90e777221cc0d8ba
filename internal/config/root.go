package config

import (
	"os"
	"sync"
)

var root struct {
	sync.RWMutex
	dir string
}

// Root returns the directory relative log and pid file paths are resolved
// against. Unless set with [SetRoot] it is the working directory.
func Root() string {
	root.RLock()
	dir := root.dir
	root.RUnlock()

	if dir != "" {
		return dir
	}

	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// SetRoot replaces the root directory. An empty dir restores the working
// directory default. Paths already stored are not re-resolved.
func SetRoot(dir string) {
	root.Lock()
	defer root.Unlock()

	root.dir = dir
}
