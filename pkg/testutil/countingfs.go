package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/wslaunch/pkg/types"
)

// Op names the mutating operations CountingFS records.
type Op string

const (
	OpWriteFile Op = "write"
	OpMkdirAll  Op = "mkdir"
	OpRemove    Op = "remove"
	OpRemoveAll Op = "removeall"
)

// CountingFS wraps a types.FS and counts every call. Errors can be injected
// for a specific operation and path.
type CountingFS struct {
	types.FS

	mu     sync.Mutex
	reads  int
	writes map[Op]int
	errors map[string]error
}

// NewCountingFS wraps inner
func NewCountingFS(inner types.FS) *CountingFS {
	return &CountingFS{
		FS:     inner,
		writes: make(map[Op]int),
		errors: make(map[string]error),
	}
}

// WithError makes op on path fail with err.
func (c *CountingFS) WithError(op Op, path string, err error) *CountingFS {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors[errorKey(op, path)] = err
	return c
}

// ClearErrors removes all injected errors
func (c *CountingFS) ClearErrors() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = make(map[string]error)
}

// Writes returns the number of mutating calls across all operations.
func (c *CountingFS) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.writes {
		total += n
	}
	return total
}

// Count returns the number of calls for one mutating operation.
func (c *CountingFS) Count(op Op) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes[op]
}

// Reads returns the number of Stat, ReadFile and ReadDir calls.
func (c *CountingFS) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// Reset zeroes all counters
func (c *CountingFS) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads = 0
	c.writes = make(map[Op]int)
}

func errorKey(op Op, path string) string {
	return string(op) + ":" + filepath.Clean(path)
}

func (c *CountingFS) record(op Op, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes[op]++
	return c.errors[errorKey(op, path)]
}

func (c *CountingFS) read() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
}

func (c *CountingFS) Stat(name string) (fs.FileInfo, error) {
	c.read()
	return c.FS.Stat(name)
}

func (c *CountingFS) ReadFile(name string) ([]byte, error) {
	c.read()
	return c.FS.ReadFile(name)
}

func (c *CountingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	c.read()
	return c.FS.ReadDir(name)
}

func (c *CountingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := c.record(OpWriteFile, name); err != nil {
		return err
	}
	return c.FS.WriteFile(name, data, perm)
}

func (c *CountingFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := c.record(OpMkdirAll, path); err != nil {
		return err
	}
	return c.FS.MkdirAll(path, perm)
}

func (c *CountingFS) Remove(name string) error {
	if err := c.record(OpRemove, name); err != nil {
		return err
	}
	return c.FS.Remove(name)
}

func (c *CountingFS) RemoveAll(path string) error {
	if err := c.record(OpRemoveAll, path); err != nil {
		return err
	}
	return c.FS.RemoveAll(path)
}
