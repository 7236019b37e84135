package types

import (
	"io/fs"
)

// FS is the filesystem interface a template is materialized onto.
//
// A nil FS means no persistent store is reachable in the current context;
// callers normalize templates but skip materialization.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Removal. RemoveAll must return nil when path does not exist.
	Remove(name string) error
	RemoveAll(path string) error
}
