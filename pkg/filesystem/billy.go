package filesystem

import (
	"io"
	"io/fs"
	"os"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/arthur-debert/wslaunch/pkg/types"
)

// billyFS implements types.FS on top of a go-billy filesystem
type billyFS struct {
	fs billy.Filesystem
}

// NewBillyFS adapts a billy.Filesystem to types.FS
func NewBillyFS(fs billy.Filesystem) types.FS {
	return &billyFS{fs: fs}
}

// NewBillyMemory returns an empty go-billy in-memory filesystem
func NewBillyMemory() types.FS {
	return NewBillyFS(memfs.New())
}

func (b *billyFS) Stat(name string) (fs.FileInfo, error) {
	return b.fs.Stat(name)
}

func (b *billyFS) ReadFile(name string) ([]byte, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}

	f, err := b.fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return io.ReadAll(f)
}

func (b *billyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(b.fs, name, data, perm)
}

func (b *billyFS) MkdirAll(path string, perm fs.FileMode) error {
	return b.fs.MkdirAll(path, perm)
}

func (b *billyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := b.fs.ReadDir(name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

func (b *billyFS) Remove(name string) error {
	return b.fs.Remove(name)
}

func (b *billyFS) RemoveAll(path string) error {
	if _, err := b.fs.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return util.RemoveAll(b.fs, path)
}
