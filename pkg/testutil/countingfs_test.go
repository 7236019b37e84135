package testutil

import (
	"errors"
	"testing"

	"github.com/arthur-debert/wslaunch/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingFS(t *testing.T) {
	c := NewCountingFS(filesystem.NewMemory())

	require.NoError(t, c.MkdirAll("/a/b", 0755))
	require.NoError(t, c.WriteFile("/a/b/f.txt", []byte("x"), 0644))
	_, err := c.ReadFile("/a/b/f.txt")
	require.NoError(t, err)
	require.NoError(t, c.RemoveAll("/a/b"))

	assert.Equal(t, 3, c.Writes())
	assert.Equal(t, 1, c.Count(OpWriteFile))
	assert.Equal(t, 1, c.Reads())

	c.Reset()
	assert.Zero(t, c.Writes())
	assert.Zero(t, c.Reads())
}

func TestCountingFS_WithError(t *testing.T) {
	boom := errors.New("disk full")
	c := NewCountingFS(filesystem.NewMemory()).WithError(OpWriteFile, "/a/f.txt", boom)

	assert.ErrorIs(t, c.WriteFile("/a/f.txt", nil, 0644), boom)
	assert.NoError(t, c.WriteFile("/a/g.txt", nil, 0644))

	c.ClearErrors()
	assert.NoError(t, c.WriteFile("/a/f.txt", nil, 0644))
}

func TestTree(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/r/src/empty", 0755))
	require.NoError(t, fsys.WriteFile("/r/src/a.txt", []byte("a"), 0644))

	assert.Equal(t, map[string]string{
		"src/":       "",
		"src/empty/": "",
		"src/a.txt":  "a",
	}, Tree(t, fsys, "/r"))
}
