package config

import (
	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/filesystem"
	"github.com/arthur-debert/wslaunch/pkg/paths"
	"github.com/arthur-debert/wslaunch/pkg/types"
)

// OpenStore returns the backing store selected by Store.Backend.
// BackendNone yields a nil FS: templates are normalized but never written.
func (c *Config) OpenStore() (types.FS, error) {
	switch c.Store.Backend {
	case BackendOS, "":
		return filesystem.NewOS(), nil
	case BackendMemory:
		return filesystem.NewMemory(), nil
	case BackendBillyMemory:
		return filesystem.NewBillyMemory(), nil
	case BackendNone:
		return nil, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown store backend %q", c.Store.Backend).
		WithDetail("backend", c.Store.Backend)
}

// Paths returns the storage layout for DataRoot under the working directory
func (c *Config) Paths() (paths.Paths, error) {
	return paths.New(c.DataRoot)
}
