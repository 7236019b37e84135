package workspace

import (
	"sync"

	"github.com/arthur-debert/wslaunch/pkg/filesystem"
	"github.com/arthur-debert/wslaunch/pkg/registry"
)

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
	defaultErr    error
)

// Default returns the process-wide engine: OS filesystem, the default
// registry and a layout under the working directory.
func Default() (*Engine, error) {
	defaultOnce.Do(func() {
		defaultEngine, defaultErr = NewEngine(
			WithStore(filesystem.NewOS()),
			WithRegistry(registry.Default()),
		)
	})
	return defaultEngine, defaultErr
}

// CreateWorkspaceTemplate normalizes opts.Structure, materializes it under
// the working directory when it changed, and returns the start link.
func CreateWorkspaceTemplate(opts Options) (string, error) {
	engine, err := Default()
	if err != nil {
		return "", err
	}
	result, err := engine.Create(opts)
	if err != nil {
		return "", err
	}
	return result.Link, nil
}
