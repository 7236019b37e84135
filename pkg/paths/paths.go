package paths

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/wslaunch/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// Default directories.
// IMPORTANT: the templates layout below the data root is not configurable;
// external tools locate materialized templates by it.
const (
	// DefaultDataDir is the data root, relative to the working directory
	DefaultDataDir = ".workspace-launch"

	// TemplatesDir is the subdirectory holding one subtree per identifier
	TemplatesDir = "templates"
)

// Paths resolves storage locations for materialized templates.
type Paths interface {
	// BaseDir is the directory relative locations are reported against.
	BaseDir() string
	DataRoot() string
	TemplatesDir() string
	// TemplateDir returns the subtree for an identifier, sanitized.
	TemplateDir(identifier string) string
	// Relative returns path relative to BaseDir, or path unchanged when
	// that is not possible.
	Relative(path string) string
}

type paths struct {
	baseDir  string
	dataRoot string
}

// New creates a Paths rooted at the current working directory.
// An empty dataRoot uses DefaultDataDir; a relative one is resolved
// against the working directory; "~" is expanded.
func New(dataRoot string) (Paths, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to get current directory")
	}
	return NewWithBase(cwd, dataRoot), nil
}

// NewWithBase creates a Paths rooted at baseDir without consulting the
// process working directory.
func NewWithBase(baseDir, dataRoot string) Paths {
	if dataRoot == "" {
		dataRoot = DefaultDataDir
	}
	dataRoot = expandHome(dataRoot)
	if !filepath.IsAbs(dataRoot) {
		dataRoot = filepath.Join(baseDir, dataRoot)
	}
	return &paths{
		baseDir:  filepath.Clean(baseDir),
		dataRoot: filepath.Clean(dataRoot),
	}
}

func (p *paths) BaseDir() string {
	return p.baseDir
}

func (p *paths) DataRoot() string {
	return p.dataRoot
}

func (p *paths) TemplatesDir() string {
	return filepath.Join(p.dataRoot, TemplatesDir)
}

func (p *paths) TemplateDir(identifier string) string {
	return filepath.Join(p.TemplatesDir(), SanitizeIdentifier(identifier))
}

func (p *paths) Relative(path string) string {
	rel, err := filepath.Rel(p.baseDir, path)
	if err != nil || rel == "." {
		return path
	}
	return rel
}

// Join resolves a canonical template path under dir using host separators.
func Join(dir, canonical string) string {
	return filepath.Join(append([]string{dir}, Segments(canonical)...)...)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
