package materialize

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/logging"
	"github.com/arthur-debert/wslaunch/pkg/paths"
	"github.com/arthur-debert/wslaunch/pkg/types"
	"github.com/rs/zerolog"
)

// Permissions used for everything materialized
const (
	DirPerm  fs.FileMode = 0755
	FilePerm fs.FileMode = 0644
)

// Materializer writes specs under paths.TemplateDir(spec.ID) on fs.
type Materializer struct {
	fs     types.FS
	paths  paths.Paths
	logger zerolog.Logger
}

// New creates a Materializer. fs must not be nil; callers without a
// backing store skip materialization instead.
func New(fsys types.FS, p paths.Paths) *Materializer {
	return &Materializer{
		fs:     fsys,
		paths:  p,
		logger: logging.GetLogger("materialize"),
	}
}

// WithLogger replaces the materializer's logger
func (m *Materializer) WithLogger(logger zerolog.Logger) *Materializer {
	m.logger = logger
	return m
}

type pendingFile struct {
	target string
	data   []byte
}

// Materialize replaces the identifier's subtree with spec and returns the
// subtree root. Payloads are decoded before anything is removed, so a
// malformed base64 file leaves the previous materialization intact.
func (m *Materializer) Materialize(spec *types.Spec) (string, error) {
	dir := m.paths.TemplateDir(spec.ID)
	logger := m.logger.With().Str("identifier", spec.ID).Str("dir", dir).Logger()
	defer logging.LogOperationStart(logger, "materialize")()

	files := make([]pendingFile, 0, len(spec.Files))
	for _, entry := range spec.Files {
		data, err := Payload(entry)
		if err != nil {
			return "", err
		}
		files = append(files, pendingFile{target: paths.Join(dir, entry.Path), data: data})
	}

	if err := m.mkdirAll(spec.ID, m.paths.TemplatesDir()); err != nil {
		return "", err
	}
	if err := m.fs.RemoveAll(dir); err != nil {
		return "", ioError(err, spec.ID, "remove", dir)
	}
	if err := m.mkdirAll(spec.ID, dir); err != nil {
		return "", err
	}

	for _, d := range spec.Directories {
		if d == "" {
			continue
		}
		if err := m.mkdirAll(spec.ID, paths.Join(dir, d)); err != nil {
			return "", err
		}
	}

	// Entries sharing a path are written in order; the last one wins.
	for _, f := range files {
		if err := m.mkdirAll(spec.ID, filepath.Dir(f.target)); err != nil {
			return "", err
		}
		if err := m.fs.WriteFile(f.target, f.data, FilePerm); err != nil {
			return "", ioError(err, spec.ID, "write", f.target)
		}
		logger.Trace().Str("file", f.target).Int("bytes", len(f.data)).Msg("Wrote file")
	}

	m.logger.Info().
		Str("identifier", spec.ID).
		Str("location", m.paths.Relative(dir)).
		Int("directories", len(spec.Directories)).
		Int("files", len(spec.Files)).
		Msg("Materialized template")

	return dir, nil
}

func (m *Materializer) mkdirAll(id, dir string) error {
	if err := m.fs.MkdirAll(dir, DirPerm); err != nil {
		return ioError(err, id, "mkdir", dir)
	}
	return nil
}

func ioError(err error, id, op, path string) error {
	return errors.Wrapf(err, errors.ErrMaterializationIO, "failed to %s %s", op, path).
		WithDetail("identifier", id).
		WithDetail("op", op).
		WithDetail("path", path)
}
