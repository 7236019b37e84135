package manifest

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/logging"
	"github.com/arthur-debert/wslaunch/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a manifest file syntax
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.Newf(errors.ErrManifestLoad, "cannot tell manifest format of %s", path).
		WithDetail("path", path)
}

// Load reads and parses the manifest at path from fsys
func Load(fsys types.FS, path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest").With().Str("path", path).Logger()

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "failed to read manifest %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, withDetails(err, map[string]interface{}{"path": path})
	}

	logger.Debug().
		Str("format", string(format)).
		Str("identifier", m.ID).
		Int("nodes", len(m.Structure)).
		Msg("Loaded manifest")
	return m, nil
}

// Parse decodes a manifest. Unknown fields are rejected.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	var err error

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&m)
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&m)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&m)
	default:
		return nil, errors.Newf(errors.ErrManifestParse, "unsupported manifest format %q", format).
			WithDetail("format", string(format))
	}

	// An empty document is an empty manifest
	if stderrors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to parse %s manifest", format).
			WithDetail("format", string(format))
	}
	return &m, nil
}
