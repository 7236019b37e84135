package template

import (
	"encoding/base64"
	"encoding/json"
	"slices"
	"unicode/utf8"

	"github.com/arthur-debert/wslaunch/pkg/internal/hashutil"
	"github.com/arthur-debert/wslaunch/pkg/types"
)

type canonicalSpec struct {
	Directories []canonicalString `json:"directories"`
	Files       []canonicalFile   `json:"files"`
}

type canonicalFile struct {
	Path     canonicalString `json:"path"`
	Content  canonicalString `json:"content"`
	Encoding types.Encoding  `json:"encoding"`
}

// canonicalString encodes as a plain JSON string when s is valid UTF-8 and
// as {"b64": ...} otherwise. encoding/json would replace invalid bytes with
// U+FFFD, collapsing distinct contents onto the same digest.
type canonicalString string

func (s canonicalString) MarshalJSON() ([]byte, error) {
	if utf8.ValidString(string(s)) {
		return json.Marshal(string(s))
	}
	return json.Marshal(struct {
		B64 string `json:"b64"`
	}{base64.StdEncoding.EncodeToString([]byte(s))})
}

// Canonical returns the serialized form a fingerprint is computed over.
// The identifier is not part of it; directories and files are re-sorted
// so hand-built specs fingerprint the same as built ones.
func Canonical(spec *types.Spec) []byte {
	dirs := slices.Clone(spec.Directories)
	slices.Sort(dirs)
	files := make([]types.FileEntry, len(spec.Files))
	for i, f := range spec.Files {
		f.Encoding = f.Encoding.Normalize()
		files[i] = f
	}
	sortFiles(files)

	c := canonicalSpec{
		Directories: make([]canonicalString, len(dirs)),
		Files:       make([]canonicalFile, len(files)),
	}
	for i, d := range dirs {
		c.Directories[i] = canonicalString(d)
	}
	for i, f := range files {
		c.Files[i] = canonicalFile{
			Path:     canonicalString(f.Path),
			Content:  canonicalString(f.Content),
			Encoding: f.Encoding,
		}
	}

	// Marshalling strings and slices of plain structs cannot fail.
	data, _ := json.Marshal(c)
	return data
}

// Fingerprint returns a deterministic digest of spec's directories and files.
func Fingerprint(spec *types.Spec) string {
	return hashutil.Checksum(Canonical(spec))
}
