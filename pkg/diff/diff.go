package diff

import (
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/internal/hashutil"
	"github.com/arthur-debert/wslaunch/pkg/materialize"
	"github.com/arthur-debert/wslaunch/pkg/types"
)

// Kind classifies a change
type Kind string

const (
	Added    Kind = "added"
	Removed  Kind = "removed"
	Modified Kind = "modified"
)

// Change is one difference between a subtree on disk and a spec
type Change struct {
	Kind Kind
	// Path is "/"-separated and relative to the template subtree
	Path string
	Dir  bool
	// Binary changes carry no patch
	Binary bool
	Patch  string
}

type fileState struct {
	data   []byte
	sum    string
	binary bool
}

func newFileState(data []byte, binary bool) fileState {
	return fileState{data: data, sum: hashutil.Checksum(data), binary: binary}
}

type tree struct {
	dirs  map[string]bool
	files map[string]fileState
}

func newTree() *tree {
	return &tree{dirs: make(map[string]bool), files: make(map[string]fileState)}
}

// Compute lists the changes materializing spec into dir would make. A
// missing dir counts as empty. Changes are ordered by path.
func Compute(fsys types.FS, dir string, spec *types.Spec, opt Options) ([]Change, error) {
	want, err := desired(spec)
	if err != nil {
		return nil, err
	}
	have, err := existing(fsys, dir)
	if err != nil {
		return nil, err
	}

	var changes []Change
	for d := range want.dirs {
		if !have.dirs[d] {
			changes = append(changes, Change{Kind: Added, Path: d, Dir: true})
		}
	}
	for d := range have.dirs {
		if !want.dirs[d] {
			changes = append(changes, Change{Kind: Removed, Path: d, Dir: true})
		}
	}

	for p, w := range want.files {
		h, ok := have.files[p]
		switch {
		case !ok:
			changes = append(changes, fileChange(Added, p, fileState{}, w, opt))
		case h.sum != w.sum:
			changes = append(changes, fileChange(Modified, p, h, w, opt))
		}
	}
	for p, h := range have.files {
		if _, ok := want.files[p]; !ok {
			changes = append(changes, fileChange(Removed, p, h, fileState{}, opt))
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Path != changes[j].Path {
			return changes[i].Path < changes[j].Path
		}
		return changes[i].Kind < changes[j].Kind
	})
	return changes, nil
}

func fileChange(kind Kind, p string, old, want fileState, opt Options) Change {
	c := Change{Kind: kind, Path: p, Binary: old.binary || want.binary}
	if c.Binary {
		return c
	}

	from, to := "a/"+p, "b/"+p
	switch kind {
	case Added:
		from = DevNull
	case Removed:
		to = DevNull
	}
	c.Patch = Unified(from, to, old.data, want.data, opt)
	return c
}

// desired returns the tree the materializer would leave behind
func desired(spec *types.Spec) (*tree, error) {
	t := newTree()
	for _, d := range spec.Directories {
		t.addDir(d)
	}
	for _, entry := range spec.Files {
		data, err := materialize.Payload(entry)
		if err != nil {
			return nil, err
		}
		// Later duplicates overwrite earlier ones, as on disk.
		t.files[entry.Path] = newFileState(data, entry.Encoding.IsBinary())
		if parent := path.Dir(entry.Path); parent != "." {
			t.addDir(parent)
		}
	}
	return t, nil
}

// addDir records d and every ancestor
func (t *tree) addDir(d string) {
	for d != "." && d != "" && !t.dirs[d] {
		t.dirs[d] = true
		d = path.Dir(d)
	}
}

func existing(fsys types.FS, dir string) (*tree, error) {
	t := newTree()
	if _, err := fsys.Stat(dir); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return nil, readError(err, dir)
	}
	if err := walk(fsys, dir, "", t); err != nil {
		return nil, err
	}
	return t, nil
}

func walk(fsys types.FS, dir, rel string, t *tree) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return readError(err, dir)
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		key := path.Join(rel, entry.Name())
		if entry.IsDir() {
			t.dirs[key] = true
			if err := walk(fsys, full, key, t); err != nil {
				return err
			}
			continue
		}
		data, err := fsys.ReadFile(full)
		if err != nil {
			return readError(err, full)
		}
		t.files[key] = newFileState(data, !utf8.Valid(data))
	}
	return nil
}

func readError(err error, p string) error {
	return errors.Wrapf(err, errors.ErrMaterializationIO, "failed to read %s", p).
		WithDetail("op", "read").
		WithDetail("path", p)
}

// Summary counts changes per kind
func Summary(changes []Change) map[Kind]int {
	out := make(map[Kind]int)
	for _, c := range changes {
		out[c.Kind]++
	}
	return out
}
