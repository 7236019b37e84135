package template

import (
	"slices"
	"strings"

	"github.com/arthur-debert/wslaunch/pkg/content"
	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/paths"
	"github.com/arthur-debert/wslaunch/pkg/types"
)

// Flattened is the unsorted result of walking a node tree.
type Flattened struct {
	Directories map[string]struct{}
	Files       []types.FileEntry
}

// Flatten walks nodes depth-first, returning the set of directory paths
// and the file entries in declaration order. The first validation error
// aborts the walk; no partial result is returned.
func Flatten(nodes []types.Node) (*Flattened, error) {
	out := &Flattened{Directories: make(map[string]struct{})}
	if err := collect(out, nodes, ""); err != nil {
		return nil, err
	}
	return out, nil
}

func collect(out *Flattened, nodes []types.Node, parent string) error {
	for _, node := range nodes {
		switch n := node.(type) {
		case *types.Directory:
			if n == nil {
				return unknownNode(node, parent)
			}
			dir, err := paths.Normalize(parent, n.Name)
			if err != nil {
				return err
			}
			if dir != "" {
				out.Directories[dir] = struct{}{}
			}
			if err := collect(out, n.Children, dir); err != nil {
				return err
			}

		case *types.File:
			if n == nil {
				return unknownNode(node, parent)
			}
			entry, err := flattenFile(n, parent)
			if err != nil {
				return err
			}
			out.Files = append(out.Files, entry)

		default:
			return unknownNode(node, parent)
		}
	}
	return nil
}

func flattenFile(f *types.File, parent string) (types.FileEntry, error) {
	path, err := paths.Normalize(parent, f.Name)
	if err != nil {
		return types.FileEntry{}, err
	}
	// A name that contributes no segment would alias the parent directory.
	if path == "" || path == parent {
		return types.FileEntry{}, errors.New(errors.ErrEmptyFileName, "file name cannot be empty").
			WithDetail("parent", parent).
			WithDetail("name", f.Name)
	}
	if !f.Encoding.Valid() {
		return types.FileEntry{}, errors.Newf(errors.ErrUnknownEncoding, "unknown encoding %q", string(f.Encoding)).
			WithDetail("path", path)
	}

	encoding := f.Encoding.Normalize()
	return types.FileEntry{
		Path:     path,
		Content:  content.Normalize(f.Content, encoding),
		Encoding: encoding,
	}, nil
}

func unknownNode(node types.Node, parent string) error {
	return errors.Newf(errors.ErrUnknownNodeType, "unknown node type %T", node).
		WithDetail("parent", parent)
}

// Build flattens nodes into a deterministic Spec for identifier id.
func Build(id string, nodes []types.Node) (*types.Spec, error) {
	flat, err := Flatten(nodes)
	if err != nil {
		return nil, err
	}

	directories := make([]string, 0, len(flat.Directories))
	for dir := range flat.Directories {
		directories = append(directories, dir)
	}
	slices.Sort(directories)

	files := make([]types.FileEntry, len(flat.Files))
	copy(files, flat.Files)
	sortFiles(files)

	return &types.Spec{
		ID:          id,
		Directories: directories,
		Files:       files,
	}, nil
}

// sortFiles orders entries by path, keeping declaration order among equal paths.
func sortFiles(files []types.FileEntry) {
	slices.SortStableFunc(files, func(a, b types.FileEntry) int {
		return strings.Compare(a.Path, b.Path)
	})
}
