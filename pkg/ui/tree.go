package ui

import (
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/wslaunch/pkg/paths"
	"github.com/arthur-debert/wslaunch/pkg/types"
	"github.com/pterm/pterm"
)

type treeDir struct {
	dirs  map[string]*treeDir
	files []string
}

func newTreeDir() *treeDir {
	return &treeDir{dirs: make(map[string]*treeDir)}
}

func (d *treeDir) dir(canonical string) *treeDir {
	cur := d
	for _, seg := range paths.Segments(canonical) {
		next, ok := cur.dirs[seg]
		if !ok {
			next = newTreeDir()
			cur.dirs[seg] = next
		}
		cur = next
	}
	return cur
}

func (d *treeDir) node(text string) pterm.TreeNode {
	n := pterm.TreeNode{Text: text}

	names := make([]string, 0, len(d.dirs))
	for name := range d.dirs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		n.Children = append(n.Children, d.dirs[name].node(name+"/"))
	}
	for _, f := range d.files {
		n.Children = append(n.Children, pterm.TreeNode{Text: f})
	}
	return n
}

// RenderTree draws spec as a tree rooted at its identifier. Directories end
// in "/"; binary files are marked.
func RenderTree(spec *types.Spec) (string, error) {
	root := newTreeDir()
	for _, d := range spec.Directories {
		root.dir(d)
	}
	for _, f := range spec.Files {
		parent := path.Dir(f.Path)
		if parent == "." {
			parent = ""
		}
		label := path.Base(f.Path)
		if f.Encoding.IsBinary() {
			label += " (binary)"
		}
		root.dir(parent).files = append(root.dir(parent).files, label)
	}

	id := strings.TrimSpace(spec.ID)
	if id == "" {
		id = paths.DefaultIdentifier
	}
	out, err := pterm.DefaultTree.WithRoot(root.node(id)).Srender()
	if err != nil {
		return "", err
	}
	return out, nil
}
