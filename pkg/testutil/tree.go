package testutil

import (
	"path"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wslaunch/pkg/types"
)

// Tree walks root on fsys and returns every entry keyed by its "/"-joined
// path relative to root. Directories map to the empty string with a
// trailing "/" on the key; files map to their content.
func Tree(t testing.TB, fsys types.FS, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	walkTree(t, fsys, root, "", out)
	return out
}

func walkTree(t testing.TB, fsys types.FS, dir, rel string, out map[string]string) {
	t.Helper()
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		key := path.Join(rel, entry.Name())
		if entry.IsDir() {
			out[key+"/"] = ""
			walkTree(t, fsys, full, key, out)
			continue
		}
		data, err := fsys.ReadFile(full)
		if err != nil {
			t.Fatalf("read file %s: %v", full, err)
		}
		out[key] = string(data)
	}
}
