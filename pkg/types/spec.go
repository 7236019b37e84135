package types

// FileEntry is a flattened file: canonical path, normalized content and
// its effective encoding.
type FileEntry struct {
	Path     string   `json:"path"`
	Content  string   `json:"content"`
	Encoding Encoding `json:"encoding"`
}

// Spec is a flattened, deterministic template specification.
//
// Directories are sorted lexicographically and Files by path. A file's
// parent directories are implied; they need not appear in Directories.
type Spec struct {
	ID          string
	Directories []string
	Files       []FileEntry
}

// DuplicatePaths returns file paths that occur more than once, in sorted
// order. Files must already be sorted by path.
func (s *Spec) DuplicatePaths() []string {
	var dups []string
	for i := 1; i < len(s.Files); i++ {
		if s.Files[i].Path != s.Files[i-1].Path {
			continue
		}
		if len(dups) > 0 && dups[len(dups)-1] == s.Files[i].Path {
			continue
		}
		dups = append(dups, s.Files[i].Path)
	}
	return dups
}

// IsEmpty reports whether the spec has neither directories nor files.
func (s *Spec) IsEmpty() bool {
	return len(s.Directories) == 0 && len(s.Files) == 0
}
