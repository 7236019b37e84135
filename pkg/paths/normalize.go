package paths

import (
	"strings"

	"github.com/arthur-debert/wslaunch/pkg/errors"
)

// Separator joins canonical path segments regardless of host OS.
const Separator = "/"

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// SplitSegments splits raw on any run of "/" or "\", trims each piece and
// drops empty ones. A piece equal to "." or ".." is rejected with
// ErrPathTraversal.
func SplitSegments(raw string) ([]string, error) {
	pieces := strings.FieldsFunc(raw, isSeparator)
	segments := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		segment := strings.TrimSpace(piece)
		if segment == "" {
			continue
		}
		if segment == "." || segment == ".." {
			return nil, errors.Newf(errors.ErrPathTraversal, "invalid path segment %q", segment).
				WithDetail("segment", segment).
				WithDetail("path", raw)
		}
		segments = append(segments, segment)
	}
	return segments, nil
}

// Normalize joins a canonical parent path with a raw name that may itself
// contain separators. The result is empty only when both resolve to root.
func Normalize(parent, raw string) (string, error) {
	child, err := SplitSegments(raw)
	if err != nil {
		return "", err
	}
	if parent == "" {
		return strings.Join(child, Separator), nil
	}
	if len(child) == 0 {
		return parent, nil
	}
	return parent + Separator + strings.Join(child, Separator), nil
}

// Segments splits an already canonical path. The empty path has no segments.
func Segments(canonical string) []string {
	if canonical == "" {
		return nil
	}
	return strings.Split(canonical, Separator)
}
