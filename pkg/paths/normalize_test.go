package paths

import (
	"testing"

	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		raw    string
		want   string
	}{
		{name: "root and simple name", parent: "", raw: "src", want: "src"},
		{name: "nested under parent", parent: "src", raw: "index.txt", want: "src/index.txt"},
		{name: "raw contains separators", parent: "", raw: "a/b/c", want: "a/b/c"},
		{name: "backslash separators", parent: "src", raw: `lib\util.go`, want: "src/lib/util.go"},
		{name: "mixed separator runs", parent: "", raw: `a\/\b//c`, want: "a/b/c"},
		{name: "double slash tolerated", parent: "", raw: "a//b", want: "a/b"},
		{name: "leading and trailing separators", parent: "", raw: "/a/b/", want: "a/b"},
		{name: "surrounding whitespace trimmed", parent: "", raw: "  docs  ", want: "docs"},
		{name: "whitespace around segments trimmed", parent: "", raw: " a / b ", want: "a/b"},
		{name: "whitespace-only segment dropped", parent: "", raw: "a/   /b", want: "a/b"},
		{name: "case preserved", parent: "Src", raw: "README.md", want: "Src/README.md"},
		{name: "empty child keeps parent", parent: "src", raw: "", want: "src"},
		{name: "blank child keeps parent", parent: "src", raw: "   ", want: "src"},
		{name: "both empty is root", parent: "", raw: "", want: ""},
		{name: "only separators is root", parent: "", raw: "//\\", want: ""},
		{name: "dots inside names are fine", parent: "", raw: "...hidden/.env/a..b", want: "...hidden/.env/a..b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.parent, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_RejectsTraversal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		segment string
	}{
		{name: "parent segment", raw: "..", segment: ".."},
		{name: "current segment", raw: ".", segment: "."},
		{name: "embedded parent", raw: "a/../b", segment: ".."},
		{name: "embedded current", raw: `a\.\b`, segment: "."},
		{name: "padded parent", raw: "a/ .. /b", segment: ".."},
		{name: "leading parent", raw: "../etc/passwd", segment: ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize("src", tt.raw)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPathTraversal))
			assert.Equal(t, tt.segment, errors.GetErrorDetails(err)["segment"])
		})
	}
}

func TestSegments(t *testing.T) {
	assert.Nil(t, Segments(""))
	assert.Equal(t, []string{"a", "b"}, Segments("a/b"))
}
