package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncoding(t *testing.T) {
	tests := []struct {
		enc    Encoding
		norm   Encoding
		binary bool
		valid  bool
	}{
		{"", EncodingText, false, true},
		{EncodingText, EncodingText, false, true},
		{EncodingBase64, EncodingBase64, true, true},
		{"hex", "hex", false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.enc), func(t *testing.T) {
			assert.Equal(t, tt.norm, tt.enc.Normalize())
			assert.Equal(t, tt.binary, tt.enc.IsBinary())
			assert.Equal(t, tt.valid, tt.enc.Valid())
		})
	}
}

func TestNodes(t *testing.T) {
	var nodes []Node = []Node{
		&Directory{Name: "src", Children: []Node{&File{Name: "a"}}},
		&File{Name: "b", Encoding: EncodingBase64},
	}
	assert.Equal(t, "src", nodes[0].NodeName())
	assert.Equal(t, `dir("src", 1 children)`, nodes[0].(*Directory).String())
	assert.Equal(t, `file("a", utf8)`, nodes[0].(*Directory).Children[0].(*File).String())
	assert.Equal(t, `file("b", base64)`, nodes[1].(*File).String())
}

func TestSpec_DuplicatePaths(t *testing.T) {
	spec := &Spec{Files: []FileEntry{
		{Path: "a"}, {Path: "a"}, {Path: "a"}, {Path: "b"}, {Path: "c"}, {Path: "c"},
	}}
	assert.Equal(t, []string{"a", "c"}, spec.DuplicatePaths())
	assert.Empty(t, (&Spec{Files: []FileEntry{{Path: "a"}, {Path: "b"}}}).DuplicatePaths())
}

func TestSpec_IsEmpty(t *testing.T) {
	assert.True(t, (&Spec{ID: "x"}).IsEmpty())
	assert.False(t, (&Spec{Directories: []string{"d"}}).IsEmpty())
	assert.False(t, (&Spec{Files: []FileEntry{{Path: "f"}}}).IsEmpty())
}
