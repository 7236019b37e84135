package types

import "fmt"

// Encoding describes how a file node's content is stored.
type Encoding string

const (
	// EncodingText is plain text content. It is dedented before storage.
	EncodingText Encoding = "utf8"

	// EncodingBase64 is binary content already encoded as base64. It is
	// only trimmed before storage and decoded when written.
	EncodingBase64 Encoding = "base64"
)

// Normalize returns the effective encoding, mapping the zero value to text.
func (e Encoding) Normalize() Encoding {
	if e == "" {
		return EncodingText
	}
	return e
}

// IsBinary reports whether content with this encoding is decoded before writing.
func (e Encoding) IsBinary() bool {
	return e.Normalize() == EncodingBase64
}

// Valid reports whether e is one of the known encodings (or empty).
func (e Encoding) Valid() bool {
	switch e.Normalize() {
	case EncodingText, EncodingBase64:
		return true
	}
	return false
}

// Node is an element of a template tree: either a *Directory or a *File.
// The interface is sealed; only this package can add variants.
type Node interface {
	NodeName() string
	isNode()
}

// Directory is a named node holding ordered children.
type Directory struct {
	Name     string
	Children []Node
}

// File is a named node holding raw content.
type File struct {
	Name     string
	Content  string
	Encoding Encoding
}

func (d *Directory) NodeName() string { return d.Name }
func (f *File) NodeName() string      { return f.Name }

func (*Directory) isNode() {}
func (*File) isNode()      {}

func (d *Directory) String() string {
	return fmt.Sprintf("dir(%q, %d children)", d.Name, len(d.Children))
}

func (f *File) String() string {
	return fmt.Sprintf("file(%q, %s)", f.Name, f.Encoding.Normalize())
}
