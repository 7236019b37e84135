package template

import "github.com/arthur-debert/wslaunch/pkg/types"

// Dir returns a directory node. Children may be empty.
func Dir(name string, children ...types.Node) *types.Directory {
	return &types.Directory{Name: name, Children: children}
}

// File returns a text file node.
func File(name, content string) *types.File {
	return &types.File{Name: name, Content: content, Encoding: types.EncodingText}
}

// BinaryFile returns a file node whose content is already base64 encoded.
func BinaryFile(name, encoded string) *types.File {
	return &types.File{Name: name, Content: encoded, Encoding: types.EncodingBase64}
}
