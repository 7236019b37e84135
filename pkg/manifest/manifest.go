package manifest

import (
	stderrors "errors"
	"strings"

	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/types"
)

// Node types accepted in manifests
const (
	TypeDirectory = "directory"
	TypeFile      = "file"
)

// Manifest is a workspace template request read from a file
type Manifest struct {
	ID        string `json:"id" yaml:"id" toml:"id"`
	Server    string `json:"server,omitempty" yaml:"server,omitempty" toml:"server,omitempty"`
	OwnerID   string `json:"owner_id,omitempty" yaml:"owner_id,omitempty" toml:"owner_id,omitempty"`
	Token     string `json:"token,omitempty" yaml:"token,omitempty" toml:"token,omitempty"`
	Structure []Node `json:"structure" yaml:"structure" toml:"structure"`
}

// Node is one entry of a manifest structure
type Node struct {
	Type     string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
	Content  string `json:"content,omitempty" yaml:"content,omitempty" toml:"content,omitempty"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty" toml:"encoding,omitempty"`
}

// Nodes converts the manifest structure into a template tree
func (m *Manifest) Nodes() ([]types.Node, error) {
	return convertAll(m.Structure, "")
}

func convertAll(nodes []Node, parent string) ([]types.Node, error) {
	out := make([]types.Node, 0, len(nodes))
	for i := range nodes {
		node, err := convert(&nodes[i], parent)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func convert(n *Node, parent string) (types.Node, error) {
	kind := strings.ToLower(strings.TrimSpace(n.Type))
	if kind == "" {
		kind = inferType(n)
	}

	switch kind {
	case TypeDirectory, "dir":
		children, err := convertAll(n.Children, joinLabel(parent, n.Name))
		if err != nil {
			return nil, err
		}
		return &types.Directory{Name: n.Name, Children: children}, nil

	case TypeFile:
		if len(n.Children) > 0 {
			return nil, errors.Newf(errors.ErrInvalidInput, "file %q cannot have children", n.Name).
				WithDetail("parent", parent).
				WithDetail("name", n.Name)
		}
		enc, err := ParseEncoding(n.Encoding)
		if err != nil {
			return nil, withDetails(err, map[string]interface{}{"parent": parent, "name": n.Name})
		}
		return &types.File{Name: n.Name, Content: n.Content, Encoding: enc}, nil
	}

	return nil, errors.Newf(errors.ErrUnknownNodeType, "unknown node type %q", n.Type).
		WithDetail("parent", parent).
		WithDetail("name", n.Name).
		WithDetail("type", n.Type)
}

// inferType picks the type of an untyped node. Anything carrying content
// or an encoding is a file; everything else, including a bare name, is a
// directory. Empty files need an explicit type.
func inferType(n *Node) string {
	if len(n.Children) == 0 && (n.Content != "" || n.Encoding != "") {
		return TypeFile
	}
	return TypeDirectory
}

// ParseEncoding maps manifest spellings onto template encodings
func ParseEncoding(s string) (types.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "utf8", "utf-8":
		return types.EncodingText, nil
	case "base64", "binary":
		return types.EncodingBase64, nil
	}
	return "", errors.Newf(errors.ErrUnknownEncoding, "unknown encoding %q", s).
		WithDetail("encoding", s)
}

func joinLabel(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// withDetails attaches details to err when it is a coded error
func withDetails(err error, details map[string]interface{}) error {
	var le *errors.LaunchError
	if stderrors.As(err, &le) {
		le.WithDetails(details)
	}
	return err
}
