package materialize

import (
	"encoding/base64"
	"strings"

	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/types"
)

// Payload returns the bytes written for entry. Text is written as-is;
// base64 content is decoded leniently: embedded whitespace and missing
// padding are accepted, as are URL-safe alphabets.
func Payload(entry types.FileEntry) ([]byte, error) {
	if !entry.Encoding.IsBinary() {
		return []byte(entry.Content), nil
	}

	data, err := decodeBase64(entry.Content)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrContentDecode, "invalid base64 content for %s", entry.Path).
			WithDetail("path", entry.Path)
	}
	return data, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimRight(s, "=")
	if strings.ContainsAny(s, "-_") {
		return base64.RawURLEncoding.DecodeString(s)
	}
	return base64.RawStdEncoding.DecodeString(s)
}
