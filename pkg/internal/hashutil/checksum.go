package hashutil

import (
	"crypto/sha256"
	"fmt"
)

// Prefix marks the digest algorithm in every checksum string.
const Prefix = "sha256:"

// Checksum returns the SHA256 checksum of data as "sha256:<hex>".
func Checksum(data []byte) string {
	return fmt.Sprintf("%s%x", Prefix, sha256.Sum256(data))
}
