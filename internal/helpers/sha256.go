package helpers

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256 returns the hex digest of s, used to derive stable identifiers for
// inline generator sources.
func SHA256(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
