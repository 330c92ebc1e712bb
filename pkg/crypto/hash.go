// Package crypto provides hashing helpers for values that must be looked up
// without storing the plaintext.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the SHA-256 hex digest of value.
// Used for refresh_token_hash: deterministic, allows indexed lookups without
// persisting the token itself.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
