package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a cache key of the form "prefix:hex". The parts are
// JSON-encoded into the hash so strings, numbers, and bools all key
// unambiguously; the full 256-bit digest is kept to rule out collisions
// between documents.
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	_ = json.NewEncoder(h).Encode(parts)
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the SHA-256 digest of data as a 64-character hex string.
// The pipeline uses this to fingerprint normalized documents.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
