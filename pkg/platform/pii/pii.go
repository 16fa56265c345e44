// Package pii hashes personal identifiers before they leave the process in logs
// or audit events.
package pii

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Hasher produces a stable keyed digest of an identifier. The same key must be
// used across instances so that audit consumers can correlate events.
type Hasher struct {
	key []byte
}

// NewHasher builds a Hasher. blake2b accepts keys of at most 64 bytes; longer
// keys are truncated so configuration mistakes do not crash the process.
func NewHasher(key string) *Hasher {
	k := []byte(key)
	if len(k) > blake2b.Size {
		k = k[:blake2b.Size]
	}
	return &Hasher{key: k}
}

// Hash returns the hex-encoded keyed BLAKE2b-256 digest of value.
// A nil Hasher or empty value yields "".
func (h *Hasher) Hash(value string) string {
	if h == nil || value == "" {
		return ""
	}
	mac, err := blake2b.New256(h.key)
	if err != nil {
		// Only reachable with a key longer than 64 bytes, which NewHasher prevents.
		return ""
	}
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}
