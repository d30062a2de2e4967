package services

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint identifies a narrative by content (hex BLAKE2b-256).
func Fingerprint(narrative string) string {
	sum := blake2b.Sum256([]byte(narrative))
	return hex.EncodeToString(sum[:])
}
