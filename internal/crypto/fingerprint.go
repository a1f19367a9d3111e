package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of a secret such as an API token,
// safe to print or log in place of the secret itself.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(secret []byte) string {
	if len(secret) == 0 {
		return ""
	}
	sum := sha256.Sum256(secret)
	return hex.EncodeToString(sum[:10])
}
