package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex-encoded SHA-256 digest of the string's UTF-8 bytes.
// No trimming is applied here: Analyze hashes the trimmed value, while the
// HTTP boundary hashes raw path segments verbatim for lookups.
func Hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
