package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey derives the per-user prefix for storage keys. JWT subjects can
// contain characters that are awkward in paths and S3 keys, so the raw ID
// never appears in a key; the digest does.
func HashUserKey(userID string) string {
	sum := sha256.Sum256([]byte(userID))
	return hex.EncodeToString(sum[:])
}
