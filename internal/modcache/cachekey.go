package modcache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Key computes a stable cache key for a resolved nominal super-type
// chain or projection result, hashing the subject type's canonical
// string form together with the projection member name (empty for a
// plain super-type-chain entry). Truncated to 16 hex chars for a
// compact primary key, the same trade-off the teacher's stable-ID
// hashing makes for AST node identities.
func Key(typeString, member string) string {
	parts := []string{typeString, member}
	input := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
