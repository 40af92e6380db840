package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash returns the sha256 of data as a 64-char hex string. Content
// hashes are the backbone of every cache key, so the full digest is
// kept rather than truncated.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds "prefix:sha256(json(parts))". JSON gives option
// structs a canonical encoding, so equal options always land on the
// same key.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}
