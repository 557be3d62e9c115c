package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes the sha256 hash of data as a 64-character hex string.
// It is the content identity of a drawing throughout the pipeline, the
// cache and the layout store.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// LayoutKey builds the cache key for a layout computation from the
// graph content hash and the option values that influence the result.
func LayoutKey(graphHash string, opts ...any) string {
	data, _ := json.Marshal(opts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("layout:%s:%s", graphHash, hex.EncodeToString(sum[:]))
}
