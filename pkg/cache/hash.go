package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Hash returns the hex SHA-256 of data. Documents are identified by the
// hash of their bytes, so a re-saved but unchanged file still hits.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// entryKey builds "<kind>:<digest>" where the digest covers the document
// hash and the JSON form of the options that shaped the result.
func entryKey(kind, docHash string, opts any) string {
	h := sha256.New()
	h.Write([]byte(docHash))
	h.Write([]byte{0})
	_ = json.NewEncoder(h).Encode(opts)
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}

// keyType extracts the kind from a key, skipping scope prefixes such as
// "server:".
func keyType(key string) string {
	i := strings.LastIndexByte(key, ':')
	if i < 0 {
		return "unknown"
	}
	kind := key[:i]
	if j := strings.LastIndexByte(kind, ':'); j >= 0 {
		kind = kind[j+1:]
	}
	return kind
}
