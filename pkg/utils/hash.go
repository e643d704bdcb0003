package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// HashText returns the hex md5 digest of the given strings joined together.
// Used as a cache and dedup key for analyzed texts.
func HashText(parts ...string) string {
	h := md5.New()
	for _, p := range parts {
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
