package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// HashString creates a SHA-256 hash of the input string.
// Used to keep mobile numbers out of log lines.
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

// MD5Hex returns the lower-case hex MD5 digest of data,
// or "" when data is empty.
func MD5Hex(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
