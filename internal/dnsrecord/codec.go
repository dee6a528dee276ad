package dnsrecord

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// decodeBase64 strips whitespace before decoding and rejects invalid input
// rather than silently truncating it.
func decodeBase64(s string) ([]byte, error) {
	s = stripWhitespace(s)
	return base64.StdEncoding.DecodeString(s)
}

// decodeHex strips whitespace before decoding and rejects invalid input.
func decodeHex(s string) ([]byte, error) {
	s = stripWhitespace(s)
	return hex.DecodeString(s)
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
