// Package summarize implements the content summarization pipeline: extract,
// cache lookup, the three-call LLM sequence, accounting and cache store.
// Personalization of the cached candidates happens on every request.
package summarize

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// CacheKeyForURL addresses webpage and YouTube entries by their normalized
// source URL.
func CacheKeyForURL(url string) string {
	return hashHex([]byte(strings.TrimSpace(url)))
}

// CacheKeyForBytes addresses PDF entries by their raw bytes, so the same
// document uploaded twice hits the same entry regardless of filename.
func CacheKeyForBytes(data []byte) string {
	return hashHex(data)
}

// ContentHash fingerprints extracted text to detect changed source content
// behind an unchanged URL.
func ContentHash(text string) string {
	return hashHex([]byte(text))
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
